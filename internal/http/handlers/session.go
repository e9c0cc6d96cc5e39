package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"server/internal/domain"
	"server/internal/enhance"
)

// Upload replaces the session's source image with the uploaded file. The new
// source resets settings to defaults and clears any previous result or error.
func (a *App) Upload(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, a.Cfg.MaxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		view := sess.RecordFailure(fmt.Errorf("%w: read upload: %v", domain.ErrUnreadableImage, err))
		a.state(w, r, http.StatusBadRequest, view)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		view := sess.RecordFailure(fmt.Errorf("%w: read upload: %v", domain.ErrUnreadableImage, err))
		a.state(w, r, http.StatusBadRequest, view)
		return
	}

	img, err := decodeSourceImage(data)
	if err != nil {
		a.Log.Warn().Err(err).Str("filename", header.Filename).Msg("rejected upload")
		view := sess.RecordFailure(err)
		a.state(w, r, http.StatusBadRequest, view)
		return
	}

	a.Log.Info().
		Str("session", sess.ID()).
		Str("filename", header.Filename).
		Str("mime", img.MIMEType).
		Int("bytes", len(img.Data)).
		Msg("source image uploaded")

	a.state(w, r, http.StatusOK, sess.SetSource(img))
}

// decodeSourceImage validates the payload as a decodable image and derives its
// MIME type. Anything the registered decoders (png, jpeg, gif, webp) cannot
// parse is an unreadable local file, distinct from remote failures.
func decodeSourceImage(data []byte) (domain.Image, error) {
	if len(data) == 0 {
		return domain.Image{}, fmt.Errorf("%w: empty file", domain.ErrUnreadableImage)
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return domain.Image{}, fmt.Errorf("%w: unsupported content type %s", domain.ErrUnreadableImage, mimeType)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return domain.Image{}, fmt.Errorf("%w: %v", domain.ErrUnreadableImage, err)
	}
	return domain.Image{Data: data, MIMEType: mimeType}, nil
}

type settingsRequest struct {
	Brightness     *int    `json:"brightness"`
	Contrast       *int    `json:"contrast"`
	NoiseReduction *int    `json:"noise_reduction"`
	ArtisticEffect *string `json:"artistic_effect"`
}

// Settings applies a partial adjustment update. Values are clamped into range
// and the request status is left untouched.
func (a *App) Settings(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)

	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.json(w, http.StatusBadRequest, map[string]*errorInfo{"error": {Message: "invalid payload"}})
		return
	}

	next := sess.Snapshot().Settings
	if req.Brightness != nil {
		next.Brightness = *req.Brightness
	}
	if req.Contrast != nil {
		next.Contrast = *req.Contrast
	}
	if req.NoiseReduction != nil {
		next.NoiseReduction = *req.NoiseReduction
	}
	if req.ArtisticEffect != nil {
		next.Effect = enhance.Effect(*req.ArtisticEffect)
	}

	a.state(w, r, http.StatusOK, sess.ApplySettings(next))
}

// State reports the current session state.
func (a *App) State(w http.ResponseWriter, r *http.Request) {
	a.state(w, r, http.StatusOK, a.session(w, r).Snapshot())
}

// Reset restores the initial state: no source, defaults, idle.
func (a *App) Reset(w http.ResponseWriter, r *http.Request) {
	a.state(w, r, http.StatusOK, a.session(w, r).Reset())
}
