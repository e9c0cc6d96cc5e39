package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/internal/enhance"
	"server/internal/infra"
	"server/internal/middleware"
)

const sessionCookie = "session_id"

// Enhancer is the remote image-enhancement contract the handlers depend on.
type Enhancer interface {
	Enhance(ctx context.Context, source domain.Image, instruction string) (*domain.Image, error)
}

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Cfg      *infra.Config
	Log      infra.Logger
	Sessions *enhance.Store
	Enhancer Enhancer
}

func NewApp(cfg *infra.Config, log infra.Logger, sessions *enhance.Store, enhancer Enhancer) *App {
	return &App{Cfg: cfg, Log: log, Sessions: sessions, Enhancer: enhancer}
}

// session returns the caller's session, minting the cookie on first contact.
func (a *App) session(w http.ResponseWriter, r *http.Request) *enhance.Session {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return a.Sessions.GetOrCreate(c.Value)
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return a.Sessions.GetOrCreate(id)
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorInfo struct {
	Message string `json:"message"`
}

type stateResponse struct {
	Status        enhance.Status      `json:"status"`
	Settings      enhance.Settings    `json:"settings"`
	PreviewFilter string              `json:"preview_filter"`
	FilterOps     enhance.FilterChain `json:"filter_ops"`
	SourceURL     string              `json:"source_url,omitempty"`
	ResultURL     string              `json:"result_url,omitempty"`
	Error         *errorInfo          `json:"error,omitempty"`
}

// state renders a session view as the canonical JSON state payload.
func (a *App) state(w http.ResponseWriter, r *http.Request, code int, view enhance.View) {
	resp := stateResponse{
		Status:        view.Status,
		Settings:      view.Settings,
		PreviewFilter: view.Filter.String(),
		FilterOps:     view.Filter,
	}
	if view.Source != nil {
		resp.SourceURL = view.Source.DataURL()
	}
	if view.Result != nil {
		resp.ResultURL = view.Result.DataURL()
	}
	if view.Failure != nil {
		resp.Error = &errorInfo{Message: userMessage(view.Failure, middleware.LocaleFromContext(r.Context()))}
	}
	a.json(w, code, resp)
}

// fail renders a bare error payload for requests that never touch session state.
func (a *App) fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	a.json(w, code, map[string]*errorInfo{
		"error": {Message: userMessage(err, middleware.LocaleFromContext(r.Context()))},
	})
}
