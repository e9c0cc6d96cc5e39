package handlers

import (
	"errors"
	"net/http"

	"server/internal/domain"
)

// userMessage maps a domain error to the single human-readable message shown
// in the UI. The rate-limit message must suggest retrying later; the generic
// ones point at the diagnostic logs. Indonesian is carried alongside English
// per the locale middleware.
func userMessage(err error, locale string) string {
	id := locale == "id"
	switch {
	case errors.Is(err, domain.ErrNoSourceImage):
		if id {
			return "Unggah gambar terlebih dahulu sebelum meminta peningkatan."
		}
		return "Please upload an image before requesting enhancement."
	case errors.Is(err, domain.ErrUnreadableImage):
		if id {
			return "File gambar tidak dapat dibaca. Pilih file gambar yang valid."
		}
		return "Could not read that image file. Please choose a valid image file."
	case errors.Is(err, domain.ErrRateLimited):
		if id {
			return "Layanan peningkatan sedang dibatasi. Coba lagi beberapa saat lagi."
		}
		return "The enhancement service is currently rate limited. Please try again in a few moments."
	case errors.Is(err, domain.ErrEnhanceInFlight):
		if id {
			return "Peningkatan gambar masih berjalan."
		}
		return "An enhancement is already in progress."
	case errors.Is(err, domain.ErrNoResult):
		if id {
			return "Belum ada hasil peningkatan untuk diunduh."
		}
		return "There is no enhanced image to download yet."
	default:
		// ErrEnhancementFailed and ErrNoImageInResponse share the generic message.
		if id {
			return "Peningkatan gambar gagal. Periksa log server untuk detailnya."
		}
		return "Enhancement failed. Check the server logs for details."
	}
}

// statusForError picks the HTTP status for a failure recorded on a session.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoSourceImage), errors.Is(err, domain.ErrUnreadableImage):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrEnhanceInFlight):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoResult):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
