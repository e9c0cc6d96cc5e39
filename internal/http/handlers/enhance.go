package handlers

import (
	"errors"
	"net/http"

	"server/internal/domain"
	"server/internal/enhance"
)

// Enhance runs one enhancement attempt for the session: compile the
// instruction from the current settings, call the remote model, and store the
// outcome. The session enforces the single-flight rule and the source guard;
// the provider is never invoked when the guard fails. The response body is the
// resulting session state.
func (a *App) Enhance(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)

	gen, source, instruction, err := sess.Begin()
	if err != nil {
		if errors.Is(err, domain.ErrEnhanceInFlight) {
			a.fail(w, r, http.StatusConflict, err)
			return
		}
		// Source guard: the session is already in the error state.
		a.state(w, r, statusForError(err), sess.Snapshot())
		return
	}

	a.Log.Info().
		Str("session", sess.ID()).
		Int("instruction_len", len(instruction)).
		Str("mime", source.MIMEType).
		Msg("enhancement started")

	result, enhanceErr := a.Enhancer.Enhance(r.Context(), source, instruction)
	if !sess.Complete(gen, result, enhanceErr) {
		// The session was reset or got a new upload mid-flight; the stale
		// outcome is discarded and the caller sees the fresh state.
		a.Log.Info().Str("session", sess.ID()).Msg("stale enhancement discarded")
	}

	view := sess.Snapshot()
	code := http.StatusOK
	if view.Status == enhance.StatusError && view.Failure != nil {
		code = statusForError(view.Failure)
	}
	a.state(w, r, code, view)
}
