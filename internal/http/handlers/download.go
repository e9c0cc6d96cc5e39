package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Download exports the enhanced image as a file attachment, valid only while
// the session is in the success state.
func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)

	img, err := sess.Result()
	if err != nil {
		a.fail(w, r, statusForError(err), err)
		return
	}

	name := img.ExportName(time.Now().Unix())
	w.Header().Set("Content-Type", img.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(img.Data)
}
