package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
)

// writeHTML buffers the page so a render error can still set a 500 status.
func (h *Handlers) writeHTML(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
