// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
)

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the page for unrouted paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "We couldn't find that page.", "/")
}

// MethodNotAllowed renders the error page with a 405.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusMethodNotAllowed, "Not allowed", "That action isn't supported here.", "/")
}
