// internal/app/features/cards/routes.go
package cards

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}/click", h.ServeClick)
	return r
}
