// internal/app/features/directory/routes.go
package directory

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDirectory)
	return r
}
