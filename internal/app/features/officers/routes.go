// internal/app/features/officers/routes.go
package officers

import (
	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the officer endpoints (bootstrap mounts them at /officers).
// Reads are public; writes need the admin key.
func Routes(h *Handler, guard *adminauth.Guard) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)

	r.Group(func(pr chi.Router) {
		pr.Use(guard.Require)

		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
