// internal/app/features/news/routes.go
package news

import (
	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, guard *adminauth.Guard) chi.Router {
	r := chi.NewRouter()

	// Anyone may read; drafts are only shown to callers with the admin key.
	r.Group(func(pr chi.Router) {
		pr.Use(guard.Optional)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(guard.Require)

		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
