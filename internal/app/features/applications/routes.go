// internal/app/features/applications/routes.go
package applications

import (
	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the application endpoints under /applications. Submitting
// is public but throttled per client; everything else is admin-only.
func Routes(h *Handler, guard *adminauth.Guard, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.With(ratelimit.Middleware(limiter, "apply", h.Log)).Post("/", h.HandleSubmit)

	r.Group(func(pr chi.Router) {
		pr.Use(guard.Require)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
		pr.Put("/{id}", h.HandleReview)
		pr.Patch("/{id}", h.HandleReview)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
