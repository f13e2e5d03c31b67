// internal/app/features/seed/routes.go
package seed

import (
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes mounts POST /seed. Attempts are throttled per client whether or
// not the secret is right.
func Routes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.With(ratelimit.Middleware(limiter, "seed", h.Log)).Post("/", h.HandleSeed)
	return r
}
