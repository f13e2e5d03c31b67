// internal/app/features/seed/seed.go
package seed

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/app/system/txn"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type seedResult struct {
	Count int `json:"count"`
}

// HandleSeed handles POST /seed?secret=. It deletes every officer and
// inserts the built-in roster, inside a transaction when the deployment
// supports one.
func (h *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	if !adminauth.SecretMatches(h.Secret, query.Get(r, "secret")) {
		h.Log.Warn("seed rejected",
			zap.String("ip", ratelimit.ClientIP(r)),
			zap.Bool("configured", h.Secret != ""))
		respond.Fail(w, http.StatusUnauthorized, "Invalid seed secret.")
		return
	}

	roster, err := Roster()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load roster failed", err, "")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "seed officers")
	defer cancel()

	var n int
	err = txn.Run(ctx, h.Client, h.Log, "seed officers", func(ctx context.Context) error {
		var err error
		n, err = h.Store.ReplaceAll(ctx, roster)
		return err
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "seed officers failed", err, "Unable to seed officers.")
		return
	}

	h.Log.Info("officers seeded", zap.Int("count", n))
	respond.OK(w, seedResult{Count: n})
}
