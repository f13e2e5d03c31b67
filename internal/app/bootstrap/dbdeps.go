// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// The throttles live here too so Shutdown can stop their sweepers.
type DBDeps struct {
	ClubHubMongoClient   *mongo.Client
	ClubHubMongoDatabase *mongo.Database

	ApplyLimiter *ratelimit.Limiter
	SeedLimiter  *ratelimit.Limiter
	AdminLimiter *ratelimit.Limiter
}
