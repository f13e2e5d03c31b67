// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	applicationsfeature "github.com/dalemusser/clubhub/internal/app/features/applications"
	errorsfeature "github.com/dalemusser/clubhub/internal/app/features/errors"
	eventsfeature "github.com/dalemusser/clubhub/internal/app/features/events"
	healthfeature "github.com/dalemusser/clubhub/internal/app/features/health"
	newsfeature "github.com/dalemusser/clubhub/internal/app/features/news"
	officersfeature "github.com/dalemusser/clubhub/internal/app/features/officers"
	seedfeature "github.com/dalemusser/clubhub/internal/app/features/seed"
	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/app/system/reqlog"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. clubhub serves a JSON API only: the
// public site and the admin console are separate browser apps that call it
// across origins, hence the CORS layer.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	return newRouter(appCfg, deps, logger), nil
}

func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	db := deps.ClubHubMongoDatabase
	errLog := errorsfeature.NewErrorLogger(logger)
	guard := adminauth.New(appCfg.AdminKeyHash, logger).Throttle(deps.AdminLimiter)

	r := chi.NewRouter()

	if appCfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(reqlog.Middleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", adminauth.Header, reqlog.Header},
		ExposedHeaders: []string{reqlog.Header, "Retry-After", ratelimit.RemainingHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Fail(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Fail(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ClubHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Content: public reads, admin writes
	officersHandler := officersfeature.NewHandler(db, errLog, logger)
	r.Mount("/officers", officersfeature.Routes(officersHandler, guard))

	eventsHandler := eventsfeature.NewHandler(db, errLog, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler, guard))

	newsHandler := newsfeature.NewHandler(db, errLog, logger)
	r.Mount("/news", newsfeature.Routes(newsHandler, guard))

	// Membership funnel: public submit, admin review
	applicationsHandler := applicationsfeature.NewHandler(db, errLog, logger)
	r.Mount("/applications", applicationsfeature.Routes(applicationsHandler, guard, deps.ApplyLimiter))

	// Roster bootstrap
	seedHandler := seedfeature.NewHandler(db, appCfg.SeedSecret, errLog, logger)
	r.Mount("/seed", seedfeature.Routes(seedHandler, deps.SeedLimiter))

	return r
}
