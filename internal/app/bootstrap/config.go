// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for clubhub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, admin_key_hash, etc.
//   - Environment variables: CLUBHUB_MONGO_URI, CLUBHUB_ADMIN_KEY_HASH, etc.
//   - Command-line flags: --mongo_uri, --admin_key_hash, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "clubhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Admin access
	{Name: "admin_key_hash", Default: "", Desc: "bcrypt hash of the admin key (see cmd/clubhub-keyhash); blank disables admin routes"},
	{Name: "seed_secret", Default: "", Desc: "Secret required by POST /seed; blank disables seeding"},

	// Browser clients
	{Name: "cors_allowed_origins", Default: "http://localhost:3000", Desc: "Comma-separated origins allowed by CORS"},

	// Throttling
	{Name: "apply_rate_limit", Default: 5, Desc: "Membership applications accepted per client IP per window"},
	{Name: "apply_rate_window", Default: "1h", Desc: "Window for apply_rate_limit (e.g., 1h, 30m)"},
	{Name: "seed_rate_limit", Default: 3, Desc: "Seed attempts allowed per client IP per window"},
	{Name: "seed_rate_window", Default: "15m", Desc: "Window for seed_rate_limit"},
	{Name: "admin_rate_limit", Default: 10, Desc: "Rejected admin keys allowed per client IP per window"},
	{Name: "admin_rate_window", Default: "15m", Desc: "Window for admin_rate_limit"},
	{Name: "trust_proxy_headers", Default: false, Desc: "Take the client IP from X-Forwarded-For/X-Real-IP; enable only behind a proxy that sets them"},

	// Store deadlines
	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document reads and deletes"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for lists, creates and updates"},
	{Name: "timeout_long", Default: "30s", Desc: "Deadline for seeding"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig reads .env files, config.yaml/json/toml,
// environment variables (WAFFLE_* for core, CLUBHUB_* for the app) and
// command-line flags, merging them with precedence flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CLUBHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AdminKeyHash: strings.TrimSpace(appValues.String("admin_key_hash")),
		SeedSecret:   appValues.String("seed_secret"),

		CORSAllowedOrigins: splitList(appValues.String("cors_allowed_origins")),

		ApplyRateLimit:  appValues.Int("apply_rate_limit"),
		ApplyRateWindow: appValues.Duration("apply_rate_window", time.Hour),
		SeedRateLimit:   appValues.Int("seed_rate_limit"),
		SeedRateWindow:  appValues.Duration("seed_rate_window", 15*time.Minute),
		AdminRateLimit:  appValues.Int("admin_rate_limit"),
		AdminRateWindow: appValues.Duration("admin_rate_window", 15*time.Minute),

		TrustProxyHeaders: appValues.Bool("trust_proxy_headers"),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
		TimeoutLong:   appValues.Duration("timeout_long", 30*time.Second),
	}

	return coreCfg, appCfg, nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI and admin key hash are checked here so a typo fails
// fast instead of surfacing as a connection error or a locked console.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return errors.New("mongo_database must not be empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}

	if appCfg.AdminKeyHash != "" {
		if err := adminauth.ValidateHash(appCfg.AdminKeyHash); err != nil {
			return fmt.Errorf("admin_key_hash: %w", err)
		}
	}

	if appCfg.ApplyRateLimit <= 0 || appCfg.ApplyRateWindow <= 0 {
		return errors.New("apply_rate_limit and apply_rate_window must be positive")
	}
	if appCfg.SeedRateLimit <= 0 || appCfg.SeedRateWindow <= 0 {
		return errors.New("seed_rate_limit and seed_rate_window must be positive")
	}
	if appCfg.AdminRateLimit <= 0 || appCfg.AdminRateWindow <= 0 {
		return errors.New("admin_rate_limit and admin_rate_window must be positive")
	}

	return nil
}
