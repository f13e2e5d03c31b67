// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (CLUBHUB_*), configuration
// files, or command-line flags, loaded in LoadConfig. WAFFLE's CoreConfig
// covers the framework side (ports, TLS, log level); everything the club
// backend itself needs lives here and is passed to every lifecycle hook.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Admin access
	AdminKeyHash string // bcrypt hash of the X-Admin-Key value; empty disables admin routes
	SeedSecret   string // shared secret for POST /seed; empty disables seeding

	// Origins allowed to call the API from a browser (the public site and
	// the admin console).
	CORSAllowedOrigins []string

	// Per-IP throttles for the public form, the seed endpoint and
	// rejected admin keys
	ApplyRateLimit  int
	ApplyRateWindow time.Duration
	SeedRateLimit   int
	SeedRateWindow  time.Duration
	AdminRateLimit  int
	AdminRateWindow time.Duration

	// When true the client IP comes from proxy headers. Off by default so a
	// caller cannot pick its own throttle key.
	TrustProxyHeaders bool

	// Store call deadlines; zero keeps the timeouts package default
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
