// internal/app/system/adminauth/adminauth.go
//
// Package adminauth guards the admin console's routes with a shared key.
// The key is never stored; only its bcrypt hash is configured.
package adminauth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Header is the request header carrying the admin key.
const Header = "X-Admin-Key"

// BcryptCost is used by HashKey.
const BcryptCost = 12

// ErrNotConfigured is returned by Check when no hash is configured.
var ErrNotConfigured = errors.New("admin access is not configured")

// ErrBadKey is returned by Check for a missing or wrong key.
var ErrBadKey = errors.New("invalid admin key")

// Guard checks admin keys against one bcrypt hash.
type Guard struct {
	hash     []byte
	log      *zap.Logger
	failures *ratelimit.Limiter
}

// New returns a Guard for hash. An empty hash yields a Guard that rejects
// every request.
func New(hash string, log *zap.Logger) *Guard {
	return &Guard{hash: []byte(hash), log: log}
}

// Throttle makes the guard count rejected keys per client IP in l. Once an
// IP uses up its allowance it gets 429 without a bcrypt comparison until
// the window passes. A valid key clears the count.
func (g *Guard) Throttle(l *ratelimit.Limiter) *Guard {
	g.failures = l
	return g
}

// Check reports whether key matches the configured hash.
func (g *Guard) Check(key string) error {
	if len(g.hash) == 0 {
		return ErrNotConfigured
	}
	if key == "" {
		return ErrBadKey
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(key)); err != nil {
		return ErrBadKey
	}
	return nil
}

type ctxKey struct{}

// IsAdmin reports whether the request carrying ctx presented a valid key.
func IsAdmin(ctx context.Context) bool {
	ok, _ := ctx.Value(ctxKey{}).(bool)
	return ok
}

// Require is middleware that lets a request through only with a valid key.
// Failures get 401 and the JSON envelope.
func (g *Guard) Require(next http.Handler) http.Handler {
	return g.middleware(next, true)
}

// Optional lets requests without a key through as public callers. A request
// that does send a key must send a valid one; IsAdmin is true downstream.
func (g *Guard) Optional(next http.Handler) http.Handler {
	return g.middleware(next, false)
}

func (g *Guard) middleware(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(Header)
		if key == "" && !required {
			next.ServeHTTP(w, r)
			return
		}

		ip := ratelimit.ClientIP(r)
		if g.failures != nil && len(g.hash) > 0 && g.failures.Remaining(ip) == 0 {
			g.log.Warn("admin key attempts throttled",
				zap.String("path", r.URL.Path),
				zap.String("ip", ip))
			g.failures.Reject(w)
			return
		}

		err := g.Check(key)
		switch {
		case err == nil:
			if g.failures != nil {
				g.failures.Reset(ip)
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, true)))
		case errors.Is(err, ErrNotConfigured):
			respond.Fail(w, http.StatusUnauthorized, "Admin access is not configured.")
		default:
			if g.failures != nil && key != "" {
				g.failures.Allow(ip) // records the failure
			}
			g.log.Warn("admin key rejected",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("ip", ip))
			respond.Fail(w, http.StatusUnauthorized, "A valid admin key is required.")
		}
	})
}

// ValidateHash returns an error if hash is set but is not a bcrypt hash.
func ValidateHash(hash string) error {
	if hash == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("admin_key_hash is not a bcrypt hash: %w", err)
	}
	return nil
}

// HashKey returns the bcrypt hash to configure for key.
func HashKey(key string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash admin key: %w", err)
	}
	return string(h), nil
}

// SecretMatches compares a configured secret with a supplied one in
// constant time. An empty configured secret never matches.
func SecretMatches(configured, supplied string) bool {
	if configured == "" || supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}
