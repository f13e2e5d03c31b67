package adminauth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testHash(t *testing.T, key string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func serve(g *Guard, key string) *httptest.ResponseRecorder {
	h := g.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodPost, "/officers", nil)
	if key != "" {
		req.Header.Set(Header, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequire(t *testing.T) {
	g := New(testHash(t, "club-admin"), zap.NewNop())

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"valid key", "club-admin", http.StatusNoContent},
		{"wrong key", "guess", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := serve(g, tt.key); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequire_NotConfigured(t *testing.T) {
	rec := serve(New("", zap.NewNop()), "anything")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Success || env.Error != "Admin access is not configured." {
		t.Errorf("envelope = %+v", env)
	}
}

func TestRequire_ThrottlesRejectedKeys(t *testing.T) {
	failures := ratelimit.New(2, time.Minute)
	defer failures.Stop()
	g := New(testHash(t, "club-admin"), zap.NewNop()).Throttle(failures)

	for i := 0; i < 2; i++ {
		if rec := serve(g, "guess"); rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d status = %d, want 401", i+1, rec.Code)
		}
	}
	rec := serve(g, "club-admin")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status after limit = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}
}

func TestRequire_ValidKeyClearsFailures(t *testing.T) {
	failures := ratelimit.New(2, time.Minute)
	defer failures.Stop()
	g := New(testHash(t, "club-admin"), zap.NewNop()).Throttle(failures)

	serve(g, "guess")
	if rec := serve(g, "club-admin"); rec.Code != http.StatusNoContent {
		t.Fatalf("valid key status = %d, want 204", rec.Code)
	}
	if got := failures.Remaining("192.0.2.1"); got != 2 {
		t.Errorf("Remaining after success = %d, want 2", got)
	}
	for i := 0; i < 5; i++ {
		if rec := serve(g, "club-admin"); rec.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d, want 204", i+1, rec.Code)
		}
	}
}

func TestOptional(t *testing.T) {
	g := New(testHash(t, "club-admin"), zap.NewNop())

	tests := []struct {
		name      string
		key       string
		wantCode  int
		wantAdmin bool
	}{
		{"no key is public", "", http.StatusOK, false},
		{"valid key is admin", "club-admin", http.StatusOK, true},
		{"wrong key rejected", "guess", http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var admin bool
			h := g.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				admin = IsAdmin(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/news", nil)
			if tt.key != "" {
				req.Header.Set(Header, tt.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if admin != tt.wantAdmin {
				t.Errorf("IsAdmin = %v, want %v", admin, tt.wantAdmin)
			}
		})
	}
}

func TestValidateHash(t *testing.T) {
	if err := ValidateHash(""); err != nil {
		t.Errorf("empty hash: %v", err)
	}
	if err := ValidateHash(testHash(t, "k")); err != nil {
		t.Errorf("valid hash: %v", err)
	}
	if err := ValidateHash("plaintext-key"); err == nil {
		t.Error("expected error for non-bcrypt value")
	}
}

func TestSecretMatches(t *testing.T) {
	tests := []struct {
		configured, supplied string
		want                 bool
	}{
		{"s3cret", "s3cret", true},
		{"s3cret", "s3cre", false},
		{"s3cret", "", false},
		{"", "", false},
		{"", "anything", false},
	}
	for _, tt := range tests {
		if got := SecretMatches(tt.configured, tt.supplied); got != tt.want {
			t.Errorf("SecretMatches(%q, %q) = %v, want %v", tt.configured, tt.supplied, got, tt.want)
		}
	}
}
