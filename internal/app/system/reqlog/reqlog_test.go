package reqlog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/system/reqlog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_AssignsIDAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var seen string
	h := reqlog.Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqlog.ID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/officers", nil))

	id := rec.Header().Get(reqlog.Header)
	if id == "" {
		t.Fatal("expected X-Request-ID response header")
	}
	if seen != id {
		t.Errorf("context id = %q, header id = %q", seen, id)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["path"] != "/officers" || ctx["status"] != int64(http.StatusTeapot) || ctx["request_id"] != id {
		t.Errorf("log fields = %v", ctx)
	}
}

func TestMiddleware_ReusesInboundID(t *testing.T) {
	h := reqlog.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(reqlog.Header, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(reqlog.Header); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}
