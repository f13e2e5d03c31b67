package applications_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/features/applications"
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newHandler(t *testing.T) (*applications.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return applications.NewHandler(db, uierrors.NewErrorLogger(logger), logger), db
}

func form() map[string]any {
	return map[string]any{
		"firstName":    "Ana",
		"lastName":     "Ruiz",
		"email":        "ana@example.org",
		"phone":        "555-0100",
		"dateOfBirth":  "2004-05-17",
		"occupation":   "Student",
		"education":    "High school",
		"interests":    []string{"tutoring"},
		"motivation":   "I want to help.",
		"availability": "Weekends",
	}
}

func TestHandleSubmit_ForcesPending(t *testing.T) {
	h, _ := newHandler(t)
	body := form()
	body["status"] = "accepted"
	body["notes"] = "let me in"
	body["reviewedBy"] = "myself"
	body["reviewedAt"] = "2024-01-01T00:00:00Z"

	rec := testutil.NewRecorder()
	h.HandleSubmit(rec, testutil.NewJSONRequest(t, http.MethodPost, "/applications", body))
	rec.AssertStatus(t, http.StatusCreated)

	var got models.Application
	rec.DecodeEnvelope(t, &got)
	if got.Status != models.ApplicationPending {
		t.Errorf("status = %q, want pending", got.Status)
	}
	if got.Notes != "" || got.ReviewedBy != "" || got.ReviewedAt != nil {
		t.Errorf("review fields accepted from client: %+v", got)
	}
	if want := time.Date(2004, 5, 17, 0, 0, 0, 0, time.UTC); !got.DateOfBirth.Equal(want) {
		t.Errorf("dateOfBirth = %v, want %v", got.DateOfBirth, want)
	}
	if got.Skills == nil {
		t.Error("skills should default to an empty array")
	}
}

func TestHandleSubmit_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr string
	}{
		{"missing email", func(m map[string]any) { delete(m, "email") }, "Email is required."},
		{"bad email", func(m map[string]any) { m["email"] = "ana.example.org" }, "Email must be a valid email address."},
		{"missing birth date", func(m map[string]any) { delete(m, "dateOfBirth") }, "Date of birth is required."},
		{"bad birth date", func(m map[string]any) { m["dateOfBirth"] = "May 17" }, "Date of birth must be a calendar date (YYYY-MM-DD)."},
		{"no interests", func(m map[string]any) { m["interests"] = []string{} }, "Interests must have at least 1 item(s)."},
		{"blank interest", func(m map[string]any) { m["interests"] = []string{" "} }, "Interests must not contain blank entries."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, db := newHandler(t)
			body := form()
			tt.mutate(body)

			rec := testutil.NewRecorder()
			h.HandleSubmit(rec, testutil.NewJSONRequest(t, http.MethodPost, "/applications", body))
			rec.AssertStatus(t, http.StatusBadRequest)
			if env := rec.DecodeEnvelope(t, nil); env.Success || env.Error != tt.wantErr {
				t.Errorf("envelope = %+v, want error %q", env, tt.wantErr)
			}

			ctx, cancel := testutil.TestContext()
			defer cancel()
			if n := testutil.NewFixtures(t, db).Count(ctx, "applications"); n != 0 {
				t.Errorf("applications persisted = %d, want 0", n)
			}
		})
	}
}

func TestServeList(t *testing.T) {
	h, db := newHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 22; i++ {
		fx.CreateApplication(ctx, "a@example.org", models.ApplicationPending, base.Add(time.Duration(i)*time.Hour))
	}
	fx.CreateApplication(ctx, "b@example.org", models.ApplicationAccepted, base.Add(-time.Hour))

	rec := testutil.NewRecorder()
	h.ServeList(rec, testutil.NewRequest(http.MethodGet, "/applications"))
	rec.AssertStatus(t, http.StatusOK)
	var list []models.Application
	rec.DecodeEnvelope(t, &list)
	if len(list) != 20 {
		t.Fatalf("len = %d, want 20", len(list))
	}
	if !list[0].CreatedAt.After(list[1].CreatedAt) {
		t.Errorf("not newest first: %v then %v", list[0].CreatedAt, list[1].CreatedAt)
	}

	rec = testutil.NewRecorder()
	h.ServeList(rec, testutil.NewRequest(http.MethodGet, "/applications?status=accepted"))
	rec.DecodeEnvelope(t, &list)
	if len(list) != 1 || list[0].Email != "b@example.org" {
		t.Errorf("accepted list = %+v", list)
	}

	rec = testutil.NewRecorder()
	h.ServeList(rec, testutil.NewRequest(http.MethodGet, "/applications?status=approved"))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleReview(t *testing.T) {
	h, db := newHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fx.CreateApplication(ctx, "ana@example.org", models.ApplicationPending, time.Now().Add(-time.Hour))
	id := a.ID.Hex()

	put := func(body any) *testutil.ResponseRecorder {
		req := testutil.NewJSONRequest(t, http.MethodPut, "/applications/"+id, body)
		rec := testutil.NewRecorder()
		h.HandleReview(rec, testutil.WithChiURLParam(req, "id", id))
		return rec
	}

	rec := put(map[string]any{"status": "Accepted", "reviewedBy": "Treasurer", "email": "evil@example.org"})
	rec.AssertStatus(t, http.StatusOK)
	var got models.Application
	rec.DecodeEnvelope(t, &got)
	if got.Status != models.ApplicationAccepted || got.ReviewedBy != "Treasurer" {
		t.Errorf("review not applied: %+v", got)
	}
	if got.ReviewedAt == nil {
		t.Fatal("reviewedAt not stamped")
	}
	if got.Email != "ana@example.org" {
		t.Errorf("applicant field changed: %q", got.Email)
	}

	rec = put(map[string]any{"notes": "Great interview."})
	rec.AssertStatus(t, http.StatusOK)
	var noted models.Application
	rec.DecodeEnvelope(t, &noted)
	if noted.ReviewedAt == nil || !noted.ReviewedAt.Equal(*got.ReviewedAt) {
		t.Errorf("reviewedAt moved without a status change: %v -> %v", got.ReviewedAt, noted.ReviewedAt)
	}

	put(map[string]any{"status": "approved"}).AssertStatus(t, http.StatusBadRequest)
}

func TestViewReviewDelete_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	for _, id := range []string{primitive.NewObjectID().Hex(), "nope"} {
		rec := testutil.NewRecorder()
		h.ServeView(rec, testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/applications/"+id), "id", id))
		rec.AssertStatus(t, http.StatusNotFound)

		rec = testutil.NewRecorder()
		req := testutil.NewJSONRequest(t, http.MethodPut, "/applications/"+id, map[string]any{"status": "reviewing"})
		h.HandleReview(rec, testutil.WithChiURLParam(req, "id", id))
		rec.AssertStatus(t, http.StatusNotFound)

		rec = testutil.NewRecorder()
		h.HandleDelete(rec, testutil.WithChiURLParam(testutil.NewRequest(http.MethodDelete, "/applications/"+id), "id", id))
		rec.AssertStatus(t, http.StatusNotFound)
	}
}

func TestRoutes_GuardAndThrottle(t *testing.T) {
	h, _ := newHandler(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("club-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	limiter := ratelimit.New(1, time.Minute)
	t.Cleanup(limiter.Stop)
	router := applications.Routes(h, adminauth.New(string(hash), zap.NewNop()), limiter)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/", form()))
	rec.AssertStatus(t, http.StatusCreated)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/", form()))
	rec.AssertStatus(t, http.StatusTooManyRequests)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusUnauthorized)

	req := testutil.NewRequest(http.MethodGet, "/")
	req.Header.Set(testutil.AdminKeyHeader, "club-key")
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)
}
