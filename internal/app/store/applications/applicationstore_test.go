package applicationstore_test

import (
	"errors"
	"testing"
	"time"

	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestStore_CreateDefaultsPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	in := testutil.ValidApplication("ana@example.org")
	in.Status = ""
	in.Skills = nil

	created, err := store.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.ApplicationPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.DateOfBirth.Equal(in.DateOfBirth) || got.Email != "ana@example.org" {
		t.Errorf("round trip: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) || !got.UpdatedAt.Equal(created.UpdatedAt) {
		t.Errorf("stored timestamps %v/%v differ from returned %v/%v",
			got.CreatedAt, got.UpdatedAt, created.CreatedAt, created.UpdatedAt)
	}
}

func TestStore_List_StatusAndOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	fx.CreateApplication(ctx, "a@example.org", models.ApplicationPending, day)
	fx.CreateApplication(ctx, "b@example.org", models.ApplicationPending, day.Add(time.Hour))
	fx.CreateApplication(ctx, "c@example.org", models.ApplicationAccepted, day.Add(2*time.Hour))

	pending, err := store.List(ctx, applicationstore.ListOptions{Status: models.ApplicationPending, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pending) != 2 || pending[0].Email != "b@example.org" || pending[1].Email != "a@example.org" {
		t.Errorf("pending = %+v", pending)
	}

	all, err := store.List(ctx, applicationstore.ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 || all[0].Email != "c@example.org" {
		t.Errorf("all = %+v", all)
	}
}

func TestStore_SetReview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fx.CreateApplication(ctx, "x@example.org", models.ApplicationPending, time.Now())

	noted, err := store.SetReview(ctx, a.ID, applicationstore.Review{Notes: strPtr("Call back Monday")})
	if err != nil {
		t.Fatalf("SetReview notes: %v", err)
	}
	if noted.ReviewedAt != nil {
		t.Error("notes alone should not stamp reviewedAt")
	}
	if noted.Notes != "Call back Monday" || noted.Status != models.ApplicationPending {
		t.Errorf("noted = %+v", noted)
	}

	accepted, err := store.SetReview(ctx, a.ID, applicationstore.Review{
		Status:     strPtr(models.ApplicationAccepted),
		ReviewedBy: strPtr("President"),
	})
	if err != nil {
		t.Fatalf("SetReview status: %v", err)
	}
	if accepted.Status != models.ApplicationAccepted || accepted.ReviewedBy != "President" {
		t.Errorf("accepted = %+v", accepted)
	}
	if accepted.ReviewedAt == nil {
		t.Fatal("status change should stamp reviewedAt")
	}
	if accepted.Notes != "Call back Monday" || accepted.FirstName != a.FirstName {
		t.Errorf("other fields changed: %+v", accepted)
	}

	same, err := store.SetReview(ctx, a.ID, applicationstore.Review{Status: strPtr(models.ApplicationAccepted)})
	if err != nil {
		t.Fatalf("SetReview same status: %v", err)
	}
	if !same.ReviewedAt.Equal(*accepted.ReviewedAt) {
		t.Errorf("unchanged status moved reviewedAt from %v to %v", accepted.ReviewedAt, same.ReviewedAt)
	}
}

func TestStore_DeleteAndNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fx.CreateApplication(ctx, "d@example.org", models.ApplicationRejected, time.Now())
	if _, err := store.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Delete(ctx, a.ID); !errors.Is(err, applicationstore.ErrNotFound) {
		t.Errorf("second Delete err = %v", err)
	}
	if _, err := store.SetReview(ctx, primitive.NewObjectID(), applicationstore.Review{}); !errors.Is(err, applicationstore.ErrNotFound) {
		t.Errorf("SetReview err = %v", err)
	}
}
