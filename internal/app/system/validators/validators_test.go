package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/validators"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func setup(t *testing.T) *mongo.Database {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	return db
}

func TestEnsureAll_IdempotentAndCreatesCollections(t *testing.T) {
	db := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames: %v", err)
	}
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	for _, want := range []string{"officers", "events", "news", "applications"} {
		if !have[want] {
			t.Errorf("collection %q was not created", want)
		}
	}
}

func TestValidators_RejectAndAccept(t *testing.T) {
	db := setup(t)
	now := time.Now().UTC()

	tests := []struct {
		name    string
		coll    string
		doc     bson.M
		wantErr bool
	}{
		{
			name: "officer valid",
			coll: "officers",
			doc:  bson.M{"name": "Jane", "role": "President", "email": "jane@example.org", "is_active": true, "order": 0, "created_at": now},
		},
		{
			name:    "officer blank name",
			coll:    "officers",
			doc:     bson.M{"name": "   ", "role": "President", "email": "jane@example.org", "is_active": true, "order": 0, "created_at": now},
			wantErr: true,
		},
		{
			name: "event valid",
			coll: "events",
			doc:  bson.M{"title": "Park cleanup", "date": now, "type": "service", "status": "upcoming", "created_at": now},
		},
		{
			name:    "event bad type",
			coll:    "events",
			doc:     bson.M{"title": "Party", "date": now, "type": "concert", "status": "upcoming", "created_at": now},
			wantErr: true,
		},
		{
			name:    "event negative attendees",
			coll:    "events",
			doc:     bson.M{"title": "Walk", "date": now, "type": "social", "status": "upcoming", "current_attendees": -1, "created_at": now},
			wantErr: true,
		},
		{
			name: "news valid",
			coll: "news",
			doc:  bson.M{"title": "Hello", "category": "Updates", "category_ci": "updates", "is_published": false, "sort_at": now, "created_at": now},
		},
		{
			name:    "news missing sort_at",
			coll:    "news",
			doc:     bson.M{"title": "Hello", "category": "Updates", "category_ci": "updates", "is_published": false, "created_at": now},
			wantErr: true,
		},
		{
			name: "application valid",
			coll: "applications",
			doc:  bson.M{"first_name": "Ana", "last_name": "Ruiz", "email": "ana@example.org", "interests": bson.A{"service"}, "status": "pending", "created_at": now},
		},
		{
			name:    "application bad status",
			coll:    "applications",
			doc:     bson.M{"first_name": "Ana", "last_name": "Ruiz", "email": "ana@example.org", "interests": bson.A{"service"}, "status": "approved", "created_at": now},
			wantErr: true,
		},
		{
			name:    "application empty interests",
			coll:    "applications",
			doc:     bson.M{"first_name": "Ana", "last_name": "Ruiz", "email": "ana@example.org", "interests": bson.A{}, "status": "pending", "created_at": now},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := testutil.TestContext()
			defer cancel()

			_, err := db.Collection(tt.coll).InsertOne(ctx, tt.doc)
			if tt.wantErr && err == nil {
				t.Error("expected document to be rejected")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected document to be accepted: %v", err)
			}
		})
	}
}
