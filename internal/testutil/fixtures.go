package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures inserts records straight into the test database, bypassing the
// stores, so tests can arrange state independently of the code under test.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert %s fixture: %v", coll, err)
	}
}

// ValidOfficer returns an officer with every mandatory field filled.
func ValidOfficer(name string) models.Officer {
	return models.Officer{
		Name:         name,
		Role:         "Secretary",
		Avatar:       "/img/officers/default.jpg",
		Bio:          "Keeps the minutes.",
		Background:   "Joined as a volunteer and stayed.",
		Achievements: []string{"Ran the book drive"},
		JoinedYear:   "2022",
		Email:        "officer@example.org",
		Quote:        "Service first.",
		IsActive:     true,
	}
}

// CreateOfficer inserts an officer with the given rank and active flag.
func (f *Fixtures) CreateOfficer(ctx context.Context, name string, order int, active bool) models.Officer {
	f.t.Helper()
	now := time.Now().UTC()
	o := ValidOfficer(name)
	o.ID = primitive.NewObjectID()
	o.Order = order
	o.IsActive = active
	o.CreatedAt = now
	o.UpdatedAt = now
	f.insert(ctx, "officers", o)
	return o
}

// ValidEvent returns an event with every mandatory field filled.
func ValidEvent(title string, date time.Time) models.Event {
	return models.Event{
		Title:        title,
		Description:  "Bring gloves and water.",
		Date:         date,
		Location:     "Riverside Park",
		Type:         models.EventTypeService,
		Status:       models.EventStatusUpcoming,
		Organizer:    "Service Committee",
		ContactEmail: "events@example.org",
		Highlights:   []string{},
	}
}

// CreateEvent inserts an event with the given date and status.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, date time.Time, status string) models.Event {
	f.t.Helper()
	now := time.Now().UTC()
	e := ValidEvent(title, date.UTC())
	e.ID = primitive.NewObjectID()
	e.Status = status
	e.CreatedAt = now
	e.UpdatedAt = now
	f.insert(ctx, "events", e)
	return e
}

// ValidNews returns an unpublished article with every mandatory field filled.
func ValidNews(title string) models.News {
	return models.News{
		Title:    title,
		Content:  "<p>Full story.</p>",
		Summary:  "Short teaser.",
		Author:   "Club Press",
		Category: "Updates",
		Tags:     []string{},
	}
}

// CreateNews inserts an article. Published articles get publishedAt = at;
// sort_at follows the same rule the news store applies.
func (f *Fixtures) CreateNews(ctx context.Context, title, category string, published bool, at time.Time) models.News {
	f.t.Helper()
	at = at.UTC()
	n := ValidNews(title)
	n.ID = primitive.NewObjectID()
	n.Category = category
	n.CategoryCI = text.Fold(category)
	n.IsPublished = published
	n.CreatedAt = at
	n.UpdatedAt = at
	n.SortAt = at
	if published {
		n.PublishedAt = &at
	}
	f.insert(ctx, "news", n)
	return n
}

// ValidApplication returns a pending application with every mandatory field filled.
func ValidApplication(email string) models.Application {
	return models.Application{
		FirstName:    "Ana",
		LastName:     "Ruiz",
		Email:        email,
		Phone:        "555-0100",
		DateOfBirth:  time.Date(2004, 5, 17, 0, 0, 0, 0, time.UTC),
		Occupation:   "Student",
		Education:    "High school",
		Interests:    []string{"community service"},
		Motivation:   "I want to help my neighbourhood.",
		Skills:       []string{},
		Availability: "Weekends",
		Status:       models.ApplicationPending,
	}
}

// CreateApplication inserts an application with the given status.
func (f *Fixtures) CreateApplication(ctx context.Context, email, status string, createdAt time.Time) models.Application {
	f.t.Helper()
	a := ValidApplication(email)
	a.ID = primitive.NewObjectID()
	a.Status = status
	a.CreatedAt = createdAt.UTC()
	a.UpdatedAt = createdAt.UTC()
	f.insert(ctx, "applications", a)
	return a
}

// Count returns the number of documents in coll.
func (f *Fixtures) Count(ctx context.Context, coll string) int64 {
	f.t.Helper()
	n, err := f.db.Collection(coll).CountDocuments(ctx, bson.M{})
	if err != nil {
		f.t.Fatalf("count %s: %v", coll, err)
	}
	return n
}
