// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no event has the requested id.
var ErrNotFound = errors.New("event not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// ListOptions filters List. Empty strings mean "any". Limit must be > 0.
type ListOptions struct {
	Status string
	Type   string
	Limit  int64
}

// Patch carries the fields of a partial update. Nil means "leave as is".
type Patch struct {
	Title            *string
	Description      *string
	Date             *time.Time
	Location         *string
	Type             *string
	Status           *string
	Image            *string
	RegistrationLink *string
	MaxAttendees     *int
	CurrentAttendees *int
	Organizer        *string
	ContactEmail     *string
	Highlights       *[]string
}

// Apply copies the supplied fields onto e.
func (p Patch) Apply(e *models.Event) {
	str := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	str(&e.Title, p.Title)
	str(&e.Description, p.Description)
	if p.Date != nil {
		e.Date = p.Date.UTC().Truncate(time.Millisecond)
	}
	str(&e.Location, p.Location)
	str(&e.Type, p.Type)
	str(&e.Status, p.Status)
	str(&e.Image, p.Image)
	str(&e.RegistrationLink, p.RegistrationLink)
	if p.MaxAttendees != nil {
		v := *p.MaxAttendees
		e.MaxAttendees = &v
	}
	if p.CurrentAttendees != nil {
		e.CurrentAttendees = *p.CurrentAttendees
	}
	str(&e.Organizer, p.Organizer)
	str(&e.ContactEmail, p.ContactEmail)
	if p.Highlights != nil {
		e.Highlights = *p.Highlights
	}
}

func (p Patch) set() bson.M {
	set := bson.M{}
	add := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	add("title", p.Title)
	add("description", p.Description)
	if p.Date != nil {
		set["date"] = p.Date.UTC().Truncate(time.Millisecond)
	}
	add("location", p.Location)
	add("type", p.Type)
	add("status", p.Status)
	add("image", p.Image)
	add("registration_link", p.RegistrationLink)
	if p.MaxAttendees != nil {
		set["max_attendees"] = *p.MaxAttendees
	}
	if p.CurrentAttendees != nil {
		set["current_attendees"] = *p.CurrentAttendees
	}
	add("organizer", p.Organizer)
	add("contact_email", p.ContactEmail)
	if p.Highlights != nil {
		set["highlights"] = nonNil(*p.Highlights)
	}
	return set
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// List returns events soonest first; events on the same date are newest
// created first. It never returns a nil slice.
func (s *Store) List(ctx context.Context, opt ListOptions) ([]models.Event, error) {
	filter := bson.M{}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	if opt.Type != "" {
		filter["type"] = opt.Type
	}
	fo := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: -1}}).
		SetLimit(opt.Limit)

	cur, err := s.c.Find(ctx, filter, fo)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Event{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns one event or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var e models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}
	return e, nil
}

// Create assigns an id and timestamps and inserts e. A blank status
// becomes upcoming.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	e.ID = primitive.NewObjectID()
	e.Date = e.Date.UTC().Truncate(time.Millisecond)
	if e.Status == "" {
		e.Status = models.EventStatusUpcoming
	}
	e.Highlights = nonNil(e.Highlights)
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// Update applies p and returns the updated event, or ErrNotFound.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (models.Event, error) {
	set := p.set()
	set["updated_at"] = time.Now().UTC().Truncate(time.Millisecond)

	var e models.Event
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}
	return e, nil
}

// Delete removes an event and returns it as it was, or ErrNotFound.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var e models.Event
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}
	return e, nil
}
