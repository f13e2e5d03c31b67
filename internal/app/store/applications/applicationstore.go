// internal/app/store/applications/applicationstore.go
package applicationstore

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

// ErrNotFound is returned when no application has the requested id.
var ErrNotFound = errors.New("application not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("applications")}
}

// ListOptions filters List. An empty Status means "any".
type ListOptions struct {
	Status string
	Limit  int64
}

// Review is an officer's decision on an application. Nil means "leave as is".
type Review struct {
	Status     *string
	Notes      *string
	ReviewedBy *string
}

// Apply copies the supplied fields onto a and stamps ReviewedAt when the
// status changes.
func (r Review) Apply(a *models.Application, now time.Time) {
	if r.Status != nil && *r.Status != a.Status {
		a.Status = *r.Status
		t := now
		a.ReviewedAt = &t
	}
	if r.Notes != nil {
		a.Notes = *r.Notes
	}
	if r.ReviewedBy != nil {
		a.ReviewedBy = *r.ReviewedBy
	}
}

// List returns applications newest first. It never returns a nil slice.
func (s *Store) List(ctx context.Context, opt ListOptions) ([]models.Application, error) {
	filter := bson.M{}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	fo := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(opt.Limit)

	cur, err := s.c.Find(ctx, filter, fo)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Application{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns one application or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Application, error) {
	var a models.Application
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Application{}, ErrNotFound
		}
		return models.Application{}, err
	}
	return a, nil
}

// Create assigns an id and timestamps and inserts a. A blank status
// becomes pending.
func (s *Store) Create(ctx context.Context, a models.Application) (models.Application, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	a.ID = primitive.NewObjectID()
	a.DateOfBirth = a.DateOfBirth.UTC().Truncate(time.Millisecond)
	if a.Status == "" {
		a.Status = models.ApplicationPending
	}
	if a.Interests == nil {
		a.Interests = []string{}
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Application{}, err
	}
	return a, nil
}

// SetReview writes r and returns the updated application, or ErrNotFound.
// reviewed_at is stamped only when the status actually changes.
func (s *Store) SetReview(ctx context.Context, id primitive.ObjectID, r Review) (models.Application, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Application{}, err
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	r.Apply(&cur, now)

	set := bson.M{
		"status":      cur.Status,
		"notes":       cur.Notes,
		"reviewed_by": cur.ReviewedBy,
		"updated_at":  now,
	}
	if cur.ReviewedAt != nil {
		set["reviewed_at"] = *cur.ReviewedAt
	}

	var a models.Application
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Application{}, ErrNotFound
		}
		return models.Application{}, err
	}
	return a, nil
}

// Delete removes an application and returns it as it was, or ErrNotFound.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Application, error) {
	var a models.Application
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Application{}, ErrNotFound
		}
		return models.Application{}, err
	}
	return a, nil
}
