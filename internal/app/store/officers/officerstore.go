// internal/app/store/officers/officerstore.go
package officerstore

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

// ErrNotFound is returned when no officer has the requested id.
var ErrNotFound = errors.New("officer not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("officers")}
}

// ListOptions filters List.
type ListOptions struct {
	ActiveOnly bool
}

// Patch carries the fields of a partial update. Nil means "leave as is".
type Patch struct {
	Name         *string
	Role         *string
	Avatar       *string
	Bio          *string
	Background   *string
	Achievements *[]string
	JoinedYear   *string
	Email        *string
	Quote        *string
	IsActive     *bool
	Order        *int
}

// Apply copies the supplied fields onto o.
func (p Patch) Apply(o *models.Officer) {
	setStr(&o.Name, p.Name)
	setStr(&o.Role, p.Role)
	setStr(&o.Avatar, p.Avatar)
	setStr(&o.Bio, p.Bio)
	setStr(&o.Background, p.Background)
	if p.Achievements != nil {
		o.Achievements = *p.Achievements
	}
	setStr(&o.JoinedYear, p.JoinedYear)
	setStr(&o.Email, p.Email)
	setStr(&o.Quote, p.Quote)
	if p.IsActive != nil {
		o.IsActive = *p.IsActive
	}
	if p.Order != nil {
		o.Order = *p.Order
	}
}

func (p Patch) set() bson.M {
	set := bson.M{}
	putStr(set, "name", p.Name)
	putStr(set, "role", p.Role)
	putStr(set, "avatar", p.Avatar)
	putStr(set, "bio", p.Bio)
	putStr(set, "background", p.Background)
	if p.Achievements != nil {
		set["achievements"] = *p.Achievements
	}
	putStr(set, "joined_year", p.JoinedYear)
	putStr(set, "email", p.Email)
	putStr(set, "quote", p.Quote)
	if p.IsActive != nil {
		set["is_active"] = *p.IsActive
	}
	if p.Order != nil {
		set["order"] = *p.Order
	}
	return set
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func putStr(m bson.M, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

// rosterSort is display rank ascending, newest first within a rank.
var rosterSort = bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}

// List returns the roster in display order. It never returns a nil slice.
func (s *Store) List(ctx context.Context, opt ListOptions) ([]models.Officer, error) {
	filter := bson.M{}
	if opt.ActiveOnly {
		filter["is_active"] = true
	}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(rosterSort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Officer{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns one officer or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Officer, error) {
	var o models.Officer
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Officer{}, ErrNotFound
		}
		return models.Officer{}, err
	}
	return o, nil
}

// Create assigns an id and timestamps and inserts o. Callers validate first.
func (s *Store) Create(ctx context.Context, o models.Officer) (models.Officer, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, o); err != nil {
		return models.Officer{}, err
	}
	return o, nil
}

// Update applies p and returns the updated officer, or ErrNotFound.
// Only the supplied fields and updated_at are written.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (models.Officer, error) {
	set := p.set()
	set["updated_at"] = time.Now().UTC().Truncate(time.Millisecond)

	var o models.Officer
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Officer{}, ErrNotFound
		}
		return models.Officer{}, err
	}
	return o, nil
}

// Delete removes an officer and returns it as it was, or ErrNotFound.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Officer, error) {
	var o models.Officer
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Officer{}, ErrNotFound
		}
		return models.Officer{}, err
	}
	return o, nil
}

// ReplaceAll deletes every officer and inserts roster in its place,
// assigning ids and timestamps. It returns the number inserted.
// Run it inside a transaction (see txn.Run) for an atomic swap.
func (s *Store) ReplaceAll(ctx context.Context, roster []models.Officer) (int, error) {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}
	if len(roster) == 0 {
		return 0, nil
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	docs := make([]interface{}, 0, len(roster))
	for _, o := range roster {
		o.ID = primitive.NewObjectID()
		o.CreatedAt = now
		o.UpdatedAt = now
		docs = append(docs, o)
	}
	res, err := s.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
