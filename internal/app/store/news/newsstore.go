// internal/app/store/news/newsstore.go
package newsstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no article has the requested id.
var ErrNotFound = errors.New("news article not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("news")}
}

// ListOptions filters List. Nil flags and an empty category mean "any".
type ListOptions struct {
	Published *bool
	Featured  *bool
	Category  string
	Limit     int64
}

// Patch carries the fields of a partial update. Nil means "leave as is".
type Patch struct {
	Title       *string
	Content     *string
	Summary     *string
	Author      *string
	Image       *string
	Category    *string
	Tags        *[]string
	IsPublished *bool
	Featured    *bool
	PublishedAt *time.Time
}

// Apply copies the supplied fields onto n.
func (p Patch) Apply(n *models.News) {
	str := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	str(&n.Title, p.Title)
	str(&n.Content, p.Content)
	str(&n.Summary, p.Summary)
	str(&n.Author, p.Author)
	str(&n.Image, p.Image)
	str(&n.Category, p.Category)
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
	if p.IsPublished != nil {
		n.IsPublished = *p.IsPublished
	}
	if p.Featured != nil {
		n.Featured = *p.Featured
	}
	if p.PublishedAt != nil {
		t := p.PublishedAt.UTC().Truncate(time.Millisecond)
		n.PublishedAt = &t
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
	add("content", p.Content)
	add("summary", p.Summary)
	add("author", p.Author)
	add("image", p.Image)
	add("category", p.Category)
	if p.Tags != nil {
		set["tags"] = nonNil(*p.Tags)
	}
	if p.IsPublished != nil {
		set["is_published"] = *p.IsPublished
	}
	if p.Featured != nil {
		set["featured"] = *p.Featured
	}
	return set
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// derive fills the stored helper fields. A published article without a
// publish time is stamped with now.
func derive(n *models.News, now time.Time) {
	n.CategoryCI = text.Fold(n.Category)
	if n.IsPublished && n.PublishedAt == nil {
		t := now
		n.PublishedAt = &t
	}
	if n.IsPublished && n.PublishedAt != nil {
		n.SortAt = *n.PublishedAt
	} else {
		n.SortAt = n.CreatedAt
	}
}

// List returns articles most recent first (publish time, or creation time
// for unpublished items). It never returns a nil slice.
func (s *Store) List(ctx context.Context, opt ListOptions) ([]models.News, error) {
	filter := bson.M{}
	if opt.Published != nil {
		filter["is_published"] = *opt.Published
	}
	if opt.Featured != nil {
		filter["featured"] = *opt.Featured
	}
	if opt.Category != "" {
		filter["category_ci"] = text.Fold(opt.Category)
	}
	fo := options.Find().
		SetSort(bson.D{{Key: "sort_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(opt.Limit)

	cur, err := s.c.Find(ctx, filter, fo)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.News{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns one article or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.News, error) {
	var n models.News
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.News{}, ErrNotFound
		}
		return models.News{}, err
	}
	return n, nil
}

// Create assigns an id and timestamps, fills the helper fields and inserts n.
func (s *Store) Create(ctx context.Context, n models.News) (models.News, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	n.ID = primitive.NewObjectID()
	n.CreatedAt = now
	n.UpdatedAt = now
	n.Tags = nonNil(n.Tags)
	if n.PublishedAt != nil {
		t := n.PublishedAt.UTC().Truncate(time.Millisecond)
		n.PublishedAt = &t
	}
	derive(&n, now)

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.News{}, err
	}
	return n, nil
}

// Update applies p, recomputes the helper fields against the merged
// article, and returns the result or ErrNotFound.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (models.News, error) {
	merged, err := s.GetByID(ctx, id)
	if err != nil {
		return models.News{}, err
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	p.Apply(&merged)
	derive(&merged, now)

	set := p.set()
	set["category_ci"] = merged.CategoryCI
	set["sort_at"] = merged.SortAt
	if merged.PublishedAt != nil {
		set["published_at"] = *merged.PublishedAt
	}
	set["updated_at"] = now

	var n models.News
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.News{}, ErrNotFound
		}
		return models.News{}, err
	}
	return n, nil
}

// Delete removes an article and returns it as it was, or ErrNotFound.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.News, error) {
	var n models.News
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.News{}, ErrNotFound
		}
		return models.News{}, err
	}
	return n, nil
}
