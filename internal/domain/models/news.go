// internal/domain/models/news.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News is an article shown on the public news page.
//
// CategoryCI and SortAt are maintained by the store and never leave the
// server: CategoryCI backs case-insensitive category filters, and SortAt is
// PublishedAt for published items and CreatedAt otherwise.
type News struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required,max=300" label:"Title"`
	Content     string             `bson:"content" json:"content" validate:"required" label:"Content"`
	Summary     string             `bson:"summary" json:"summary" validate:"required,max=1000" label:"Summary"`
	Author      string             `bson:"author" json:"author" validate:"required,max=200" label:"Author"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty" validate:"max=500" label:"Image"`
	Category    string             `bson:"category" json:"category" validate:"required,max=100" label:"Category"`
	CategoryCI  string             `bson:"category_ci" json:"-"`
	Tags        []string           `bson:"tags" json:"tags" validate:"dive,required,max=50" label:"Tags"`
	IsPublished bool               `bson:"is_published" json:"isPublished"`
	Featured    bool               `bson:"featured" json:"featured"`
	PublishedAt *time.Time         `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	SortAt      time.Time          `bson:"sort_at" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
