// internal/domain/models/officer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Officer is one entry in the leadership roster.
// Order is the display rank; ties are broken by newest CreatedAt first.
type Officer struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required,max=120" label:"Name"`
	Role         string             `bson:"role" json:"role" validate:"required,max=120" label:"Role"`
	Avatar       string             `bson:"avatar" json:"avatar" validate:"required,max=500" label:"Avatar"`
	Bio          string             `bson:"bio" json:"bio" validate:"required,max=1000" label:"Biography"`
	Background   string             `bson:"background" json:"background" validate:"required,max=5000" label:"Background"`
	Achievements []string           `bson:"achievements,omitempty" json:"achievements,omitempty" validate:"omitempty,min=1,dive,required" label:"Achievements"`
	JoinedYear   string             `bson:"joined_year" json:"joinedYear" validate:"required,max=20" label:"Joined year"`
	Email        string             `bson:"email" json:"email" validate:"required,email" label:"Email"`
	Quote        string             `bson:"quote" json:"quote" validate:"required,max=500" label:"Quote"`
	IsActive     bool               `bson:"is_active" json:"isActive"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
