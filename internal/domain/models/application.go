// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application review statuses.
const (
	ApplicationPending   = "pending"
	ApplicationReviewing = "reviewing"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
)

// ApplicationStatuses is the canonical list of review statuses.
var ApplicationStatuses = []string{
	ApplicationPending,
	ApplicationReviewing,
	ApplicationAccepted,
	ApplicationRejected,
}

// Application is a membership application submitted from the public site.
// The review fields (Status, Notes, ReviewedBy, ReviewedAt) are only
// written by officers.
type Application struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	FirstName        string             `bson:"first_name" json:"firstName" validate:"required,max=100" label:"First name"`
	LastName         string             `bson:"last_name" json:"lastName" validate:"required,max=100" label:"Last name"`
	Email            string             `bson:"email" json:"email" validate:"required,email" label:"Email"`
	Phone            string             `bson:"phone" json:"phone" validate:"required,max=40" label:"Phone"`
	DateOfBirth      time.Time          `bson:"date_of_birth" json:"dateOfBirth" validate:"required" label:"Date of birth"`
	Occupation       string             `bson:"occupation" json:"occupation" validate:"required,max=200" label:"Occupation"`
	Education        string             `bson:"education" json:"education" validate:"required,max=200" label:"Education"`
	Interests        []string           `bson:"interests" json:"interests" validate:"required,min=1,dive,required" label:"Interests"`
	Motivation       string             `bson:"motivation" json:"motivation" validate:"required,max=5000" label:"Motivation"`
	Skills           []string           `bson:"skills" json:"skills" validate:"dive,required" label:"Skills"`
	Experience       string             `bson:"experience,omitempty" json:"experience,omitempty" validate:"max=5000" label:"Experience"`
	Availability     string             `bson:"availability" json:"availability" validate:"required,max=500" label:"Availability"`
	ReferenceName    string             `bson:"reference_name,omitempty" json:"referenceName,omitempty" validate:"max=200" label:"Reference name"`
	ReferenceContact string             `bson:"reference_contact,omitempty" json:"referenceContact,omitempty" validate:"max=200" label:"Reference contact"`
	Status           string             `bson:"status" json:"status" validate:"required,oneof=pending reviewing accepted rejected" label:"Status"`
	Notes            string             `bson:"notes,omitempty" json:"notes,omitempty" validate:"max=5000" label:"Notes"`
	ReviewedBy       string             `bson:"reviewed_by,omitempty" json:"reviewedBy,omitempty" validate:"max=200" label:"Reviewed by"`
	ReviewedAt       *time.Time         `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}
