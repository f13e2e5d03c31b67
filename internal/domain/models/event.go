// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event types.
const (
	EventTypeMeeting     = "meeting"
	EventTypeService     = "service"
	EventTypeFundraising = "fundraising"
	EventTypeSocial      = "social"
	EventTypeTraining    = "training"
	EventTypeOther       = "other"
)

// Event statuses. Status is set by hand and is not derived from Date,
// so a past-dated event may still read "upcoming" until an officer moves it.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// EventTypes is the canonical list of event types, in display order.
var EventTypes = []string{
	EventTypeMeeting,
	EventTypeService,
	EventTypeFundraising,
	EventTypeSocial,
	EventTypeTraining,
	EventTypeOther,
}

// EventStatuses is the canonical list of event statuses.
var EventStatuses = []string{
	EventStatusUpcoming,
	EventStatusOngoing,
	EventStatusCompleted,
	EventStatusCancelled,
}

type Event struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	Title            string             `bson:"title" json:"title" validate:"required,max=200" label:"Title"`
	Description      string             `bson:"description" json:"description" validate:"required,max=5000" label:"Description"`
	Date             time.Time          `bson:"date" json:"date" validate:"required" label:"Date"`
	Location         string             `bson:"location" json:"location" validate:"required,max=300" label:"Location"`
	Type             string             `bson:"type" json:"type" validate:"required,oneof=meeting service fundraising social training other" label:"Type"`
	Status           string             `bson:"status" json:"status" validate:"required,oneof=upcoming ongoing completed cancelled" label:"Status"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty" validate:"max=500" label:"Image"`
	RegistrationLink string             `bson:"registration_link,omitempty" json:"registrationLink,omitempty" validate:"omitempty,http_url" label:"Registration link"`
	MaxAttendees     *int               `bson:"max_attendees,omitempty" json:"maxAttendees,omitempty" validate:"omitempty,gte=0" label:"Max attendees"`
	CurrentAttendees int                `bson:"current_attendees" json:"currentAttendees" validate:"gte=0" label:"Current attendees"`
	Organizer        string             `bson:"organizer" json:"organizer" validate:"required,max=200" label:"Organizer"`
	ContactEmail     string             `bson:"contact_email" json:"contactEmail" validate:"required,email" label:"Contact email"`
	Highlights       []string           `bson:"highlights" json:"highlights" validate:"dive,required" label:"Highlights"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}
