// internal/app/features/events/types.go
package events

import (
	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
)

// eventInput is the JSON body for create and update. Date arrives as a
// string so both "2025-03-14" and full timestamps are accepted.
type eventInput struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Date             *string   `json:"date"`
	Location         *string   `json:"location"`
	Type             *string   `json:"type"`
	Status           *string   `json:"status"`
	Image            *string   `json:"image"`
	RegistrationLink *string   `json:"registrationLink"`
	MaxAttendees     *int      `json:"maxAttendees"`
	CurrentAttendees *int      `json:"currentAttendees"`
	Organizer        *string   `json:"organizer"`
	ContactEmail     *string   `json:"contactEmail"`
	Highlights       *[]string `json:"highlights"`
}

// patch converts the input into a store patch. Type and status are
// lowercased so "Meeting" matches the enum.
func (in eventInput) patch() (eventstore.Patch, error) {
	p := eventstore.Patch{
		Title:            params.Trim(in.Title),
		Description:      params.Trim(in.Description),
		Location:         params.Trim(in.Location),
		Type:             normalize.Ptr(in.Type, normalize.Enum),
		Status:           normalize.Ptr(in.Status, normalize.Enum),
		Image:            params.Trim(in.Image),
		RegistrationLink: params.Trim(in.RegistrationLink),
		MaxAttendees:     in.MaxAttendees,
		CurrentAttendees: in.CurrentAttendees,
		Organizer:        params.Trim(in.Organizer),
		ContactEmail:     normalize.Ptr(in.ContactEmail, normalize.Email),
		Highlights:       params.TrimAll(in.Highlights),
	}
	if in.Date != nil {
		d, err := inputval.ParseDate(*in.Date)
		if err != nil {
			return eventstore.Patch{}, err
		}
		p.Date = &d
	}
	return p, nil
}

// dateMessage is shown when the date field cannot be parsed.
const dateMessage = "Date must be a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp."
