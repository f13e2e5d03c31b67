// internal/app/features/applications/types.go
package applications

import (
	"strings"

	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
)

// applicationInput is what an applicant may send. Review fields are not
// listed, so a client cannot set its own status or notes.
type applicationInput struct {
	FirstName        *string   `json:"firstName"`
	LastName         *string   `json:"lastName"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	DateOfBirth      *string   `json:"dateOfBirth"`
	Occupation       *string   `json:"occupation"`
	Education        *string   `json:"education"`
	Interests        *[]string `json:"interests"`
	Motivation       *string   `json:"motivation"`
	Skills           *[]string `json:"skills"`
	Experience       *string   `json:"experience"`
	Availability     *string   `json:"availability"`
	ReferenceName    *string   `json:"referenceName"`
	ReferenceContact *string   `json:"referenceContact"`
}

// application builds a pending application. An absent date of birth is
// left zero for validation to report; a malformed one is an error.
func (in applicationInput) application() (models.Application, error) {
	a := models.Application{
		FirstName:        normalize.Name(val(in.FirstName)),
		LastName:         normalize.Name(val(in.LastName)),
		Email:            normalize.Email(val(in.Email)),
		Phone:            val(in.Phone),
		Occupation:       val(in.Occupation),
		Education:        val(in.Education),
		Motivation:       val(in.Motivation),
		Experience:       val(in.Experience),
		Availability:     val(in.Availability),
		ReferenceName:    val(in.ReferenceName),
		ReferenceContact: val(in.ReferenceContact),
		Interests:        list(in.Interests),
		Skills:           list(in.Skills),
		Status:           models.ApplicationPending,
	}
	if in.DateOfBirth != nil && strings.TrimSpace(*in.DateOfBirth) != "" {
		dob, err := inputval.ParseDate(*in.DateOfBirth)
		if err != nil {
			return models.Application{}, err
		}
		a.DateOfBirth = dob
	}
	return a, nil
}

func val(s *string) string {
	if s = params.Trim(s); s == nil {
		return ""
	}
	return *s
}

func list(l *[]string) []string {
	if l = params.TrimAll(l); l == nil {
		return []string{}
	}
	return *l
}

// reviewInput is the admin-side update: status, notes and reviewer only.
type reviewInput struct {
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
	ReviewedBy *string `json:"reviewedBy"`
}

func (in reviewInput) review() applicationstore.Review {
	return applicationstore.Review{
		Status:     normalize.Ptr(in.Status, normalize.Enum),
		Notes:      params.Trim(in.Notes),
		ReviewedBy: params.Trim(in.ReviewedBy),
	}
}

const dateOfBirthMessage = "Date of birth must be a calendar date (YYYY-MM-DD)."
