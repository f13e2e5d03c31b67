// internal/app/features/officers/types.go
package officers

import (
	"github.com/dalemusser/clubhub/internal/app/features/shared/params"
	officerstore "github.com/dalemusser/clubhub/internal/app/store/officers"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
)

// officerInput is the JSON body for create and update. Absent fields stay
// nil so updates only touch what the client sent.
type officerInput struct {
	Name         *string   `json:"name"`
	Role         *string   `json:"role"`
	Avatar       *string   `json:"avatar"`
	Bio          *string   `json:"bio"`
	Background   *string   `json:"background"`
	Achievements *[]string `json:"achievements"`
	JoinedYear   *string   `json:"joinedYear"`
	Email        *string   `json:"email"`
	Quote        *string   `json:"quote"`
	IsActive     *bool     `json:"isActive"`
	Order        *int      `json:"order"`
}

func (in officerInput) patch() officerstore.Patch {
	return officerstore.Patch{
		Name:         normalize.Ptr(in.Name, normalize.Name),
		Role:         params.Trim(in.Role),
		Avatar:       params.Trim(in.Avatar),
		Bio:          params.Trim(in.Bio),
		Background:   params.Trim(in.Background),
		Achievements: params.TrimAll(in.Achievements),
		JoinedYear:   params.Trim(in.JoinedYear),
		Email:        normalize.Ptr(in.Email, normalize.Email),
		Quote:        params.Trim(in.Quote),
		IsActive:     in.IsActive,
		Order:        in.Order,
	}
}
