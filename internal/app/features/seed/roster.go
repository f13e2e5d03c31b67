// internal/app/features/seed/roster.go
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/dalemusser/clubhub/internal/domain/models"
)

//go:embed officers_roster.json
var rosterJSON []byte

// Roster returns the built-in officer roster. Order follows the file and
// every entry is active.
func Roster() ([]models.Officer, error) {
	var list []models.Officer
	if err := json.Unmarshal(rosterJSON, &list); err != nil {
		return nil, fmt.Errorf("parse officer roster: %w", err)
	}
	for i := range list {
		list[i].Order = i
		list[i].IsActive = true
	}
	return list, nil
}
