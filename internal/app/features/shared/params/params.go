// internal/app/features/shared/params/params.go
package params

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID reads the {id} route parameter. ok is false for anything that is not
// a 24-hex ObjectID; handlers answer that with 404.
func ID(r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(chi.URLParam(r, "id")))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// Trim returns a trimmed copy of *s, or nil when s is nil.
func Trim(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// TrimAll returns a copy of *list with every entry trimmed, or nil when
// list is nil. Blank entries are kept so validation can report them.
func TrimAll(list *[]string) *[]string {
	if list == nil {
		return nil
	}
	out := make([]string, len(*list))
	for i, s := range *list {
		out[i] = strings.TrimSpace(s)
	}
	return &out
}
