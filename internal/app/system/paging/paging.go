// internal/app/system/paging/paging.go
package paging

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/query"
)

// MaxLimit caps any caller-supplied ?limit= value.
const MaxLimit = 100

// Default list sizes per collection when ?limit= is absent.
const (
	EventsLimit       = 10
	NewsLimit         = 10
	ApplicationsLimit = 20
)

// ParamError reports a query parameter that failed to parse.
// Handlers surface it as a 400 validation error.
type ParamError struct {
	Param string
	Msg   string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s %s", e.Param, e.Msg)
}

// ParseLimit reads ?limit=. Absent means def; anything else must be an
// integer in [1, MaxLimit].
func ParseLimit(r *http.Request, def int) (int64, error) {
	s := strings.TrimSpace(query.Get(r, "limit"))
	if s == "" {
		return int64(def), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxLimit {
		return 0, &ParamError{Param: "limit", Msg: fmt.Sprintf("must be a whole number between 1 and %d", MaxLimit)}
	}
	return int64(n), nil
}

// ParseBool reads an optional boolean flag. Absent returns nil, meaning
// "do not filter".
func ParseBool(r *http.Request, key string) (*bool, error) {
	s := strings.ToLower(strings.TrimSpace(query.Get(r, key)))
	switch s {
	case "":
		return nil, nil
	case "true", "1", "yes":
		b := true
		return &b, nil
	case "false", "0", "no":
		b := false
		return &b, nil
	}
	return nil, &ParamError{Param: key, Msg: "must be true or false"}
}

// ParseEnum reads an optional value that must be one of allowed.
// Absent returns "".
func ParseEnum(r *http.Request, key string, allowed []string) (string, error) {
	s := normalize.Enum(query.Get(r, key))
	if s == "" {
		return "", nil
	}
	if !slices.Contains(allowed, s) {
		return "", &ParamError{Param: key, Msg: "must be one of " + strings.Join(allowed, ", ")}
	}
	return s, nil
}
