// internal/app/system/inputval/inputval.go
//
// Package inputval validates request payloads and domain records.
//
// Rules live in struct tags (`validate:"required,max=200"`) and messages use
// the field's `label` tag, so a failing record yields text that can go
// straight back to the admin console ("Name is required.").
package inputval

import (
	"errors"
	"fmt"
	"net/mail"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
			return f.Name
		})
		_ = v.RegisterValidation("email", func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		})
	})
	return v
}

// FieldError is a single failed rule with a human-readable message.
type FieldError struct {
	Field   string
	Message string
}

// Result collects validation failures in struct field order.
type Result struct {
	errs []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first message, or "" when valid.
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0].Message
}

// All returns every failure.
func (r Result) All() []FieldError { return r.errs }

// Validate runs the struct-tag rules on s.
func Validate(s any) Result {
	err := engine().Struct(s)
	if err == nil {
		return Result{}
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return Result{errs: []FieldError{{Message: "Invalid input."}}}
	}
	out := make([]FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return Result{errs: out}
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	isList := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array
	switch fe.Tag() {
	case "required":
		// dive,required reports per element, e.g. "Tags[1]"
		if strings.HasSuffix(label, "]") {
			return fmt.Sprintf("%s must not contain blank entries.", label[:strings.Index(label, "[")])
		}
		return fmt.Sprintf("%s is required.", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", label)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL.", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		if isList {
			return fmt.Sprintf("%s must have at most %s items.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "min":
		if isList {
			return fmt.Sprintf("%s must have at least %s item(s).", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater.", label, fe.Param())
	}
	return fmt.Sprintf("%s is invalid.", label)
}

// IsValidEmail accepts a bare RFC 5322 address (no display name) whose
// local part and domain have no empty dot-separated labels.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t<>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(s, "@")
	local, domain := s[:at], s[at+1:]
	for _, part := range [][]string{strings.Split(local, "."), strings.Split(domain, ".")} {
		for _, p := range part {
			if p == "" {
				return false
			}
		}
	}
	return true
}

// ErrBadDate is returned by ParseDate for unparseable input.
var ErrBadDate = errors.New("date must be YYYY-MM-DD or an RFC 3339 timestamp")

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp
// and returns it in UTC. Bare dates are anchored at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadDate
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrBadDate
}
