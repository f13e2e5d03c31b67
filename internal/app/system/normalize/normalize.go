// internal/app/system/normalize/normalize.go
//
// Package normalize canonicalizes user-entered values before they are
// validated and stored.
package normalize

import "strings"

// Email trims and lowercases an address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name and collapses inner runs of whitespace.
// Case is preserved.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Enum trims and lowercases an enumerated value such as an event type or
// review status, so "Upcoming" and " upcoming" both match "upcoming".
func Enum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ptr applies f to *s, returning nil when s is nil. It suits the pointer
// fields of partial-update payloads.
func Ptr(s *string, f func(string) string) *string {
	if s == nil {
		return nil
	}
	v := f(*s)
	return &v
}
