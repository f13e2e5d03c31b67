package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
		{"Mixed.Case@Domain.ORG", "mixed.case@domain.org"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "Jane Doe"},
		{"  Jane   Doe  ", "Jane Doe"},
		{"Jane\tDoe", "Jane Doe"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnum(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"upcoming", "upcoming"},
		{"Upcoming", "upcoming"},
		{"  SERVICE ", "service"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Enum(tt.input); got != tt.want {
				t.Errorf("Enum(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPtr(t *testing.T) {
	if got := Ptr(nil, Email); got != nil {
		t.Errorf("Ptr(nil) = %v, want nil", *got)
	}
	in := " A@B.ORG "
	got := Ptr(&in, Email)
	if got == nil || *got != "a@b.org" {
		t.Errorf("Ptr(%q, Email) = %v", in, got)
	}
	if in != " A@B.ORG " {
		t.Errorf("input modified: %q", in)
	}
}
