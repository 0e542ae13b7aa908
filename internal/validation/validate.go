// Package validation implements the per-field checks of the user form
// and the fixed-field error record consulted by the submit guard.
package validation

import (
	"regexp"
	"strings"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/models"
)

var (
	// A deliberately simple local@domain.tld shape.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// A loose URL: optional scheme, a dotted host, optional path.
	websiteRe = regexp.MustCompile(`(?i)^(https?://)?[a-z0-9-]+(\.[a-z0-9-]+)+(/\S*)?$`)
)

// FieldErrors holds at most one message per known form field. A fixed
// struct instead of a string-keyed map keeps field lookups type-checked.
// The zero value means "no errors".
type FieldErrors struct {
	Name        string
	Email       string
	Phone       string
	Street      string
	City        string
	CompanyName string
	Website     string
}

// Get returns the stored message for a field, or "" if the field is valid.
func (e FieldErrors) Get(f models.Field) string {
	switch f {
	case models.FieldName:
		return e.Name
	case models.FieldEmail:
		return e.Email
	case models.FieldPhone:
		return e.Phone
	case models.FieldStreet:
		return e.Street
	case models.FieldCity:
		return e.City
	case models.FieldCompanyName:
		return e.CompanyName
	case models.FieldWebsite:
		return e.Website
	}
	return ""
}

// Set stores a message for one field without touching the others.
func (e *FieldErrors) Set(f models.Field, msg string) {
	switch f {
	case models.FieldName:
		e.Name = msg
	case models.FieldEmail:
		e.Email = msg
	case models.FieldPhone:
		e.Phone = msg
	case models.FieldStreet:
		e.Street = msg
	case models.FieldCity:
		e.City = msg
	case models.FieldCompanyName:
		e.CompanyName = msg
	case models.FieldWebsite:
		e.Website = msg
	}
}

// HasErrors reports whether any field currently holds a message.
func (e FieldErrors) HasErrors() bool {
	for _, f := range models.Fields {
		if e.Get(f) != "" {
			return true
		}
	}
	return false
}

// Messages collects all non-empty messages in field display order, for
// the aggregate blocked-submit notification.
func (e FieldErrors) Messages() []string {
	var msgs []string
	for _, f := range models.Fields {
		if m := e.Get(f); m != "" {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// Check validates a single field value and returns an error message, or
// "" when the value is acceptable.
func Check(f models.Field, value string) string {
	value = strings.TrimSpace(value)
	switch f {
	case models.FieldName:
		if len([]rune(value)) < 3 {
			return "name must be at least 3 characters"
		}
	case models.FieldEmail:
		if !emailRe.MatchString(value) {
			return "invalid email address"
		}
	case models.FieldPhone:
		if !validPhone(value) {
			return "phone must contain at least 10 digits"
		}
	case models.FieldStreet:
		if value == "" {
			return "street is required"
		}
	case models.FieldCity:
		if value == "" {
			return "city is required"
		}
	case models.FieldCompanyName:
		// Optional, but not allowed to be a stub.
		if value != "" && len([]rune(value)) < 3 {
			return "company name must be at least 3 characters"
		}
	case models.FieldWebsite:
		if value != "" && !websiteRe.MatchString(value) {
			return "invalid website URL"
		}
	}
	return ""
}

// CheckDraft validates every field of a draft and returns the complete
// error record. Untouched fields are checked too, so a required field
// cannot slip through an otherwise clean submit.
func CheckDraft(d models.Draft) FieldErrors {
	var errs FieldErrors
	for _, f := range models.Fields {
		errs.Set(f, Check(f, d.Get(f)))
	}
	return errs
}

// validPhone accepts an optional leading '+' followed by at least ten
// digits, with spaces, dashes, dots and parentheses as separators.
func validPhone(s string) bool {
	s = strings.TrimPrefix(s, "+")
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 10
}
