// Package validation implements the live field checks the contact editor
// routes phone, mobile, and email edits through. The editors themselves never
// validate; they display whatever message the session stored from here.
package validation

import (
	"regexp"
	"strings"

	"github.com/resetalabs/resetapad/pkg/reseta"
)

// Violations maps field names to display messages.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Validator bundles the compiled patterns for live-validated fields.
type Validator struct {
	emailPattern *regexp.Regexp
	phoneChars   *regexp.Regexp
	phoneDigits  *regexp.Regexp
}

// NewValidator creates a validator instance.
func NewValidator() *Validator {
	return &Validator{
		// Pragmatic email shape: local@domain.tld, no spaces.
		emailPattern: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),

		// Phone numbers: digits plus the usual formatting characters.
		phoneChars:  regexp.MustCompile(`^[0-9+\-().\s]+$`),
		phoneDigits: regexp.MustCompile(`[0-9]`),
	}
}

// ValidateField checks one field's raw value and returns the message to show
// next to it, or "" when the value is acceptable. Optional fields are valid
// when blank; required fields are not.
func (v *Validator) ValidateField(field, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if reseta.Required(field) {
			return "This field is required"
		}
		return ""
	}

	switch field {
	case reseta.FieldEmail:
		return v.email(trimmed)
	case reseta.FieldPhone, reseta.FieldMobile:
		return v.phone(trimmed)
	default:
		return ""
	}
}

// Check runs ValidateField and records any violation.
func (v *Validator) Check(field, value string, out Violations) {
	if msg := v.ValidateField(field, value); msg != "" {
		out[field] = msg
	}
}

func (v *Validator) email(value string) string {
	if !v.emailPattern.MatchString(value) {
		return "Invalid email format"
	}
	return ""
}

func (v *Validator) phone(value string) string {
	if !v.phoneChars.MatchString(value) {
		return "Invalid format"
	}
	digits := len(v.phoneDigits.FindAllString(value, -1))
	if digits < 7 || digits > 15 {
		return "Invalid format"
	}
	return ""
}
