// Package session owns the mutable state behind an editing surface: one
// template record plus its field-error map. Editors and the preview read
// snapshots; every write funnels through the two update channels defined
// here, so last write wins per field in call order.
package session

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/resetalabs/resetapad/pkg/reseta"
)

// UpdateFunc applies one raw edit to a field. It is the plain update channel
// used by fields with no live-validation need.
type UpdateFunc func(field, value string) error

// ValidateFunc inspects a raw value for a field and returns the message to
// display, or "" when the value is acceptable. The session composes it with
// the update so components stay free of business-rule knowledge.
type ValidateFunc func(field, value string) string

// Session owns one template and its error map for the duration of an editing
// session. The three rendering components never write to either; they emit
// edits that land here.
type Session struct {
	mu       sync.Mutex
	template *reseta.Template
	errors   reseta.FieldErrors
	validate ValidateFunc
}

// Option configures a session at construction time.
type Option func(*Session)

// WithValidator injects the live validator used by the validated update
// channel. Without one, validated updates behave like plain updates.
func WithValidator(validate ValidateFunc) Option {
	return func(s *Session) {
		if validate != nil {
			s.validate = validate
		}
	}
}

// WithTemplate seeds the session with an existing record (for example one
// loaded from storage or a preset) instead of the stock defaults.
func WithTemplate(tpl *reseta.Template) Option {
	return func(s *Session) {
		if tpl != nil {
			s.template = tpl.Clone()
		}
	}
}

// New constructs a session applying any provided options.
func New(options ...Option) *Session {
	s := &Session{
		template: reseta.New(),
		errors:   reseta.FieldErrors{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// ApplyField applies a raw edit through the plain update channel. The value
// is stored unmodified and no error state changes.
func (s *Session) ApplyField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template.Set(field, value)
}

// ApplyFieldWithValidation applies a raw edit and recomputes the field's
// error entry. The edit is applied even when invalid: the record mirrors the
// input verbatim and the error map carries the feedback.
func (s *Session) ApplyFieldWithValidation(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.template.Set(field, value); err != nil {
		return err
	}
	if s.validate == nil {
		delete(s.errors, field)
		return nil
	}
	if msg := s.validate(field, value); msg != "" {
		s.errors[field] = msg
	} else {
		delete(s.errors, field)
	}
	return nil
}

// ApplyBool applies a boolean edit, for toggle controls that emit true/false
// rather than text.
func (s *Session) ApplyBool(field string, value bool) error {
	return s.ApplyField(field, strconv.FormatBool(value))
}

// Apply routes an edit to the channel the field catalog prescribes: the
// validated channel for live-checked fields, the plain one otherwise.
func (s *Session) Apply(field, value string) error {
	if !reseta.KnownField(field) {
		return fmt.Errorf("session: unknown field %q", field)
	}
	if reseta.LiveValidated(field) {
		return s.ApplyFieldWithValidation(field, value)
	}
	return s.ApplyField(field, value)
}

// ApplyHours records the hours value for one day.
func (s *Session) ApplyHours(day, hours string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template.SetHours(day, hours)
}

// Snapshot returns a detached copy of the record and error map for
// rendering. Mutating the returned values never affects the session.
func (s *Session) Snapshot() (*reseta.Template, reseta.FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(reseta.FieldErrors, len(s.errors))
	for field, msg := range s.errors {
		if strings.TrimSpace(msg) == "" {
			continue
		}
		errs[field] = msg
	}
	return s.template.Clone(), errs
}
