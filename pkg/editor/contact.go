// Package editor renders the two editing panels of the letterhead surface:
// contact information and design options. Both are read-only projections of
// the template record plus the field-error map; edits travel as
// data-update-field / data-validate metadata consumed by the update endpoint,
// never as local component state.
package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/resetalabs/resetapad/pkg/render"
	"github.com/resetalabs/resetapad/pkg/reseta"
)

// ContactEditor renders one controlled input per contact field and surfaces
// per-field inline error text.
type ContactEditor struct{}

// NewContactEditor constructs the contact-information panel renderer.
func NewContactEditor() *ContactEditor {
	return &ContactEditor{}
}

func (e *ContactEditor) Name() string {
	return "contact-editor"
}

func (e *ContactEditor) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render projects the record's contact fields into panel HTML. Each input's
// displayed value is read from the record; a non-empty entry in
// options.Errors marks the field invalid and renders the message verbatim
// below it. With options.FragmentOnly the section wrapper is dropped so the
// field list can replace an already-mounted panel's contents.
func (e *ContactEditor) Render(_ context.Context, tpl *reseta.Template, options render.Options) ([]byte, error) {
	if tpl == nil {
		return nil, fmt.Errorf("editor: template is nil")
	}

	var builder strings.Builder
	if !options.FragmentOnly {
		builder.WriteString(`<section class="rp-panel rp-panel-contact" aria-label="Contact Information">` + "\n")
	}

	for _, spec := range ContactFields() {
		value, err := tpl.Value(spec.Name)
		if err != nil {
			return nil, fmt.Errorf("editor: read %s: %w", spec.Name, err)
		}
		errMsg := options.Errors.ErrorFor(spec.Name)
		control := buildTextInput(spec, value, errMsg)
		builder.WriteString(buildFieldMarkup(spec, control, errMsg))
	}

	if !options.FragmentOnly {
		builder.WriteString(`</section>` + "\n")
	}
	return []byte(builder.String()), nil
}
