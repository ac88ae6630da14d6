package editor

import (
	"html"
	"strings"
)

// controlID builds the DOM id for a field's primary input.
func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "rp-" + trimmed
}

func errorID(name string) string {
	id := controlID(name)
	if id == "" {
		return ""
	}
	return id + "-error"
}

// buildFieldMarkup wraps a rendered control with its label, update-channel
// metadata, and error chrome. The error string renders verbatim below the
// control; presence of a non-empty message also flips the invalid visual
// state and aria-invalid on the wrapper's control (the control itself is
// expected to carry aria-invalid, set by its builder).
func buildFieldMarkup(spec FieldSpec, control, errMsg string) string {
	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="rp-field`)
	if errMsg != "" {
		builder.WriteString(` rp-field-invalid`)
	}
	builder.WriteString(`" data-update-field="`)
	builder.WriteString(html.EscapeString(spec.Name))
	builder.WriteString(`"`)
	if spec.Validated {
		builder.WriteString(` data-validate="true"`)
	}
	builder.WriteString(">\n")

	if strings.TrimSpace(spec.Label) != "" {
		builder.WriteString(`    <label for="`)
		builder.WriteString(html.EscapeString(controlID(spec.Name)))
		builder.WriteString(`" class="rp-label">`)
		builder.WriteString(html.EscapeString(spec.Label))
		if spec.Required {
			builder.WriteString(` <span class="rp-required" aria-hidden="true">*</span>`)
		}
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if errMsg != "" {
		builder.WriteString(`    <p id="`)
		builder.WriteString(html.EscapeString(errorID(spec.Name)))
		builder.WriteString(`" class="rp-error" role="alert">`)
		builder.WriteString(html.EscapeString(errMsg))
		builder.WriteString("</p>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

// buildTextInput renders a controlled text-like input. The displayed value is
// always the record's current value; the input carries no state of its own.
func buildTextInput(spec FieldSpec, value, errMsg string) string {
	var builder strings.Builder

	builder.WriteString(`<input type="`)
	if spec.Kind == "" {
		builder.WriteString("text")
	} else {
		builder.WriteString(html.EscapeString(spec.Kind))
	}
	builder.WriteString(`" id="`)
	builder.WriteString(html.EscapeString(controlID(spec.Name)))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(spec.Name))
	builder.WriteString(`" value="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`" class="rp-input"`)
	if spec.Placeholder != "" {
		builder.WriteString(` placeholder="`)
		builder.WriteString(html.EscapeString(spec.Placeholder))
		builder.WriteString(`"`)
	}
	if spec.Required {
		builder.WriteString(` required aria-required="true"`)
	}
	if errMsg != "" {
		builder.WriteString(` aria-invalid="true" aria-describedby="`)
		builder.WriteString(html.EscapeString(errorID(spec.Name)))
		builder.WriteString(`"`)
	}
	builder.WriteString(`>`)
	return builder.String()
}

// buildColorPair renders the synchronized picker + free-text pair for one
// color field. Both inputs bind to the same field name and display the same
// record value; neither keeps independent state.
func buildColorPair(spec FieldSpec, value string) string {
	name := html.EscapeString(spec.Name)
	escaped := html.EscapeString(value)
	id := html.EscapeString(controlID(spec.Name))

	var builder strings.Builder
	builder.WriteString(`<div class="rp-color-pair">` + "\n")
	builder.WriteString(`<input type="color" id="` + id + `" name="` + name + `" value="` + escaped + `" class="rp-color-picker" data-color-sync="` + name + `">` + "\n")
	builder.WriteString(`<input type="text" id="` + id + `-text" name="` + name + `" value="` + escaped + `" class="rp-input rp-color-text" data-color-sync="` + name + `" aria-label="` + html.EscapeString(spec.Label) + ` value">` + "\n")
	builder.WriteString(`</div>`)
	return builder.String()
}

// buildCheckbox renders a boolean toggle.
func buildCheckbox(name, label string, checked bool) string {
	escapedName := html.EscapeString(name)
	id := html.EscapeString(controlID(name))

	var builder strings.Builder
	builder.WriteString(`<div class="rp-field rp-field-toggle" data-update-field="` + escapedName + `">` + "\n")
	builder.WriteString(`    <input type="checkbox" id="` + id + `" name="` + escapedName + `" value="true" class="rp-checkbox"`)
	if checked {
		builder.WriteString(` checked`)
	}
	builder.WriteString(`>` + "\n")
	builder.WriteString(`    <label for="` + id + `" class="rp-label">` + html.EscapeString(label) + `</label>` + "\n")
	builder.WriteString(`</div>` + "\n")
	return builder.String()
}
