package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/resetalabs/resetapad/pkg/render"
	"github.com/resetalabs/resetapad/pkg/reseta"
)

// DesignEditor renders the three color fields and the Rx-symbol toggle.
// Color values are never validated here: any string is accepted and stored;
// the preview tolerates malformed colors.
type DesignEditor struct{}

// NewDesignEditor constructs the design panel renderer.
func NewDesignEditor() *DesignEditor {
	return &DesignEditor{}
}

func (e *DesignEditor) Name() string {
	return "design-editor"
}

func (e *DesignEditor) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render projects the record's design fields into panel HTML. Each color
// field renders as a synchronized picker + text pair bound to the same field
// name; the toggle reflects the record's boolean. With options.FragmentOnly
// the section wrapper is dropped for in-place panel refreshes.
func (e *DesignEditor) Render(_ context.Context, tpl *reseta.Template, options render.Options) ([]byte, error) {
	if tpl == nil {
		return nil, fmt.Errorf("editor: template is nil")
	}

	var builder strings.Builder
	if !options.FragmentOnly {
		builder.WriteString(`<section class="rp-panel rp-panel-design" aria-label="Design Options">` + "\n")
	}

	for _, spec := range ColorFields() {
		value, err := tpl.Value(spec.Name)
		if err != nil {
			return nil, fmt.Errorf("editor: read %s: %w", spec.Name, err)
		}
		builder.WriteString(buildFieldMarkup(spec, buildColorPair(spec, value), ""))
	}

	builder.WriteString(buildCheckbox(reseta.FieldShowRxSymbol, "Show Rx Symbol", tpl.ShowRxSymbol))

	if !options.FragmentOnly {
		builder.WriteString(`</section>` + "\n")
	}
	return []byte(builder.String()), nil
}
