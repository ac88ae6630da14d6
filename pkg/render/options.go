package render

import "github.com/resetalabs/resetapad/pkg/reseta"

// Options describe per-request data renderers can use without mutating the
// template record.
type Options struct {
	// Errors surfaces externally computed validation feedback keyed by field
	// name. Editors map these into inline error chrome plus aria-invalid so
	// assistive tech reflects the state; a missing key or empty string means
	// the field is valid.
	Errors reseta.FieldErrors
	// Signature is an optional image reference (URL or data URI) composited
	// into the preview footer above the doctor identity line. Empty means no
	// signature block.
	Signature string
	// FragmentOnly asks panel renderers to skip their section wrapper and
	// emit just the field markup, for in-place partial updates.
	FragmentOnly bool
}
