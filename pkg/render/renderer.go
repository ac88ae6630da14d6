package render

import (
	"context"

	"github.com/resetalabs/resetapad/pkg/reseta"
)

// Renderer converts a letterhead template into a byte representation (editor
// panel HTML, preview HTML, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, tpl *reseta.Template, options Options) ([]byte, error)
}
