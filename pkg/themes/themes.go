// Package themes maps go-theme palettes onto letterhead design fields. A
// palette manifest carries header/accent/paper color tokens, optionally with
// variants that override individual tokens. Applying a selection writes the
// resolved tokens into a template record through the same field channel the
// editors use, so a palette pick behaves like three color edits.
package themes

import (
	"fmt"
	"sort"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/resetalabs/resetapad/pkg/reseta"
)

// Token names a palette manifest must provide.
const (
	TokenHeader = "header"
	TokenAccent = "accent"
	TokenPaper  = "paper"
)

// DefaultTheme is the palette applied when no selection is stored.
const DefaultTheme = "classic"

// manifestValidator is the slice of the go-theme registry we rely on for
// manifest validation when palettes are registered.
type manifestValidator interface {
	Register(*theme.Manifest) error
}

// Selector resolves palette selections. It satisfies theme.ThemeSelector so
// it can slot anywhere the library expects one.
type Selector struct {
	mu        sync.RWMutex
	validator manifestValidator
	manifests map[string]*theme.Manifest
}

// NewSelector builds a selector pre-loaded with the built-in palettes.
func NewSelector() *Selector {
	s := &Selector{
		validator: theme.NewRegistry(),
		manifests: make(map[string]*theme.Manifest),
	}
	for _, m := range builtinPalettes() {
		if err := s.Register(m); err != nil {
			panic(fmt.Sprintf("themes: builtin palette %q: %v", m.Name, err))
		}
	}
	return s
}

// Register validates a palette manifest and makes it selectable. Every
// manifest must define the three color tokens.
func (s *Selector) Register(m *theme.Manifest) error {
	if m == nil {
		return fmt.Errorf("themes: manifest is nil")
	}
	for _, token := range []string{TokenHeader, TokenAccent, TokenPaper} {
		if m.Tokens[token] == "" {
			return fmt.Errorf("themes: palette %q missing token %q", m.Name, token)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[m.Name]; exists {
		return fmt.Errorf("themes: palette %q already registered", m.Name)
	}
	if err := s.validator.Register(m); err != nil {
		return fmt.Errorf("themes: register palette %q: %w", m.Name, err)
	}
	s.manifests[m.Name] = m
	return nil
}

// Select resolves a palette by name and optional variant. An empty name
// resolves the default palette.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name == "" {
		name = DefaultTheme
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("themes: unknown palette %q", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("themes: palette %q has no variant %q", name, variant)
		}
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Names lists registered palettes in sorted order.
func (s *Selector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tokens resolves a selection's color tokens, base first, variant overrides
// on top.
func Tokens(selection *theme.Selection) (map[string]string, error) {
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("themes: selection has no manifest")
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for k, v := range selection.Manifest.Tokens {
		tokens[k] = v
	}
	if selection.Variant != "" {
		variant, ok := selection.Manifest.Variants[selection.Variant]
		if !ok {
			return nil, fmt.Errorf("themes: palette %q has no variant %q", selection.Theme, selection.Variant)
		}
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
	}
	return tokens, nil
}

// Apply writes a selection's resolved color tokens into the template record
// through the regular field channel.
func Apply(selection *theme.Selection, tpl *reseta.Template) error {
	if tpl == nil {
		return fmt.Errorf("themes: template is nil")
	}
	tokens, err := Tokens(selection)
	if err != nil {
		return err
	}

	fields := map[string]string{
		TokenHeader: reseta.FieldHeaderColor,
		TokenAccent: reseta.FieldAccentColor,
		TokenPaper:  reseta.FieldPaperColor,
	}
	for token, field := range fields {
		value, ok := tokens[token]
		if !ok || value == "" {
			return fmt.Errorf("themes: palette %q missing token %q", selection.Theme, token)
		}
		if err := tpl.Set(field, value); err != nil {
			return fmt.Errorf("themes: apply %s: %w", field, err)
		}
	}
	return nil
}

// RendererConfig translates a selection into the renderer-facing config,
// with CSS custom properties derived from the tokens.
func RendererConfig(selection *theme.Selection) (*theme.RendererConfig, error) {
	tokens, err := Tokens(selection)
	if err != nil {
		return nil, err
	}

	cssVars := make(map[string]string, len(tokens))
	for k, v := range tokens {
		cssVars["--"+k] = v
	}

	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}, nil
}

func builtinPalettes() []*theme.Manifest {
	return []*theme.Manifest{
		{
			Name:    "classic",
			Version: "1.0.0",
			Tokens: map[string]string{
				TokenHeader: "#1a5276",
				TokenAccent: "#1a5276",
				TokenPaper:  "#ffffff",
			},
			Variants: map[string]theme.Variant{
				"contrast": {
					Tokens: map[string]string{
						TokenHeader: "#0b2e45",
						TokenAccent: "#0b2e45",
					},
				},
			},
		},
		{
			Name:    "modern",
			Version: "1.0.0",
			Tokens: map[string]string{
				TokenHeader: "#0f172a",
				TokenAccent: "#0ea5e9",
				TokenPaper:  "#ffffff",
			},
		},
		{
			Name:    "warm",
			Version: "1.0.0",
			Tokens: map[string]string{
				TokenHeader: "#7b341e",
				TokenAccent: "#c05621",
				TokenPaper:  "#fffaf0",
			},
			Variants: map[string]theme.Variant{
				"soft": {
					Tokens: map[string]string{
						TokenAccent: "#dd6b20",
					},
				},
			},
		},
	}
}
