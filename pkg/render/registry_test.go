package render

import (
	"context"
	"testing"

	"github.com/resetalabs/resetapad/pkg/reseta"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/html; charset=utf-8" }
func (s stubRenderer) Render(_ context.Context, _ *reseta.Template, _ Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "preview"})

	renderer, err := registry.Get("preview")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "preview" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "contact-editor"})
	if err := registry.Register(stubRenderer{name: "contact-editor"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil renderer to fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected unnamed renderer to fail")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "preview"})
	registry.MustRegister(stubRenderer{name: "contact-editor"})
	registry.MustRegister(stubRenderer{name: "design-editor"})

	names := registry.List()
	want := []string{"contact-editor", "design-editor", "preview"}
	if len(names) != len(want) {
		t.Fatalf("list length = %d, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("list[%d] = %q, want %q", i, names[i], name)
		}
	}

	if !registry.Has("preview") {
		t.Fatal("expected preview to be registered")
	}
	if registry.Has("tui") {
		t.Fatal("unexpected renderer tui")
	}
}
