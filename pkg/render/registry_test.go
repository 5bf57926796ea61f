package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-noticegen/pkg/notice"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, notice.Notice, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("expected html renderer, got %q", renderer.Name())
	}
	if !registry.Has("html") {
		t.Fatal("expected Has to report registered renderer")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected empty name to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil renderer to fail")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := registry.Register(stubRenderer{name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	names := registry.List()
	want := []string{"alpha", "mid", "zeta"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected sorted names %v, got %v", want, names)
		}
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for missing renderer")
	}
}
