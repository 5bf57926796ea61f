package gotemplate

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }}"),
		},
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when neither base dir nor fs.FS is configured")
	}
}

func TestRenderTemplate_AppendsExtension(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("templates/greeting", map[string]any{"name": "world"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello world" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderString(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("value: {{ value }}", map[string]any{"value": "42"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "value: 42" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRender_DetectsInlineContent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	inline, err := engine.Render("inline {{ name }}", map[string]any{"name": "content"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "inline content" {
		t.Fatalf("unexpected inline output %q", inline)
	}

	named, err := engine.Render("templates/greeting", map[string]any{"name": "file"})
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if named != "Hello file" {
		t.Fatalf("unexpected named output %q", named)
	}
}

func TestRender_WritesToOutputs(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	out, err := engine.RenderString("{{ name }}", map[string]any{"name": "copy"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != out {
		t.Fatalf("writer received %q, return value %q", buf.String(), out)
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithGlobalData(map[string]any{"site": "noticegen"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("from {{ site }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "from noticegen" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderTemplate_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("templates/absent", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestRegisterFilter_Validation(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatal("expected error for empty filter registration")
	}
	// trim is registered as a default filter; a second registration collides.
	if err := engine.RegisterFilter("trim", func(in any, _ any) (any, error) {
		return in, nil
	}); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate filter error, got %v", err)
	}
}
