package orchestrator_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-noticegen/pkg/convert"
	"github.com/goliatone/go-noticegen/pkg/notice"
	"github.com/goliatone/go-noticegen/pkg/orchestrator"
	"github.com/goliatone/go-noticegen/pkg/render"
	"github.com/goliatone/go-noticegen/pkg/testsupport"
)

func stubConverterBinary(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "soffice-stub")
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub converter: %v", err)
	}
	return path
}

const workingConverter = `fmt="$3"
outdir="$5"
input="$6"
base=$(basename "$input" .html)
cp "$input" "$outdir/$base.$fmt"
`

const brokenConverter = `echo "converter unavailable" >&2
exit 1
`

func TestGenerate_DefaultPipeline(t *testing.T) {
	gen := orchestrator.New()

	output, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Kind: notice.KindSection8,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, "Grounds 8, 10 and 11") {
		t.Fatal("expected section 8 grounds in output")
	}
	if !strings.Contains(html, "3,000.00") {
		t.Fatal("expected arrears amount in output")
	}
}

func TestGenerate_RequiresKind(t *testing.T) {
	gen := orchestrator.New()
	if _, err := gen.Generate(testsupport.Context(), orchestrator.Request{}); err == nil {
		t.Fatal("expected error for missing form kind")
	}
}

func TestGenerate_UnknownRenderer(t *testing.T) {
	gen := orchestrator.New()
	_, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Kind:     notice.KindSection8,
		Renderer: "jsx",
	})
	if err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestGenerate_ValidatesFields(t *testing.T) {
	fields := notice.SampleFields()
	delete(fields, "s21_expiry_date")

	gen := orchestrator.New(orchestrator.WithFields(fields))
	_, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Kind: notice.KindSection21,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var missing *notice.MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
}

func TestGenerate_OverridesSatisfyValidation(t *testing.T) {
	fields := notice.SampleFields()
	delete(fields, "s21_expiry_date")

	gen := orchestrator.New(orchestrator.WithFields(fields))
	output, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Kind: notice.KindSection21,
		RenderOptions: render.RenderOptions{
			Values: map[string]string{"s21_expiry_date": "14/07/2026"},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "14/07/2026") {
		t.Fatal("expected overridden expiry date in output")
	}
}

func TestGenerateFixtures_FullRun(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "completed_notices")
	converter := convert.New(convert.WithBinary(stubConverterBinary(t, workingConverter)))

	gen := orchestrator.New(orchestrator.WithConverter(converter))
	report, err := gen.GenerateFixtures(testsupport.Context(), orchestrator.FixtureRequest{
		OutputDir: outputDir,
	})
	if err != nil {
		t.Fatalf("generate fixtures: %v", err)
	}

	if len(report.Artifacts) != 4 {
		t.Fatalf("expected 4 artifacts, got %d", len(report.Artifacts))
	}
	if !report.OK() {
		t.Fatalf("expected complete report, missing: %v", report.Missing())
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected exactly 4 files, got %d", len(entries))
	}

	wantFiles := []string{
		"completed_section_8_form_3.odt",
		"completed_section_8_form_3.pdf",
		"completed_section_21_form_6a.odt",
		"completed_section_21_form_6a.pdf",
	}
	for _, name := range wantFiles {
		info, statErr := os.Stat(filepath.Join(outputDir, name))
		if statErr != nil {
			t.Errorf("expected artifact %s: %v", name, statErr)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", name)
		}
	}
}

func TestGenerateFixtures_BrokenConverter(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "completed_notices")
	converter := convert.New(convert.WithBinary(stubConverterBinary(t, brokenConverter)))

	gen := orchestrator.New(orchestrator.WithConverter(converter))
	report, err := gen.GenerateFixtures(testsupport.Context(), orchestrator.FixtureRequest{
		OutputDir: outputDir,
	})
	if err != nil {
		t.Fatalf("generate fixtures: %v", err)
	}

	if report.OK() {
		t.Fatal("expected incomplete report")
	}
	if missing := report.Missing(); len(missing) != 4 {
		t.Fatalf("expected 4 missing artifacts, got %d", len(missing))
	}

	entries, readErr := os.ReadDir(outputDir)
	if readErr != nil {
		t.Fatalf("read output dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no artifacts, got %d", len(entries))
	}
}

func TestGenerateFixtures_SingleFormAndFormat(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "completed_notices")
	converter := convert.New(convert.WithBinary(stubConverterBinary(t, workingConverter)))

	gen := orchestrator.New(orchestrator.WithConverter(converter))
	report, err := gen.GenerateFixtures(testsupport.Context(), orchestrator.FixtureRequest{
		OutputDir: outputDir,
		Kinds:     []notice.Kind{notice.KindSection21},
		Formats:   []convert.Format{convert.FormatPDF},
	})
	if err != nil {
		t.Fatalf("generate fixtures: %v", err)
	}

	if len(report.Artifacts) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(report.Artifacts))
	}
	if !report.OK() {
		t.Fatalf("expected complete report, missing: %v", report.Missing())
	}
	if filepath.Base(report.Artifacts[0].Path) != "completed_section_21_form_6a.pdf" {
		t.Fatalf("unexpected artifact path %s", report.Artifacts[0].Path)
	}
}

func TestGenerateFixtures_RequiresOutputDir(t *testing.T) {
	gen := orchestrator.New()
	if _, err := gen.GenerateFixtures(testsupport.Context(), orchestrator.FixtureRequest{}); err == nil {
		t.Fatal("expected error for missing output dir")
	}
}
