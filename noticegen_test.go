package noticegen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	noticegen "github.com/goliatone/go-noticegen"
	"github.com/goliatone/go-noticegen/pkg/convert"
	"github.com/goliatone/go-noticegen/pkg/testsupport"
)

func TestGenerateHTML_SampleScenario(t *testing.T) {
	ctx := testsupport.Context()

	s8, err := noticegen.GenerateHTML(ctx, noticegen.KindSection8)
	if err != nil {
		t.Fatalf("generate section 8: %v", err)
	}
	if !strings.Contains(string(s8), "Grounds 8, 10 and 11") {
		t.Fatal("expected section 8 grounds in output")
	}
	if !strings.Contains(string(s8), "3,000.00") {
		t.Fatal("expected arrears amount in output")
	}

	s21, err := noticegen.GenerateHTML(ctx, noticegen.KindSection21)
	if err != nil {
		t.Fatalf("generate section 21: %v", err)
	}
	if !strings.Contains(string(s21), "14/07/2026") {
		t.Fatal("expected expiry date in output")
	}
}

func TestGenerateHTML_CustomFields(t *testing.T) {
	fields := noticegen.FieldSet{}
	for name, value := range map[string]string{
		"tenant_name":      "Alex Example",
		"property_address": "1 High Street, York, YO1 1AA",
		"landlord_name":    "Sam Landlord",
		"landlord_address": "2 Low Road, York, YO1 2BB",
		"landlord_phone":   "01904 000000",
		"s21_service_date": "01/03/2026",
		"s21_expiry_date":  "01/05/2026",
	} {
		fields[name] = value
	}

	output, err := noticegen.GenerateHTML(testsupport.Context(), noticegen.KindSection21,
		noticegen.WithFields(fields))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "Alex Example") {
		t.Fatal("expected custom tenant name in output")
	}
}

func TestGenerateFixtures_EndToEnd(t *testing.T) {
	stub := filepath.Join(t.TempDir(), "soffice-stub")
	script := "#!/bin/sh\n" +
		"fmt=\"$3\"\noutdir=\"$5\"\ninput=\"$6\"\n" +
		"base=$(basename \"$input\" .html)\n" +
		"cp \"$input\" \"$outdir/$base.$fmt\"\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub converter: %v", err)
	}

	outputDir := filepath.Join(t.TempDir(), "completed_notices")
	report, err := noticegen.GenerateFixtures(testsupport.Context(), outputDir,
		noticegen.WithConverter(convert.New(convert.WithBinary(stub))))
	if err != nil {
		t.Fatalf("generate fixtures: %v", err)
	}

	if !report.OK() {
		t.Fatalf("expected all artifacts, missing: %v", report.Missing())
	}
	if len(report.Artifacts) != 4 {
		t.Fatalf("expected 4 artifacts, got %d", len(report.Artifacts))
	}
}
