package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-noticegen/pkg/convert"
	"github.com/goliatone/go-noticegen/pkg/notice"
	"github.com/goliatone/go-noticegen/pkg/orchestrator"
	"github.com/goliatone/go-noticegen/pkg/prompt"
)

func main() {
	output := flag.String("output", "completed_notices", "output directory for generated artifacts")
	formFlag := flag.String("form", "all", "form to generate: all, section8, or section21")
	formatsFlag := flag.String("formats", "odt,pdf", "comma-separated conversion targets")
	dataPath := flag.String("data", "", "YAML field file overlaid on the sample dataset")
	binary := flag.String("soffice", convert.DefaultBinary, "document converter executable")
	timeout := flag.Duration("timeout", convert.DefaultTimeout, "per-conversion timeout")
	htmlOnly := flag.Bool("html-only", false, "write rendered HTML instead of converting")
	interactive := flag.Bool("interactive", false, "prompt for field values before rendering")
	debug := flag.Bool("debug", false, "enable verbose logging")
	flag.Parse()

	logger, err := buildLogger(*debug)
	if err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx := context.Background()

	fields, err := resolveFields(ctx, *dataPath, *interactive)
	if err != nil {
		sugar.Fatalf("Failed to resolve field values: %v", err)
	}

	kinds, err := parseForms(*formFlag)
	if err != nil {
		sugar.Fatalf("Invalid -form value: %v", err)
	}

	formats, err := parseFormats(*formatsFlag)
	if err != nil {
		sugar.Fatalf("Invalid -formats value: %v", err)
	}

	converter := convert.New(
		convert.WithBinary(*binary),
		convert.WithTimeout(*timeout),
		convert.WithLogger(sugar),
	)

	gen := orchestrator.New(
		orchestrator.WithFields(fields),
		orchestrator.WithConverter(converter),
		orchestrator.WithLogger(sugar),
	)

	if *htmlOnly {
		if err := writeHTML(ctx, gen, kinds, *output); err != nil {
			sugar.Fatalf("Failed to write HTML: %v", err)
		}
		return
	}

	report, err := gen.GenerateFixtures(ctx, orchestrator.FixtureRequest{
		OutputDir: *output,
		Kinds:     kinds,
		Formats:   formats,
	})
	if err != nil {
		sugar.Fatalf("Failed to generate fixtures: %v", err)
	}

	printReport(report)

	if !report.OK() {
		os.Exit(1)
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stdout"}
		return cfg.Build()
	}
	return zap.NewProduction()
}

func resolveFields(ctx context.Context, dataPath string, interactive bool) (notice.FieldSet, error) {
	fields := notice.SampleFields()
	if dataPath != "" {
		loaded, err := notice.LoadFieldSet(dataPath)
		if err != nil {
			return nil, err
		}
		fields = loaded
	}
	if interactive {
		filled, err := prompt.Fill(ctx, prompt.NewSurveyDriver(), notice.Definitions(), fields)
		if err != nil {
			return nil, err
		}
		fields = filled
	}
	return fields, nil
}

func parseForms(raw string) ([]notice.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return nil, nil
	case string(notice.KindSection8):
		return []notice.Kind{notice.KindSection8}, nil
	case string(notice.KindSection21):
		return []notice.Kind{notice.KindSection21}, nil
	default:
		return nil, fmt.Errorf("unknown form %q", raw)
	}
}

func parseFormats(raw string) ([]convert.Format, error) {
	var formats []convert.Format
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		switch convert.Format(part) {
		case convert.FormatODT, convert.FormatPDF:
			formats = append(formats, convert.Format(part))
		default:
			return nil, fmt.Errorf("unknown format %q", part)
		}
	}
	return formats, nil
}

func writeHTML(ctx context.Context, gen *orchestrator.Orchestrator, kinds []notice.Kind, outputDir string) error {
	if len(kinds) == 0 {
		for _, def := range notice.Definitions() {
			kinds = append(kinds, def.Kind)
		}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	for _, kind := range kinds {
		def, err := notice.DefinitionFor(kind)
		if err != nil {
			return err
		}
		output, err := gen.Generate(ctx, orchestrator.Request{Kind: kind})
		if err != nil {
			return err
		}
		path := filepath.Join(outputDir, def.OutputBase+".html")
		if err := os.WriteFile(path, output, 0o644); err != nil {
			return err
		}
		fmt.Printf("Notice written to %s\n", path)
	}
	return nil
}

func printReport(report orchestrator.Report) {
	fmt.Printf("Output directory: %s\n", report.OutputDir)
	fmt.Println("Created files:")
	for _, artifact := range report.Artifacts {
		if !artifact.Exists {
			continue
		}
		fmt.Printf("  - %s (%d bytes)\n", filepath.Base(artifact.Path), artifact.Size)
	}
	if missing := report.Missing(); len(missing) > 0 {
		fmt.Println("Missing files:")
		for _, path := range missing {
			fmt.Printf("  - %s\n", filepath.Base(path))
		}
	}
}
