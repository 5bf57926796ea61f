// Package convert shells out to a headless LibreOffice to turn rendered
// notice HTML into office-document artifacts (PDF, ODT). The external binary
// writes its output next to the input file using the input's base name, so
// the converter relocates the result to the caller's requested path.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Format is a conversion target understood by the external converter.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatODT Format = "odt"
)

const (
	// DefaultBinary is the LibreOffice executable resolved from PATH.
	DefaultBinary = "soffice"
	// DefaultTimeout bounds a single converter invocation. LibreOffice cold
	// starts are slow, so this is generous; after it elapses the invocation
	// is killed and treated as failed with no retry.
	DefaultTimeout = 60 * time.Second
)

// Option customises the converter configuration.
type Option func(*Converter)

// WithBinary overrides the converter executable.
func WithBinary(path string) Option {
	return func(c *Converter) {
		if strings.TrimSpace(path) != "" {
			c.binary = path
		}
	}
}

// WithTimeout overrides the per-invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithTempDir places temporary HTML inputs in the given directory instead of
// the system default. Tests use this to observe cleanup.
func WithTempDir(dir string) Option {
	return func(c *Converter) {
		c.tempDir = dir
	}
}

// WithLogger attaches a structured logger. The default is a nop logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

// Converter invokes the external document converter. Invocations are
// sequential and blocking; the zero temp-file-per-call model means the only
// state shared between calls is the filesystem.
type Converter struct {
	binary  string
	timeout time.Duration
	tempDir string
	log     *zap.SugaredLogger
}

// New constructs a Converter applying any provided options.
func New(options ...Option) *Converter {
	c := &Converter{
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}
	return c
}

// FormatForPath derives the conversion target from the output path extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".odt":
		return FormatODT, nil
	default:
		return "", fmt.Errorf("convert: unsupported output extension %q", filepath.Ext(path))
	}
}

// Convert writes the HTML to a uniquely named temporary file, runs the
// converter targeting the output path's directory, and renames the generated
// artifact onto the requested path. The temporary input is removed on every
// exit path, including converter failure and timeout. A missing output after
// the attempt is an error carrying the converter's stderr.
func (c *Converter) Convert(ctx context.Context, html []byte, outputPath string) error {
	format, err := FormatForPath(outputPath)
	if err != nil {
		return err
	}

	outDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("convert: create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(c.tempDir, "notice-*.html")
	if err != nil {
		return fmt.Errorf("convert: create temp input: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		return fmt.Errorf("convert: write temp input: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("convert: close temp input: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, c.binary,
		"--headless",
		"--convert-to", string(format),
		"--outdir", outDir,
		tmpPath,
	)
	cmd.Stderr = &stderr
	// LibreOffice forks helper processes that inherit the stderr pipe; once
	// the timeout kills the main process, stop waiting on them too.
	cmd.WaitDelay = time.Second

	runErr := cmd.Run()
	if runCtx.Err() != nil {
		runErr = fmt.Errorf("timed out after %s: %w", c.timeout, runCtx.Err())
	}

	// The converter names its output after the temp input's stem.
	stem := strings.TrimSuffix(filepath.Base(tmpPath), filepath.Ext(tmpPath))
	generated := filepath.Join(outDir, stem+"."+string(format))
	if generated != outputPath {
		if _, statErr := os.Stat(generated); statErr == nil {
			if err := os.Rename(generated, outputPath); err != nil {
				return fmt.Errorf("convert: relocate %s artifact: %w", format, err)
			}
		}
	}

	if _, err := os.Stat(outputPath); err != nil {
		diag := strings.TrimSpace(stderr.String())
		c.log.Warnw("converter produced no output",
			"format", string(format),
			"output", outputPath,
			"stderr", diag,
		)
		if runErr != nil {
			return fmt.Errorf("convert: %s conversion failed: %w (stderr: %s)", format, runErr, diag)
		}
		return fmt.Errorf("convert: %s artifact not created at %s (stderr: %s)", format, outputPath, diag)
	}

	c.log.Debugw("converted notice", "format", string(format), "output", outputPath)
	return nil
}
