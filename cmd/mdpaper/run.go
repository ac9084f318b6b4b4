package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mdpaper "github.com/mpetit/mdpaper"
)

// Sentinel errors for batch operations.
var (
	ErrReadInputDir = errors.New("failed to read input directory")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePDF     = errors.New("failed to write PDF file")
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input mdpaper.Input) ([]byte, error)
}

// batchOptions carries everything the driver loop needs.
type batchOptions struct {
	settings runSettings
	stdout   io.Writer
	stderr   io.Writer
	verbose  bool
}

// runBatch converts every markdown file in the input directory, one at a
// time. A single document's failure is logged and the batch continues; the
// first such error is returned after the batch completes so the process
// can exit with a meaningful code. Only an unreadable input directory (or
// an unusable output directory) ends the run early.
func runBatch(ctx context.Context, svc Converter, opts batchOptions) error {
	files, err := discoverMarkdown(opts.settings.inputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInputDir, err)
	}
	if len(files) == 0 {
		fmt.Fprintf(opts.stdout, "No markdown files found in %s\n", opts.settings.inputDir)
		return nil
	}

	removed, err := sweepOutputDir(opts.settings.outputDir, opts.stderr)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.stdout, "Removed %d stale PDF file(s) from %s\n", removed, opts.settings.outputDir)

	var converted, failed int
	var firstErr error
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := convertOne(ctx, svc, path, opts); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(opts.stderr, "Error: %s: %v\n", filepath.Base(path), err)
			continue
		}
		converted++
	}

	fmt.Fprintf(opts.stdout, "Done: %d converted, %d failed (%s)\n", converted, failed, opts.settings.format.Name)
	return firstErr
}

// convertOne runs the pipeline for a single document and writes the PDF.
func convertOne(ctx context.Context, svc Converter, path string, opts batchOptions) error {
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from directory discovery
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	if opts.verbose {
		fmt.Fprintf(opts.stderr, "Converting %s\n", path)
	}

	pdf, err := svc.Convert(ctx, mdpaper.Input{
		Markdown: string(content),
		BaseDir:  filepath.Dir(path),
		Format:   opts.settings.format,
	})
	if err != nil {
		return err
	}

	outPath := filepath.Join(opts.settings.outputDir, outputName(path, opts.settings.format))
	if err := os.WriteFile(outPath, pdf, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	fmt.Fprintf(opts.stdout, "Converted %s -> %s\n", filepath.Base(path), outPath)
	return nil
}

// discoverMarkdown lists markdown files directly inside dir. Not recursive.
func discoverMarkdown(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".md" && ext != ".markdown" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// sweepOutputDir creates the output directory if missing and removes every
// PDF artifact left over from a previous run. A file that cannot be
// deleted is logged and skipped. Returns the number of removed files.
func sweepOutputDir(dir string, stderr io.Writer) (int, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading output directory: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".pdf" {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			fmt.Fprintf(stderr, "Warning: could not remove %s: %v\n", e.Name(), err)
			continue
		}
		removed++
	}
	return removed, nil
}

// outputName derives the artifact filename for a markdown file:
// the basename with its markdown extension replaced by a format-tagged
// ".pdf" extension, e.g. report.md + A4 -> report.a4.pdf.
func outputName(mdPath string, format mdpaper.Format) string {
	base := filepath.Base(mdPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + format.Suffix() + ".pdf"
}
