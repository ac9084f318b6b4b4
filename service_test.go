package mdpaper

// Notes:
// - Convert: stage ordering (inline -> parse -> compose -> print), default
//   format, validation, error wrapping
// - Close: browser teardown delegation
// Uses a stub pdfConverter so no browser is launched.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubPDFConverter records the HTML and format it receives.
type stubPDFConverter struct {
	lastHTML   string
	lastFormat Format
	result     []byte
	err        error
	closed     bool
}

func (s *stubPDFConverter) ToPDF(_ context.Context, htmlContent string, format Format) ([]byte, error) {
	s.lastHTML = htmlContent
	s.lastFormat = format
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubPDFConverter) Close() error {
	s.closed = true
	return nil
}

func TestConvertEmptyMarkdown(t *testing.T) {
	t.Parallel()

	svc := New(withPDFConverter(&stubPDFConverter{}))
	_, err := svc.Convert(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Fatalf("expected ErrEmptyMarkdown, got %v", err)
	}
}

func TestConvertAppliesDefaultFormat(t *testing.T) {
	t.Parallel()

	stub := &stubPDFConverter{result: []byte("%PDF")}
	svc := New(withPDFConverter(stub))

	if _, err := svc.Convert(context.Background(), Input{Markdown: "# Hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.lastFormat.Name != "A4" {
		t.Errorf("expected default format A4, got %q", stub.lastFormat.Name)
	}
}

func TestConvertComposesSelectedFormat(t *testing.T) {
	t.Parallel()

	a5, err := ParseFormat("A5")
	if err != nil {
		t.Fatal(err)
	}

	stub := &stubPDFConverter{result: []byte("%PDF")}
	svc := New(withPDFConverter(stub))

	pdf, err := svc.Convert(context.Background(), Input{Markdown: "# Title\n\nHello", Format: a5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pdf) != "%PDF" {
		t.Errorf("expected converter result to pass through, got %q", pdf)
	}
	if stub.lastFormat.Name != "A5" {
		t.Errorf("expected A5 to reach the printer, got %q", stub.lastFormat.Name)
	}
	if !strings.Contains(stub.lastHTML, "size: A5 portrait;") {
		t.Error("composed HTML should carry the A5 page directive")
	}
	if !strings.Contains(stub.lastHTML, "<h1") || !strings.Contains(stub.lastHTML, "Title") {
		t.Errorf("markdown heading not rendered: %q", stub.lastHTML)
	}
}

func TestConvertInlinesImagesBeforeParsing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), []byte("png bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	stub := &stubPDFConverter{result: []byte("%PDF")}
	svc := New(withPDFConverter(stub))

	input := Input{
		Markdown: "![logo](./logo.png)",
		BaseDir:  dir,
	}
	if _, err := svc.Convert(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stub.lastHTML, "data:image/png;base64,") {
		t.Error("image should be embedded as a data URI in the rendered HTML")
	}
	if strings.Contains(stub.lastHTML, "./logo.png") {
		t.Error("relative image path should not survive inlining")
	}
}

func TestConvertMissingImageStillRenders(t *testing.T) {
	t.Parallel()

	stub := &stubPDFConverter{result: []byte("%PDF")}
	svc := New(withPDFConverter(stub))

	input := Input{
		Markdown: "# Doc\n\n![gone](./images/missing.png)",
		BaseDir:  t.TempDir(),
	}
	if _, err := svc.Convert(context.Background(), input); err != nil {
		t.Fatalf("a missing image must not fail the document: %v", err)
	}
	if !strings.Contains(stub.lastHTML, "./images/missing.png") {
		t.Error("unresolvable reference should pass through unchanged")
	}
}

func TestConvertWrapsPDFError(t *testing.T) {
	t.Parallel()

	stub := &stubPDFConverter{err: ErrPDFGeneration}
	svc := New(withPDFConverter(stub))

	_, err := svc.Convert(context.Background(), Input{Markdown: "# Hi"})
	if !errors.Is(err, ErrPDFGeneration) {
		t.Fatalf("expected wrapped ErrPDFGeneration, got %v", err)
	}
}

func TestConvertCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New(withPDFConverter(&stubPDFConverter{}))
	_, err := svc.Convert(ctx, Input{Markdown: "# Hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCloseReleasesConverter(t *testing.T) {
	t.Parallel()

	stub := &stubPDFConverter{}
	svc := New(withPDFConverter(stub))

	if err := svc.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stub.closed {
		t.Error("Close should release the PDF converter")
	}
}
