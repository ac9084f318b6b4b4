package mdpaper

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-PDF pipeline: image inlining,
// Markdown parsing, HTML composition, and headless-browser printing.
type Service struct {
	cfg           serviceConfig
	inliner       imageInliner
	htmlConverter htmlConverter
	composer      htmlComposer
	pdfConverter  pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:           serviceConfig{timeout: defaultTimeout},
		inliner:       dataURIInliner{},
		htmlConverter: newGoldmarkConverter(),
		composer:      printComposer{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Convert runs the full pipeline for one document and returns the PDF as
// bytes. The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	format := input.Format
	if format.IsZero() {
		format = DefaultFormat()
	}

	// Embed local images as data URIs
	mdContent := s.inliner.Inline(input.Markdown, input.BaseDir)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Parse Markdown to an HTML fragment
	body, err := s.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Wrap in the print template for the selected format
	htmlContent := s.composer.Compose(body, format)

	// Print to PDF
	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, format)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}
