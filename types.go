package mdpaper

import "time"

// Input contains conversion parameters for one document.
type Input struct {
	Markdown string // Markdown content (required)
	BaseDir  string // Directory the document resides in, for resolving image paths
	Format   Format // Paper format (zero value = default A4)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpaper: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// withPDFConverter injects a custom PDF backend. Used by tests to avoid
// launching a browser.
func withPDFConverter(c pdfConverter) Option {
	return func(s *Service) {
		s.pdfConverter = c
	}
}
