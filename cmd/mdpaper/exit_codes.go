package main

import (
	"errors"
	"os"

	mdpaper "github.com/mpetit/mdpaper"
	"github.com/mpetit/mdpaper/internal/config"
)

// Exit codes for the mdpaper CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdpaper.ErrBrowserConnect) ||
		errors.Is(err, mdpaper.ErrPageCreate) ||
		errors.Is(err, mdpaper.ErrPageLoad) ||
		errors.Is(err, mdpaper.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInputDir) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, mdpaper.ErrInvalidFormat) {
		return ExitUsage
	}

	// ErrEmptyMarkdown is a document content condition, not a usage
	// mistake; it falls through to the general code.
	return ExitGeneral
}
