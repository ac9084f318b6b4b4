package mdpaper

import (
	"fmt"
	"strings"
)

// Format describes one supported paper size. All fields are fixed at
// process start; a Format is shared read-only by every document in a run.
type Format struct {
	Name        string  // "A2", "A3", "A4", "A5"
	WidthIn     float64 // paper width in inches
	HeightIn    float64 // paper height in inches
	Margin      string  // uniform CSS margin, e.g. "20mm"
	MarginIn    float64 // same margin in inches, for print fallback parameters
	FontSize    string  // base body font size
	Compact     bool    // shrink code/table typography (smallest size only)
	Description string
}

// Formats holds the supported paper sizes in prompt order.
var Formats = []Format{
	{Name: "A2", WidthIn: 16.54, HeightIn: 23.39, Margin: "25mm", MarginIn: 0.98, FontSize: "16px", Description: "A2 (420 x 594 mm), poster size"},
	{Name: "A3", WidthIn: 11.69, HeightIn: 16.54, Margin: "20mm", MarginIn: 0.79, FontSize: "14px", Description: "A3 (297 x 420 mm), large print"},
	{Name: "A4", WidthIn: 8.27, HeightIn: 11.69, Margin: "20mm", MarginIn: 0.79, FontSize: "12px", Description: "A4 (210 x 297 mm), standard"},
	{Name: "A5", WidthIn: 5.83, HeightIn: 8.27, Margin: "12mm", MarginIn: 0.47, FontSize: "10px", Compact: true, Description: "A5 (148 x 210 mm), compact"},
}

// DefaultFormat returns the format used when none is selected.
func DefaultFormat() Format {
	return Formats[2] // A4
}

// ParseFormat resolves a format name case-insensitively.
// Returns ErrInvalidFormat for unknown names.
func ParseFormat(name string) (Format, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, f := range Formats {
		if f.Name == upper {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: %q (supported: A2, A3, A4, A5)", ErrInvalidFormat, name)
}

// Suffix returns the lowercased format tag used in output filenames.
func (f Format) Suffix() string {
	return strings.ToLower(f.Name)
}

// IsZero reports whether f is the zero value (no format selected).
func (f Format) IsZero() bool {
	return f.Name == ""
}
