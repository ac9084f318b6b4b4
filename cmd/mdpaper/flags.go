package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	mdpaper "github.com/mpetit/mdpaper"
	"github.com/mpetit/mdpaper/internal/config"
)

// Built-in directory defaults, overridable via config file or flags.
const (
	defaultInputDir  = "./markdown"
	defaultOutputDir = "./pdf"
)

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	format  string
	input   string
	output  string
	config  string
	verbose bool
	help    bool
}

// parseFlags parses command-line arguments (excluding the program name).
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("mdpaper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.format, "format", "", "paper format: A2, A3, A4, A5")
	fs.StringVarP(&f.input, "input", "i", "", "directory containing markdown files")
	fs.StringVarP(&f.output, "output", "o", "", "directory for generated PDF files")
	fs.StringVar(&f.config, "config", "", "YAML config file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// runSettings is the fully resolved run configuration.
type runSettings struct {
	inputDir  string
	outputDir string
	format    mdpaper.Format
}

// resolveSettings merges flags, the optional config file, and built-in
// defaults. Precedence: flag > config > default.
//
// Format resolution: an invalid --format (or config format) logs a warning
// and falls back to the default rather than aborting the run. With no
// format at all, the interactive prompt on stdin decides.
func resolveSettings(flags *cliFlags, stdin io.Reader, stderr io.Writer) (runSettings, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return runSettings{}, err
		}
		cfg = loaded
	}

	s := runSettings{
		inputDir:  firstNonEmpty(flags.input, cfg.Input.Dir, defaultInputDir),
		outputDir: firstNonEmpty(flags.output, cfg.Output.Dir, defaultOutputDir),
	}

	switch name := firstNonEmpty(flags.format, cfg.Page.Format); {
	case name != "":
		format, err := mdpaper.ParseFormat(name)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: %v, using %s\n", err, mdpaper.DefaultFormat().Name)
			format = mdpaper.DefaultFormat()
		}
		s.format = format
	default:
		s.format = promptFormat(stdin, stderr)
	}

	return s, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
