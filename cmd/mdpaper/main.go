package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"

	mdpaper "github.com/mpetit/mdpaper"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Optional .env for ROD_BROWSER_BIN and friends; absence is fine.
	_ = godotenv.Load()

	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.help {
		printUsage(os.Stdout)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	settings, err := resolveSettings(flags, os.Stdin, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}

	svc := mdpaper.New()

	runErr := runBatch(context.Background(), svc, batchOptions{
		settings: settings,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		verbose:  flags.verbose,
	})

	// Close before exiting: os.Exit skips deferred calls.
	if err := svc.Close(); err != nil && flags.verbose {
		fmt.Fprintf(os.Stderr, "Warning: closing browser: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(exitCodeFor(runErr))
	}
	os.Exit(ExitSuccess)
}
