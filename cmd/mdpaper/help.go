package main

import (
	"fmt"
	"io"
)

// usageText is printed for --help/-h.
const usageText = `mdpaper - convert a directory of Markdown files to paginated PDF

Usage:
  mdpaper [flags]

Reads every .md file in the input directory (non-recursive), inlines local
./image references as embedded data, renders the styled HTML through
headless Chrome, and writes one <name>.<format>.pdf per document to the
output directory. Stale PDFs in the output directory are removed first.

Flags:
      --format string   paper format: A2, A3, A4, A5 (no flag = interactive prompt)
  -i, --input string    directory containing markdown files (default "./markdown")
  -o, --output string   directory for generated PDF files (default "./pdf")
      --config string   YAML config file (input/output dirs, default format)
  -v, --verbose         verbose output
  -h, --help            show this help and exit

Exit codes:
  0  success
  1  general error
  2  invalid flags or config
  3  I/O error (missing files, permissions)
  4  browser error (Chrome launch, render, print)
`

// printUsage writes the usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
