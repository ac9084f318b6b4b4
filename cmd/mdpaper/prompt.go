package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	mdpaper "github.com/mpetit/mdpaper"
)

// defaultChoice is the 1-based menu entry used when the answer is empty or
// unparseable (3 = A4).
const defaultChoice = 3

// promptFormat asks for a paper format on stdin when no --format flag was
// given. Any answer outside 1..4 takes the default.
func promptFormat(r io.Reader, w io.Writer) mdpaper.Format {
	fmt.Fprintln(w, "Select paper format:")
	for i, f := range mdpaper.Formats {
		fmt.Fprintf(w, "  %d) %s\n", i+1, f.Description)
	}
	fmt.Fprintf(w, "Choice [1-%d, default %d]: ", len(mdpaper.Formats), defaultChoice)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return mdpaper.Formats[defaultChoice-1]
	}

	choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || choice < 1 || choice > len(mdpaper.Formats) {
		return mdpaper.Formats[defaultChoice-1]
	}
	return mdpaper.Formats[choice-1]
}
