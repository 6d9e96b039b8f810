package hyperlinked

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Truncate controls whether the timer-prefixed printers (F, Ln) cut
// their output to the terminal width. Set HYPERLINKED_NO_TRUNCATE=1 to
// disable. Print and Fprint never truncate: their output carries the
// caller's text byte for byte.
var Truncate = os.Getenv("HYPERLINKED_NO_TRUNCATE") == ""

// termWidth returns the width to truncate to: HYPERLINKED_COLUMNS when
// set to a positive integer, otherwise the width of the terminal on
// standard output, or 0 (no truncation) when stdout is not a terminal.
func termWidth() int {
	if cols := os.Getenv("HYPERLINKED_COLUMNS"); cols != "" {
		if width, err := strconv.Atoi(cols); err == nil && width > 0 {
			return width
		}
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 0
}

// truncateToWidth cuts text to fit within width display cells, using "…"
// as the ellipsis and preserving a trailing newline. Width is measured
// in cells, not bytes, so wide runes count double. width <= 0 disables
// truncation.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	hasNewline := strings.HasSuffix(text, "\n")
	if hasNewline {
		text = text[:len(text)-1]
	}

	if runewidth.StringWidth(text) > width {
		target := width - 1
		if target < 0 {
			target = 0
		}
		text = runewidth.Truncate(text, target, "…")
	}

	if hasNewline {
		return text + "\n"
	}
	return text
}
