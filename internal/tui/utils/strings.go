package utils

import "github.com/mattn/go-runewidth"

// TruncateString cuts s to at most width terminal cells, ending with "…"
// when something was removed. Wide runes are measured correctly.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
