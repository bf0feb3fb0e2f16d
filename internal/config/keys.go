package config

import (
	"strings"
	"unicode/utf8"
)

// namedKeys are the multi-character key names the backend understands.
var namedKeys = map[string]bool{
	"SPACE": true,
	"SHIFT": true,
	"CTRL":  true,
	"ALT":   true,
	"TAB":   true,
	"ESC":   true,
	"ENTER": true,
}

// IsKnownKey reports whether the backend recognizes name as a hotkey:
// F1..F12, a named key, or any single character. It only drives a hint in
// the UI; bindings outside the list are still saved.
func IsKnownKey(name string) bool {
	if utf8.RuneCountInString(name) == 1 {
		return true
	}
	upper := strings.ToUpper(name)
	if namedKeys[upper] {
		return true
	}
	if strings.HasPrefix(upper, "F") {
		switch upper[1:] {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12":
			return true
		}
	}
	return false
}
