// Package util contains any functions used across the application that don't match
// any other package
package util

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename turns an uploaded file name into something safe to use
// as a storage key. Path components are dropped, anything outside
// [A-Za-z0-9._-] is stripped (spaces become underscores) and leading dots
// are removed so the result can't be a dotfile or a traversal sequence.
// Returns "" if nothing usable is left.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	return strings.TrimLeft(b.String(), ".")
}
