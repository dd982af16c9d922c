// Package util provides shared utility functions used across the codebase.
package util

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first rune of s and leaves the rest
// untouched. "medieval madness" → "Medieval madness".
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Stem returns the filename without its extension.
// "tables/mm_v1.2.vpx" → "mm_v1.2".
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
