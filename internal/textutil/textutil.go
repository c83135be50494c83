// Package textutil provides tokenization for corpus lines.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Tokenize splits a line on Unicode whitespace. With lower set, the line is
// lowercased first.
func Tokenize(line string, lower bool) []string {
	if lower {
		line = strings.ToLower(line)
	}
	return strings.Fields(line)
}

// TrimBOM removes a leading UTF-8 byte order mark.
func TrimBOM(line string) string {
	if r, size := utf8.DecodeRuneInString(line); r == '\uFEFF' {
		return line[size:]
	}
	return line
}

// NormalizeWhitespaces collapses runs of whitespace, newlines included, into
// single spaces and trims both ends.
func NormalizeWhitespaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
