// Package utils provides common utility functions.
package utils

import (
	"strings"
	"unicode/utf8"
)

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// NormalizeWhitespace replaces every run of whitespace (Unicode, including
// NBSP) with a single space and trims both ends.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// FirstNonBlankLine returns the first line of str that is not empty after
// trimming, trimmed. It returns "" when every line is blank.
func (s *StringHelper) FirstNonBlankLine(str string) string {
	for line := range strings.SplitSeq(str, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}

	return ""
}

// TruncateString truncates str to at most maxRunes runes, appending "..."
// when anything was cut.
func (s *StringHelper) TruncateString(str string, maxRunes int) string {
	if maxRunes < 0 || utf8.RuneCountInString(str) <= maxRunes {
		return str
	}

	i := 0
	for pos := range str {
		if i == maxRunes {
			return str[:pos] + "..."
		}
		i++
	}

	return str
}
