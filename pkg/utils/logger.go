// Package utils provides shared utilities for logging and text output.
package utils

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// NewLogger returns a zap logger. When debug is true, uses development
// config (human-readable, debug level); otherwise uses production config
// (JSON, info level).
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Truncate returns s truncated to at most maxLen bytes, with "..."
// appended if truncated. The cut backs up to a rune boundary so
// multibyte text stays valid UTF-8. If maxLen is 0 or negative, returns
// s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
