package util

import "strings"

// Truncate returns s cut down to at most n runes. It returns
// ErrNegativeLength when n is negative.
func Truncate(s string, n int) (string, error) {
	if n < 0 {
		return "", ErrNegativeLength
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s, nil
	}
	return string(runes[:n]), nil
}

// Abbreviate shortens s to at most n runes, appending "..." when something
// was cut. n must be at least 4 to leave room for the ellipsis; shorter
// values return ErrNegativeLength-free truncation without a marker.
func Abbreviate(s string, n int) (string, error) {
	if n < 0 {
		return "", ErrNegativeLength
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s, nil
	}
	if n < 4 {
		return string(runes[:n]), nil
	}
	return string(runes[:n-3]) + "...", nil
}

// DefaultIfEmpty returns fallback when s is empty, s otherwise.
func DefaultIfEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// FirstNonEmpty returns the first non-empty string of values, or "" when all
// are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// EqualFoldAny reports whether s equals any of candidates under Unicode
// case folding.
func EqualFoldAny(s string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
