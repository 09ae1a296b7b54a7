// Package strings holds small string helpers shared by transport and storage code
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// SQLNull maps a blank string to a NULL parameter
func SQLNull(s string) any {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// FirstNonEmpty returns the first argument that is not blank
func FirstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if std.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
