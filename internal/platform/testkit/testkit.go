// Package testkit holds assertions and fixtures shared by package tests
package testkit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// MustPanic fails unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain fails unless haystack contains needle; long output is dumped to a temp file
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	if len(haystack) < 400 {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
	dump := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(dump, []byte(haystack), 0o600)
	t.Fatalf("expected %q; full output written to %s", needle, dump)
}

// MustNear fails unless |got-want| <= eps
func MustNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("got %v want %v (±%v)", got, want, eps)
	}
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T { return &v }

// Clock returns a func that always reports at
func Clock(at time.Time) func() time.Time { return func() time.Time { return at } }
