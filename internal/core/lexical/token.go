package lexical

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWord reports whether r counts as a word rune for phrase boundaries
// Letters, numbers, combining marks, and connector punctuation are word runes; hyphens and quotes are not
func isWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.In(r, unicode.Mn, unicode.Pc)
}

// onBoundary reports whether s[start:end] is delimited by non-word runes or the string edges
func onBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWord(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWord(r) {
			return false
		}
	}
	return true
}

// words splits normalized text into tokens of word runes
// An apostrophe between two word runes stays inside the token so "it's" is one word
func words(s string) []string {
	var out []string
	start := -1
	prevWord := false
	for i, r := range s {
		w := isWord(r)
		if !w && r == '\'' && prevWord {
			nr, _ := utf8.DecodeRuneInString(s[i+1:])
			w = isWord(nr)
		}
		switch {
		case w && start < 0:
			start = i
		case !w && start >= 0:
			out = append(out, s[start:i])
			start = -1
		}
		prevWord = w
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// letterTokens returns maximal runs of letters longer than minLen runes
func letterTokens(s string, minLen int) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minLen {
			out = append(out, f)
		}
	}
	return out
}

// sentences splits on terminal punctuation and keeps fragments longer than minRunes
func sentences(s string, minRunes int) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == '!' || r == '?' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > minRunes {
			out = append(out, p)
		}
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variance is the population variance
func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var acc float64
	for _, x := range xs {
		d := x - m
		acc += d * d
	}
	return acc / float64(len(xs))
}

// Tokens splits normalized text the same way the detectors do
func Tokens(norm string) []string { return words(norm) }
