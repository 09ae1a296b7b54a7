package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops runes that must never reach the detectors or the archive:
// NUL, ASCII controls other than tab/newline/CR, DEL, C1 controls and invalid UTF-8 bytes.
// x/text has no transformer that drops C0/C1 controls while keeping tabs and newlines
func Sanitize(s string) string {
	if s == "" || isClean(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if dropRune(r) {
			return -1
		}
		return r
	}, s)
}

// isClean is the allocation-free fast path
func isClean(s string) bool {
	for i := 0; i < len(s); {
		b := s[i]
		if b < utf8.RuneSelf {
			if dropRune(rune(b)) {
				return false
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if dropRune(r) {
			return false
		}
		i += size
	}
	return true
}

func dropRune(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20 || r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	case r == utf8.RuneError:
		return true
	}
	return false
}
