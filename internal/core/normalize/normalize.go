// Package normalize provides the deterministic text normalizer every lexical detector reads from
// Pipeline order
// 1 strip control bytes and invalid UTF-8
// 2 Unicode NFKD decomposition
// 3 Case folding
// 4 Remove combining marks and format runes (zero-width joiners, BOM)
// 5 Width fold fullwidth to ASCII, then recompose to NFC
// 6 Fold typographic quotes and dashes to ASCII
// 7 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe; transformer chains are pooled
type Normalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		// marks only exist as separate runes after decomposition, so NFKD comes first and NFC last
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			norm.NFC,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the lower-cased, trimmed, whitespace-collapsed form of s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transform only fails on malformed input we already stripped; fall back to plain lowering
		ns = strings.ToLower(s)
	}

	ns = foldPunct(ns)
	return collapseSpaces(ns)
}

// punctFold maps typographic punctuation to the ASCII forms the rule pack is written in
var punctFold = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "‛", "'",
	"“", `"`, "”", `"`, "„", `"`,
	"–", "-", "—", "-", "−", "-",
	"…", "...",
)

func foldPunct(s string) string {
	if s == "" {
		return s
	}
	return punctFold.Replace(s)
}

// collapseSpaces converts every whitespace run (newlines included) to one ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
