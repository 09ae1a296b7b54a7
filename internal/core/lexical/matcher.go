package lexical

import "sort"

// phraseMatcher counts whole-word occurrences of a fixed phrase list
type phraseMatcher struct {
	phrases []string
	ac      *automaton
}

func newPhraseMatcher(phrases []string) *phraseMatcher {
	return &phraseMatcher{phrases: phrases, ac: compileAutomaton(phrases)}
}

// phraseHits is the per-phrase tally of one scan
type phraseHits struct {
	Total int
	By    map[string]int
}

// Top returns up to n matched phrases, most frequent first, ties alphabetical
func (h phraseHits) Top(n int) []string {
	keys := make([]string, 0, len(h.By))
	for k := range h.By {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if h.By[keys[i]] != h.By[keys[j]] {
			return h.By[keys[i]] > h.By[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// Count scans normalized text; matches inside a longer word do not count
func (m *phraseMatcher) Count(norm string) phraseHits {
	h := phraseHits{By: map[string]int{}}
	if m == nil || len(m.phrases) == 0 || norm == "" {
		return h
	}
	m.ac.scan(norm, func(start, end, idx int) {
		if !onBoundary(norm, start, end) {
			return
		}
		h.Total++
		h.By[m.phrases[idx]]++
	})
	return h
}
