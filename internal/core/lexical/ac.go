package lexical

// automaton is a byte level Aho-Corasick matcher over normalized text
// Each state keeps a dense 256-way edge table, so a scan never touches a map
type automaton struct {
	states  []acState
	lengths []int // pattern byte length by pattern index
}

type acState struct {
	next [256]int32 // -1 means no edge
	fail int32
	out  []int // pattern indexes that end here, fail chain included
}

func newState() acState {
	var s acState
	for i := range s.next {
		s.next[i] = -1
	}
	return s
}

// compileAutomaton builds the trie and failure links for patterns
// Empty patterns are ignored; duplicate patterns report under each index
func compileAutomaton(patterns []string) *automaton {
	a := &automaton{states: []acState{newState()}, lengths: make([]int, len(patterns))}
	for idx, p := range patterns {
		a.lengths[idx] = len(p)
		if p == "" {
			continue
		}
		cur := int32(0)
		for i := 0; i < len(p); i++ {
			b := p[i]
			nxt := a.states[cur].next[b]
			if nxt < 0 {
				nxt = int32(len(a.states))
				a.states = append(a.states, newState())
				a.states[cur].next[b] = nxt
			}
			cur = nxt
		}
		a.states[cur].out = append(a.states[cur].out, idx)
	}
	a.link()
	return a
}

// link fills failure edges breadth first
func (a *automaton) link() {
	queue := make([]int32, 0, len(a.states))
	for b := 0; b < 256; b++ {
		if s := a.states[0].next[b]; s >= 0 {
			a.states[s].fail = 0
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := 0; b < 256; b++ {
			s := a.states[r].next[b]
			if s < 0 {
				continue
			}
			queue = append(queue, s)
			f := a.states[r].fail
			for f != 0 && a.states[f].next[b] < 0 {
				f = a.states[f].fail
			}
			if t := a.states[f].next[b]; t >= 0 && t != s {
				a.states[s].fail = t
			}
			a.states[s].out = append(a.states[s].out, a.states[a.states[s].fail].out...)
		}
	}
}

// scan reports every occurrence as a [start,end) byte span plus pattern index
// Overlapping occurrences are all reported
func (a *automaton) scan(text string, fn func(start, end, idx int)) {
	cur := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for cur != 0 && a.states[cur].next[b] < 0 {
			cur = a.states[cur].fail
		}
		if nxt := a.states[cur].next[b]; nxt >= 0 {
			cur = nxt
		}
		for _, idx := range a.states[cur].out {
			end := i + 1
			fn(end-a.lengths[idx], end, idx)
		}
	}
}
