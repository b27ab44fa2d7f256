package chunk

import "github.com/salog0d/glint/internal/grammar"

// shadow is a lightweight pre-scan tracker: it knows only whether a
// position is inside a string or comment. It is deliberately cheaper than
// the full automaton; when its answer is wrong the boundary reconciler
// catches the disagreement and re-lexes, so a shadow mistake costs speed,
// never correctness.
type shadow struct {
	tab *grammar.Table

	inString bool
	quote    byte
	triple   bool

	inLine  bool
	inBlock bool
	depth   int
}

func newShadow(tab *grammar.Table) *shadow {
	return &shadow{tab: tab}
}

// feed consumes src[i:] greedily for one construct step and returns the
// number of bytes consumed (at least 1).
func (s *shadow) feed(src string, i int) int {
	c := src[i]

	switch {
	case s.inLine:
		if c == '\n' {
			s.inLine = false
		}
		return 1

	case s.inBlock:
		if s.tab.BlockNest && s.hasAt(src, i, s.tab.BlockOpen) {
			s.depth++
			return len(s.tab.BlockOpen)
		}
		if s.hasAt(src, i, s.tab.BlockClose) {
			s.depth--
			if s.depth == 0 {
				s.inBlock = false
			}
			return len(s.tab.BlockClose)
		}
		return 1

	case s.inString:
		if c == '\\' {
			return 2
		}
		if c == s.quote {
			if !s.triple {
				s.inString = false
				return 1
			}
			if s.hasAt(src, i, string([]byte{s.quote, s.quote, s.quote})) {
				s.inString = false
				return 3
			}
		}
		return 1

	default:
		if s.tab.LineCommentAt(src, i) > 0 {
			s.inLine = true
			return 1
		}
		if s.tab.BlockCommentAt(src, i) {
			s.inBlock = true
			s.depth = 1
			return len(s.tab.BlockOpen)
		}
		if s.tab.IsQuote(c) {
			s.inString = true
			s.quote = c
			s.triple = s.tab.TripleQuotes && s.hasAt(src, i, string([]byte{c, c, c}))
			if s.triple {
				return 3
			}
			return 1
		}
		return 1
	}
}

// outside reports whether the scanner is currently outside any string or
// comment construct.
func (s *shadow) outside() bool {
	return !s.inString && !s.inLine && !s.inBlock
}

func (s *shadow) hasAt(src string, i int, pat string) bool {
	return pat != "" && i+len(pat) <= len(src) && src[i:i+len(pat)] == pat
}
