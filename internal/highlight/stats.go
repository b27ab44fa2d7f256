package highlight

import (
	"sort"
	"strings"

	"github.com/salog0d/glint/internal/token"
)

// Stats summarizes a token stream: counts per kind, the distinct
// keywords and builtins seen, bracket balance and lexical trouble spots.
type Stats struct {
	Total        int                `json:"total"`
	ByKind       map[string]int     `json:"by_kind"`
	Keywords     []string           `json:"keywords,omitempty"`
	Builtins     []string           `json:"builtins,omitempty"`
	Brackets     map[string]Balance `json:"brackets,omitempty"`
	Unknown      int                `json:"unknown"`
	Unterminated int                `json:"unterminated"`
	Lines        int                `json:"lines"`
}

// Balance counts the open and close sides of one bracket pair.
type Balance struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// Balanced reports whether open and close counts agree.
func (b Balance) Balanced() bool { return b.Open == b.Close }

var bracketPairs = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// Collect computes stats over a token stream.
func Collect(toks []token.Token) Stats {
	s := Stats{
		ByKind:   make(map[string]int),
		Brackets: make(map[string]Balance),
		Lines:    1,
	}

	keywords := map[string]struct{}{}
	builtins := map[string]struct{}{}

	for _, t := range toks {
		s.Total++
		s.ByKind[t.Kind.String()]++
		s.Lines += strings.Count(t.Text, "\n")

		if t.Unterminated {
			s.Unterminated++
		}

		switch t.Kind {
		case token.Keyword:
			keywords[t.Text] = struct{}{}
		case token.Builtin:
			builtins[t.Text] = struct{}{}
		case token.Unknown:
			s.Unknown++
		case token.Delimiter:
			if len(t.Text) == 1 {
				s.countBracket(t.Text[0])
			}
		}
	}

	s.Keywords = sortedKeys(keywords)
	s.Builtins = sortedKeys(builtins)
	return s
}

func (s *Stats) countBracket(b byte) {
	for open, cls := range bracketPairs {
		pair := string(open) + string(cls)
		switch b {
		case open:
			bal := s.Brackets[pair]
			bal.Open++
			s.Brackets[pair] = bal
		case cls:
			bal := s.Brackets[pair]
			bal.Close++
			s.Brackets[pair] = bal
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
