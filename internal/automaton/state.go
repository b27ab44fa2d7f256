// Package automaton implements the finite-state lexer engine. It consumes
// a byte buffer under a grammar table and emits classified tokens, tracking
// exactly the context needed to resume lexing mid-stream: quote kind,
// comment nesting depth and the Python indentation stack. That context is
// the value carried across chunk boundaries by the parallel dispatcher.
package automaton

// Mode is the coarse lexing mode carried across chunk boundaries. Only
// constructs that can span a safe split point (strings and comments) need
// a mode of their own; everything else resolves within a line.
type Mode int

const (
	ModeInitial Mode = iota
	ModeString
	ModeComment
)

// State is the automaton context at a buffer position. A State produced at
// the end of one chunk seeds the run over the next.
type State struct {
	Mode Mode

	// Open string context.
	Quote  byte
	Triple bool
	Raw    bool // raw-prefixed string: backslash is inert

	// Open comment context. Block is false for line comments; Depth
	// counts nesting for grammars whose block comments nest.
	Block bool
	Depth int

	// ConstructStart is the absolute byte offset where the open string
	// or comment began.
	ConstructStart int

	// Position tracking, 1-based.
	Line   int
	Column int

	// Indents is the Python indentation stack; nil for other languages.
	Indents []int
}

// Initial returns the entry state for the start of a buffer.
func Initial() State {
	return State{Line: 1, Column: 1}
}

// SameResume reports whether two states resume lexing identically. It
// compares the fields that influence token boundaries, ignoring position
// bookkeeping and the indentation stack: indentation depth never changes
// where a token starts or ends, so a stale stack cannot invalidate a
// chunk's token output. The reconciler uses this to detect a chunk whose
// assumed entry state disagrees with the previous chunk's actual exit.
func (s State) SameResume(o State) bool {
	return s.Mode == o.Mode && s.Quote == o.Quote && s.Triple == o.Triple &&
		s.Raw == o.Raw && s.Block == o.Block && s.Depth == o.Depth
}

// Open reports whether the state is inside an unclosed string or comment.
func (s State) Open() bool {
	return s.Mode != ModeInitial
}

func (s State) cloneIndents() []int {
	if s.Indents == nil {
		return nil
	}
	out := make([]int, len(s.Indents))
	copy(out, s.Indents)
	return out
}
