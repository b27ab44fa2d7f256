package automaton

import (
	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/token"
)

// Run lexes full[start:end] under the given grammar table, seeded with the
// entry state. It returns the tokens for that slice and the exit state.
// Token offsets are absolute into the full buffer. The loop is a tight
// synchronous scan: O(end-start), no recursion, no I/O.
//
// Any byte matching no rule emits a single-byte Unknown token and the scan
// continues; the run never fails. A string or block comment still open at
// the end of the slice is emitted as an Unterminated token and reflected
// in the exit state so the next chunk can resume it.
func Run(full string, start, end int, entry State, tab *grammar.Table) ([]token.Token, State) {
	r := &run{
		src:     full[:end],
		tab:     tab,
		i:       start,
		line:    entry.Line,
		col:     entry.Column,
		indents: entry.cloneIndents(),
	}

	st := entry
	switch st.Mode {
	case ModeString:
		st = r.resumeString(st)
	case ModeComment:
		st = r.resumeComment(st)
	}

	for r.i < len(r.src) && !st.Open() {
		st = r.step()
	}

	if !st.Open() {
		st = State{Mode: ModeInitial}
	}
	st.Line = r.line
	st.Column = r.col
	st.Indents = r.indents
	return r.toks, st
}

type run struct {
	src  string // full buffer truncated at the chunk end
	tab  *grammar.Table
	toks []token.Token

	i    int
	line int
	col  int

	indents []int
}

// step consumes one token starting at r.i. It returns an open state when
// a string or block comment runs past the end of the slice, and the
// initial state otherwise.
func (r *run) step() State {
	c := r.src[r.i]

	switch {
	case isSpace(c):
		r.scanWhitespace()
	case r.tab.LineCommentAt(r.src, r.i) > 0:
		r.scanLineComment()
	case r.tab.BlockCommentAt(r.src, r.i):
		return r.scanBlockComment()
	case r.tab.HashLead && c == '#':
		r.scanHashForm()
	case r.tab.IsQuote(c):
		return r.scanString(r.i, false)
	case isDigit(c):
		r.scanNumber(r.i)
	case c == '.' && r.i+1 < len(r.src) && isDigit(r.src[r.i+1]):
		r.scanNumber(r.i)
	case r.tab.Rationals && (c == '+' || c == '-') && r.i+1 < len(r.src) && isDigit(r.src[r.i+1]):
		r.scanNumber(r.i)
	case r.tab.IsIdentStart(c):
		return r.scanWord()
	default:
		if n := r.tab.MatchOperator(r.src, r.i); n > 0 {
			r.emitN(token.Operator, n)
		} else if r.tab.IsDelimiter(c) {
			r.emitN(token.Delimiter, 1)
		} else {
			r.emitN(token.Unknown, 1)
		}
	}
	return State{Mode: ModeInitial}
}

func (r *run) emitN(kind token.Kind, n int) {
	from, line, col := r.i, r.line, r.col
	r.advance(n)
	r.emit(kind, from, line, col, false)
}

func (r *run) emit(kind token.Kind, from, line, col int, unterminated bool) {
	r.toks = append(r.toks, token.Token{
		Kind:         kind,
		Text:         r.src[from:r.i],
		Start:        from,
		End:          r.i,
		Line:         line,
		Column:       col,
		Unterminated: unterminated,
	})
}

func (r *run) advance(n int) {
	for ; n > 0 && r.i < len(r.src); n-- {
		if r.src[r.i] == '\n' {
			r.line++
			r.col = 1
		} else {
			r.col++
		}
		r.i++
	}
}

// scanWhitespace consumes a maximal run of blanks and newlines and emits
// it as a single Whitespace token; the reconstructed text must reproduce
// the buffer byte for byte, so nothing is discarded. For Python the run
// also updates the indentation stack with the indent of the line it ends
// on, provided the run terminates before a real character.
func (r *run) scanWhitespace() {
	from, line, col := r.i, r.line, r.col
	sawNewline := false
	indent := 0
	for r.i < len(r.src) && isSpace(r.src[r.i]) {
		if r.src[r.i] == '\n' {
			sawNewline = true
			indent = 0
		} else if r.src[r.i] != '\r' {
			indent++
		}
		r.advance(1)
	}
	if r.tab.IndentSignificant && sawNewline && r.i < len(r.src) {
		r.updateIndent(indent)
	}
	r.emit(token.Whitespace, from, line, col, false)
}

func (r *run) updateIndent(indent int) {
	for len(r.indents) > 0 && r.indents[len(r.indents)-1] > indent {
		r.indents = r.indents[:len(r.indents)-1]
	}
	top := 0
	if len(r.indents) > 0 {
		top = r.indents[len(r.indents)-1]
	}
	if indent > top {
		r.indents = append(r.indents, indent)
	}
}

// scanWord consumes an identifier-shaped token and resolves it through the
// grammar table. For Python a short word of string prefix letters directly
// followed by a quote (f"...", rb'...') rolls into the string literal.
func (r *run) scanWord() State {
	from, line, col := r.i, r.line, r.col
	allPrefix := true
	for r.i < len(r.src) && r.tab.IsIdentPart(r.src[r.i]) {
		if !r.tab.IsStringPrefix(r.src[r.i]) {
			allPrefix = false
		}
		r.advance(1)
	}
	if allPrefix && r.i-from <= 2 && r.i < len(r.src) && r.tab.IsQuote(r.src[r.i]) {
		raw := false
		for j := from; j < r.i; j++ {
			if r.src[j] == 'r' || r.src[j] == 'R' {
				raw = true
			}
		}
		// Rewind to the quote: the token starts at the prefix but the
		// string scan wants r.i on the opening delimiter.
		r.i, r.line, r.col = from, line, col
		r.advanceTo(from + prefixLen(r.src, from))
		return r.scanStringFrom(from, line, col, raw)
	}
	r.emit(r.tab.ClassifyWord(r.src[from:r.i]), from, line, col, false)
	return State{Mode: ModeInitial}
}

func prefixLen(src string, from int) int {
	n := 0
	for from+n < len(src) && n < 2 {
		c := src[from+n]
		if c == '"' || c == '\'' {
			break
		}
		n++
	}
	return n
}

func (r *run) advanceTo(pos int) {
	for r.i < pos && r.i < len(r.src) {
		r.advance(1)
	}
}

// scanString lexes a string literal whose opening quote is at r.i.
func (r *run) scanString(from int, raw bool) State {
	return r.scanStringFrom(from, r.line, r.col, raw)
}

func (r *run) scanStringFrom(from, line, col int, raw bool) State {
	q := r.src[r.i]
	triple := false
	if r.tab.TripleQuotes && r.i+2 < len(r.src) && r.src[r.i+1] == q && r.src[r.i+2] == q {
		triple = true
		r.advance(3)
	} else {
		r.advance(1)
	}
	closed := r.consumeStringBody(q, triple, raw)
	r.emit(token.StringLiteral, from, line, col, !closed)
	if closed {
		return State{Mode: ModeInitial}
	}
	return State{
		Mode: ModeString, Quote: q, Triple: triple, Raw: raw,
		ConstructStart: from,
	}
}

// consumeStringBody advances past the string body and its closing
// delimiter, honoring escapes unless the literal is raw. Interpolation
// markers inside f-strings stay part of the literal text: nested
// expressions are not re-lexed. Returns false when the buffer ends first.
func (r *run) consumeStringBody(q byte, triple, raw bool) bool {
	for r.i < len(r.src) {
		c := r.src[r.i]
		if !raw && c == '\\' {
			r.advance(2)
			continue
		}
		if c == q {
			if !triple {
				r.advance(1)
				return true
			}
			if r.i+2 < len(r.src) && r.src[r.i+1] == q && r.src[r.i+2] == q {
				r.advance(3)
				return true
			}
			// Lone quote inside a triple-quoted literal.
		}
		r.advance(1)
	}
	return false
}

func (r *run) resumeString(entry State) State {
	from, line, col := r.i, r.line, r.col
	closed := r.consumeStringBody(entry.Quote, entry.Triple, entry.Raw)
	r.emit(token.StringLiteral, from, line, col, !closed)
	if closed {
		return State{Mode: ModeInitial}
	}
	return entry
}

func (r *run) scanLineComment() {
	from, line, col := r.i, r.line, r.col
	for r.i < len(r.src) && r.src[r.i] != '\n' {
		r.advance(1)
	}
	r.emit(token.Comment, from, line, col, false)
}

func (r *run) scanBlockComment() State {
	from, line, col := r.i, r.line, r.col
	r.advanceTo(r.i + len(r.tab.BlockOpen))
	depth := 1
	closed := r.consumeBlockBody(&depth)
	r.emit(token.Comment, from, line, col, !closed)
	if closed {
		return State{Mode: ModeInitial}
	}
	return State{Mode: ModeComment, Block: true, Depth: depth, ConstructStart: from}
}

// consumeBlockBody advances to the end of a block comment, decrementing
// depth at each closer and, when the grammar nests, incrementing at each
// opener. Returns false when the buffer ends with the comment open.
func (r *run) consumeBlockBody(depth *int) bool {
	opener, closer := r.tab.BlockOpen, r.tab.BlockClose
	for r.i < len(r.src) {
		if r.tab.BlockNest && r.hasAt(opener) {
			*depth++
			r.advanceTo(r.i + len(opener))
			continue
		}
		if r.hasAt(closer) {
			*depth--
			r.advanceTo(r.i + len(closer))
			if *depth == 0 {
				return true
			}
			continue
		}
		r.advance(1)
	}
	return false
}

func (r *run) hasAt(s string) bool {
	return r.i+len(s) <= len(r.src) && r.src[r.i:r.i+len(s)] == s
}

func (r *run) resumeComment(entry State) State {
	from, line, col := r.i, r.line, r.col
	depth := entry.Depth
	closed := r.consumeBlockBody(&depth)
	r.emit(token.Comment, from, line, col, !closed)
	if closed {
		return State{Mode: ModeInitial}
	}
	entry.Depth = depth
	return entry
}

// scanHashForm lexes Racket's # constructs: #t/#f/#true/#false booleans
// and #\x character literals. Anything else after # matches no rule and
// becomes an Unknown token covering the consumed run.
func (r *run) scanHashForm() {
	from, line, col := r.i, r.line, r.col
	r.advance(1)
	if r.i < len(r.src) && r.src[r.i] == '\\' {
		r.advance(1)
		if r.i < len(r.src) {
			r.advance(1)
		}
		r.emit(token.StringLiteral, from, line, col, false)
		return
	}
	for r.i < len(r.src) && r.tab.IsIdentPart(r.src[r.i]) {
		r.advance(1)
	}
	kind := r.tab.ClassifyWord(r.src[from:r.i])
	if kind == token.Identifier {
		kind = token.Unknown
	}
	r.emit(kind, from, line, col, false)
}

// scanNumber consumes a maximal numeric run: an optional sign (Racket),
// a radix prefix (0x/0o/0b), digits, at most one decimal point, an
// optional exponent, and for Racket a fraction slash or imaginary suffix.
// Malformed runs still emit one Number token; the lexer does not validate
// numeric grammar strictly.
func (r *run) scanNumber(from int) {
	line, col := r.line, r.col
	if c := r.src[r.i]; c == '+' || c == '-' {
		r.advance(1)
	}
	if r.i+1 < len(r.src) && r.src[r.i] == '0' && isRadixMarker(r.src[r.i+1]) {
		r.advance(2)
		for r.i < len(r.src) && isAlnum(r.src[r.i]) {
			r.advance(1)
		}
		r.emit(token.NumberLiteral, from, line, col, false)
		return
	}
	r.consumeDigits()
	if r.i < len(r.src) && r.src[r.i] == '.' {
		r.advance(1)
		r.consumeDigits()
	}
	if r.i+1 < len(r.src) && (r.src[r.i] == 'e' || r.src[r.i] == 'E') {
		j := r.i + 1
		if r.src[j] == '+' || r.src[j] == '-' {
			j++
		}
		if j < len(r.src) && isDigit(r.src[j]) {
			r.advanceTo(j)
			r.consumeDigits()
		}
	}
	if r.tab.Rationals {
		if r.i+1 < len(r.src) && r.src[r.i] == '/' && isDigit(r.src[r.i+1]) {
			r.advance(1)
			r.consumeDigits()
		}
		if r.i < len(r.src) && r.src[r.i] == 'i' {
			r.advance(1)
		}
	}
	r.emit(token.NumberLiteral, from, line, col, false)
}

func (r *run) consumeDigits() {
	for r.i < len(r.src) && isDigit(r.src[r.i]) {
		r.advance(1)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isRadixMarker(b byte) bool {
	switch b {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func isAlnum(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
