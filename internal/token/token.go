// Package token defines the classified token stream produced by the lexer.
package token

// Kind represents the semantic class of a lexical token.
// Every supported language maps its own categories onto this shared set;
// not every language uses every kind.
type Kind int

const (
	Unknown Kind = iota
	Keyword
	Identifier
	StringLiteral
	NumberLiteral
	Comment
	Operator
	Delimiter
	Boolean
	NoneValue
	Builtin
	Whitespace
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case StringLiteral:
		return "string"
	case NumberLiteral:
		return "number"
	case Comment:
		return "comment"
	case Operator:
		return "operator"
	case Delimiter:
		return "delimiter"
	case Boolean:
		return "boolean"
	case NoneValue:
		return "none"
	case Builtin:
		return "builtin"
	case Whitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// Token is a classified, contiguous span of source text.
// Start and End are byte offsets into the original buffer, End exclusive.
// Tokens are immutable once emitted; concatenating Text over a full stream
// reproduces the input buffer exactly.
type Token struct {
	Kind   Kind
	Text   string
	Start  int
	End    int
	Line   int // 1-based line of the first byte
	Column int // 1-based column of the first byte

	// Unterminated marks a string or block comment still open at the end
	// of the buffer. The token spans to end-of-buffer instead of failing
	// the call.
	Unterminated bool
}

// Len returns the byte length of the token.
func (t Token) Len() int {
	return t.End - t.Start
}
