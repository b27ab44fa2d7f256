package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/salog0d/glint/internal/token"
)

// ANSI renders the token stream with terminal color codes. Whitespace
// tokens pass through unstyled, so stripping the escape sequences from
// the output yields the original source.
func ANSI(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		if t.Kind == token.Whitespace {
			b.WriteString(t.Text)
			continue
		}
		b.WriteString(tokenStyle(t).Render(t.Text))
	}
	return b.String()
}

// tokenStyle returns the style for a token, with unterminated constructs
// overriding their kind's style.
func tokenStyle(t token.Token) lipgloss.Style {
	if t.Unterminated {
		return UnterminatedStyle
	}
	switch t.Kind {
	case token.Keyword:
		return KeywordStyle
	case token.Identifier:
		return IdentifierStyle
	case token.StringLiteral:
		return StringStyle
	case token.NumberLiteral:
		return NumberStyle
	case token.Comment:
		return CommentStyle
	case token.Operator:
		return OperatorStyle
	case token.Delimiter:
		return DelimiterStyle
	case token.Boolean, token.NoneValue:
		return LiteralStyle
	case token.Builtin:
		return BuiltinStyle
	case token.Unknown:
		return UnknownStyle
	default:
		return DefaultStyle
	}
}
