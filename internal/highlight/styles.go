// Package highlight renders token streams as colored terminal output,
// standalone HTML documents or JSON. Rendering is pure: the input stream
// already carries every byte of the source, whitespace included, so the
// renderers never touch the original buffer.
package highlight

import "github.com/charmbracelet/lipgloss"

// Token highlight colors. Light/dark pairs follow the terminal background.
var (
	KeywordColor    = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	OperatorColor   = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // red
	IdentifierColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#F8F8F2"} // text
	StringColor     = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#50FA7B"} // green
	NumberColor     = lipgloss.AdaptiveColor{Light: "#7287FD", Dark: "#BD93F9"} // lavender
	CommentColor    = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6272A4"} // overlay
	BooleanColor    = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FFB86C"} // peach
	BuiltinColor    = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#8BE9FD"} // teal
	DelimiterColor  = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F1FA8C"} // yellow
	UnknownColor    = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF5555"} // error red
)

// Token highlight styles, one per token kind.
var (
	// KeywordStyle for language keywords: def, lambda, SELECT.
	KeywordStyle = lipgloss.NewStyle().
			Foreground(KeywordColor).
			Bold(true)

	// OperatorStyle for operators: =, **, ||, ,@
	OperatorStyle = lipgloss.NewStyle().
			Foreground(OperatorColor)

	// IdentifierStyle for plain identifiers.
	IdentifierStyle = lipgloss.NewStyle().
			Foreground(IdentifierColor)

	// StringStyle for string and character literals.
	StringStyle = lipgloss.NewStyle().
			Foreground(StringColor)

	// NumberStyle for numeric literals.
	NumberStyle = lipgloss.NewStyle().
			Foreground(NumberColor)

	// CommentStyle for line and block comments.
	CommentStyle = lipgloss.NewStyle().
			Foreground(CommentColor).
			Italic(true)

	// LiteralStyle for booleans and null-like values.
	LiteralStyle = lipgloss.NewStyle().
			Foreground(BooleanColor).
			Bold(true)

	// BuiltinStyle for built-in functions: print, car, COUNT.
	BuiltinStyle = lipgloss.NewStyle().
			Foreground(BuiltinColor)

	// DelimiterStyle for brackets and punctuation.
	DelimiterStyle = lipgloss.NewStyle().
			Foreground(DelimiterColor).
			Bold(true)

	// UnknownStyle for bytes matching no lexical rule.
	UnknownStyle = lipgloss.NewStyle().
			Foreground(UnknownColor).
			Reverse(true)

	// UnterminatedStyle overlays strings and comments left open at the
	// end of the buffer.
	UnterminatedStyle = lipgloss.NewStyle().
				Foreground(UnknownColor).
				Underline(true)

	// DefaultStyle for anything unclassified.
	DefaultStyle = lipgloss.NewStyle()
)
