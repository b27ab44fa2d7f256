package highlight

import (
	"fmt"
	"html"
	"strings"

	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/token"
)

// Doc describes the document being rendered.
type Doc struct {
	// Title names the source, usually the input file path.
	Title    string
	Language grammar.Language
}

// HTML renders the token stream as a standalone dark-theme HTML document
// with a color legend and an analysis summary. Each non-whitespace token
// becomes a classed span; brackets get per-pair classes so nesting reads
// at a glance.
func HTML(doc Doc, toks []token.Token) string {
	stats := Collect(toks)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(doc.Title)))
	b.WriteString(htmlCSS)
	b.WriteString("</head>\n<body>\n")
	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(doc.Title)))
	b.WriteString(fmt.Sprintf("<p class=\"lang\">language: %s</p>\n", doc.Language))

	writeLegend(&b)
	writeStats(&b, stats)

	b.WriteString("<div class=\"code\">")
	for _, t := range toks {
		escaped := html.EscapeString(t.Text)
		if t.Kind == token.Whitespace {
			b.WriteString(escaped)
			continue
		}
		fmt.Fprintf(&b, "<span class=\"%s\">%s</span>", cssClass(t), escaped)
	}
	b.WriteString("</div>\n")

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// cssClass maps a token to its span class. Unterminated constructs get
// an extra marker class.
func cssClass(t token.Token) string {
	cls := "tok-" + t.Kind.String()
	if t.Kind == token.Delimiter && len(t.Text) == 1 {
		switch t.Text[0] {
		case '(', ')':
			cls = "tok-paren"
		case '[', ']':
			cls = "tok-bracket"
		case '{', '}':
			cls = "tok-brace"
		}
	}
	if t.Unterminated {
		cls += " tok-open"
	}
	return cls
}

func writeLegend(b *strings.Builder) {
	b.WriteString("<div class=\"legend\">\n")
	b.WriteString("<h3>Legend</h3>\n")
	for _, item := range []struct{ class, label string }{
		{"tok-keyword", "keyword"},
		{"tok-builtin", "builtin"},
		{"tok-identifier", "identifier"},
		{"tok-string", "string"},
		{"tok-number", "number"},
		{"tok-boolean", "boolean / none"},
		{"tok-operator", "operator"},
		{"tok-paren", "( )"},
		{"tok-bracket", "[ ]"},
		{"tok-brace", "{ }"},
		{"tok-comment", "comment"},
		{"tok-unknown", "unrecognized"},
	} {
		fmt.Fprintf(b, "<span class=\"item %s\">%s</span>\n", item.class, item.label)
	}
	b.WriteString("</div>\n")
}

func writeStats(b *strings.Builder, s Stats) {
	b.WriteString("<div class=\"stats\">\n<h3>Analysis</h3>\n<ul>\n")
	fmt.Fprintf(b, "<li>tokens: %d</li>\n", s.Total)
	fmt.Fprintf(b, "<li>lines: %d</li>\n", s.Lines)
	fmt.Fprintf(b, "<li>distinct keywords: %d</li>\n", len(s.Keywords))
	fmt.Fprintf(b, "<li>distinct builtins: %d</li>\n", len(s.Builtins))
	for _, pair := range []string{"()", "[]", "{}"} {
		bal, ok := s.Brackets[pair]
		if !ok || (bal.Open == 0 && bal.Close == 0) {
			continue
		}
		mark := "balanced"
		if !bal.Balanced() {
			mark = fmt.Sprintf("unbalanced (%+d)", bal.Open-bal.Close)
		}
		fmt.Fprintf(b, "<li>%s: %d open, %d close, %s</li>\n", pair, bal.Open, bal.Close, mark)
	}
	if s.Unknown > 0 {
		fmt.Fprintf(b, "<li>unrecognized tokens: %d</li>\n", s.Unknown)
	}
	if s.Unterminated > 0 {
		fmt.Fprintf(b, "<li>unterminated constructs: %d</li>\n", s.Unterminated)
	}
	b.WriteString("</ul>\n</div>\n")
}

const htmlCSS = `<style>
body {
    background: #1a1a2e;
    color: #e6e6e6;
    font-family: Arial, sans-serif;
    margin: 0;
    padding: 20px;
}
h1 { color: #4a90e2; }
.lang { color: #6272a4; font-style: italic; }
.code {
    font-family: 'Fira Code', 'Consolas', monospace;
    background: #0f0f23;
    border: 1px solid #4a90e2;
    border-radius: 8px;
    padding: 20px;
    white-space: pre;
    overflow-x: auto;
    line-height: 1.5;
}
.legend, .stats {
    background: #16213e;
    border-left: 4px solid #4a90e2;
    border-radius: 8px;
    padding: 12px 20px;
    margin: 15px 0;
    font-size: 13px;
}
.legend h3, .stats h3 { color: #4a90e2; margin-top: 0; }
.legend .item {
    display: inline-block;
    margin-right: 15px;
    font-family: 'Fira Code', 'Consolas', monospace;
}
.tok-keyword { color: #cba6f7; font-weight: bold; }
.tok-builtin { color: #8be9fd; }
.tok-identifier { color: #f8f8f2; }
.tok-string { color: #50fa7b; }
.tok-number { color: #bd93f9; }
.tok-boolean, .tok-none { color: #ffb86c; font-weight: bold; }
.tok-operator { color: #f38ba8; }
.tok-comment { color: #6272a4; font-style: italic; }
.tok-paren { color: #ff79c6; font-weight: bold; }
.tok-bracket { color: #50fa7b; font-weight: bold; }
.tok-brace { color: #ffb86c; font-weight: bold; }
.tok-delimiter { color: #f1fa8c; }
.tok-whitespace { background: transparent; }
.tok-unknown {
    color: #ff5555;
    background: rgba(255, 85, 85, 0.2);
    border-radius: 3px;
}
.tok-open { text-decoration: underline wavy #ff5555; }
</style>
`
