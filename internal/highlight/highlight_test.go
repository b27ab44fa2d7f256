package highlight

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/token"
	"github.com/salog0d/glint/internal/tokenizer"
)

func lex(t *testing.T, src string, lang grammar.Language) []token.Token {
	t.Helper()
	toks, err := tokenizer.Sequential(src, lang)
	require.NoError(t, err)
	return toks
}

var ansiEscapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestANSI_StrippedOutputIsSource(t *testing.T) {
	src := "def greet(name):\n    return f\"hi {name}\"  # friendly\n"
	toks := lex(t, src, grammar.Python)

	out := ANSI(toks)
	assert.Equal(t, src, ansiEscapes.ReplaceAllString(out, ""))
}

func TestANSI_EmptyStream(t *testing.T) {
	assert.Empty(t, ANSI(nil))
}

func TestCollect_CountsAndBalance(t *testing.T) {
	src := "(define (f x) (if (> x 0) #t #f))\n; done\n"
	toks := lex(t, src, grammar.Racket)

	s := Collect(toks)

	assert.Equal(t, len(toks), s.Total)
	assert.Equal(t, 3, s.Lines, "two newlines plus the starting line")
	assert.Contains(t, s.Keywords, "define")
	assert.Contains(t, s.Keywords, "if")

	parens := s.Brackets["()"]
	assert.Equal(t, 4, parens.Open)
	assert.Equal(t, 4, parens.Close)
	assert.True(t, parens.Balanced())
	assert.Zero(t, s.Unknown)
	assert.Zero(t, s.Unterminated)
}

func TestCollect_UnbalancedAndTroubleSpots(t *testing.T) {
	src := "items = [1, 2, (3\ns = 'open\n"
	toks := lex(t, src, grammar.Python)

	s := Collect(toks)

	assert.False(t, s.Brackets["[]"].Balanced())
	assert.False(t, s.Brackets["()"].Balanced())
	assert.Equal(t, 1, s.Brackets["[]"].Open)
	assert.Equal(t, 0, s.Brackets["[]"].Close)
	assert.Equal(t, 1, s.Unterminated)
}

func TestCollect_Empty(t *testing.T) {
	s := Collect(nil)
	assert.Zero(t, s.Total)
	assert.Equal(t, 1, s.Lines)
	assert.Empty(t, s.Keywords)
}

func TestHTML_Document(t *testing.T) {
	src := "SELECT name FROM users WHERE id = 42; -- lookup\n"
	toks := lex(t, src, grammar.SQL)

	out := HTML(Doc{Title: "query.sql", Language: grammar.SQL}, toks)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>query.sql</title>")
	assert.Contains(t, out, "language: sql")
	assert.Contains(t, out, `<span class="tok-keyword">SELECT</span>`)
	assert.Contains(t, out, `<span class="tok-number">42</span>`)
	assert.Contains(t, out, `<span class="tok-comment">-- lookup</span>`)
	assert.Contains(t, out, "<h3>Legend</h3>")
	assert.Contains(t, out, "<h3>Analysis</h3>")
}

func TestHTML_EscapesMarkup(t *testing.T) {
	src := "x = \"<script>alert(1)</script>\"\n"
	toks := lex(t, src, grammar.Python)

	out := HTML(Doc{Title: "<unsafe> & co", Language: grammar.Python}, toks)

	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "<title>&lt;unsafe&gt; &amp; co</title>")
}

func TestHTML_BracketClassesAndOpenMarker(t *testing.T) {
	src := "d = {'k': [1, (2)]}\ns = \"\"\"open\n"
	toks := lex(t, src, grammar.Python)

	out := HTML(Doc{Title: "t", Language: grammar.Python}, toks)

	assert.Contains(t, out, `<span class="tok-brace">{</span>`)
	assert.Contains(t, out, `<span class="tok-bracket">[</span>`)
	assert.Contains(t, out, `<span class="tok-paren">(</span>`)
	assert.Contains(t, out, "tok-string tok-open")
	assert.Contains(t, out, "unterminated constructs: 1")
}

func TestJSON_RoundTrips(t *testing.T) {
	src := "x = 1  # one\n"
	toks := lex(t, src, grammar.Python)

	out, err := JSON(grammar.Python, toks)
	require.NoError(t, err)

	var doc struct {
		Language string `json:"language"`
		Stats    Stats  `json:"stats"`
		Tokens   []struct {
			Kind  string `json:"kind"`
			Text  string `json:"text"`
			Start int    `json:"start"`
			End   int    `json:"end"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "python", doc.Language)
	assert.Equal(t, len(toks), doc.Stats.Total)
	require.Len(t, doc.Tokens, len(toks))

	var rebuilt strings.Builder
	for _, tok := range doc.Tokens {
		rebuilt.WriteString(tok.Text)
	}
	assert.Equal(t, src, rebuilt.String())
	assert.Equal(t, "identifier", doc.Tokens[0].Kind)
	assert.Equal(t, "comment", doc.Tokens[len(doc.Tokens)-2].Kind)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "ansi", want: FormatANSI},
		{in: "HTML", want: FormatHTML},
		{in: " json ", want: FormatJSON},
		{in: "yaml", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestRender_DispatchesByFormat(t *testing.T) {
	src := "select 1;\n"
	toks := lex(t, src, grammar.SQL)
	doc := Doc{Title: "q", Language: grammar.SQL}

	htmlOut, err := Render(FormatHTML, doc, toks)
	require.NoError(t, err)
	assert.Contains(t, htmlOut, "<!DOCTYPE html>")

	jsonOut, err := Render(FormatJSON, doc, toks)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(jsonOut)))

	ansiOut, err := Render(FormatANSI, doc, toks)
	require.NoError(t, err)
	assert.Equal(t, src, ansiEscapes.ReplaceAllString(ansiOut, ""))

	_, err = Render(Format("csv"), doc, toks)
	assert.Error(t, err)
}
