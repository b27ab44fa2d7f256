package dispatch

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salog0d/glint/internal/automaton"
	"github.com/salog0d/glint/internal/chunk"
	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/token"
)

func table(t *testing.T, lang grammar.Language) *grammar.Table {
	t.Helper()
	tab, err := grammar.For(lang)
	require.NoError(t, err)
	return tab
}

func sequential(src string, tab *grammar.Table) []token.Token {
	toks, _ := automaton.Run(src, 0, len(src), automaton.Initial(), tab)
	return toks
}

// manualChunks builds a plan with provisional Initial entries at the
// given split offsets, bypassing the planner's safety scan.
func manualChunks(src string, splits ...int) []chunk.Chunk {
	chunks := make([]chunk.Chunk, 0, len(splits)+1)
	prev := 0
	for _, s := range splits {
		chunks = append(chunks, chunk.Chunk{Start: prev, End: s, Entry: automaton.Initial()})
		prev = s
	}
	return append(chunks, chunk.Chunk{Start: prev, End: len(src), Entry: automaton.Initial()})
}

func runAndReconcile(t *testing.T, src string, tab *grammar.Table, chunks []chunk.Chunk) []token.Token {
	t.Helper()
	d := New(len(chunks))
	defer d.Close()
	results, err := d.Run(context.Background(), src, chunks, tab)
	require.NoError(t, err)
	return Reconcile(src, results, tab)
}

func TestReconcile_PlannedChunksMatchSequential(t *testing.T) {
	tab := table(t, grammar.Python)

	var b strings.Builder
	for i := 0; i < 80; i++ {
		b.WriteString("def step(x):\n    return x + 1  # bump\n\n")
	}
	src := b.String()

	plan := chunk.Plan(src, 4, tab)
	require.Greater(t, len(plan), 1)

	got := runAndReconcile(t, src, tab, plan)
	assert.Equal(t, sequential(src, tab), got)
}

func TestReconcile_SplitInsideStringRelexes(t *testing.T) {
	tab := table(t, grammar.Python)

	// Force a boundary in the middle of a triple-quoted string. The
	// second chunk's provisional run misreads everything; reconciliation
	// must re-lex it and merge the continuation into the open literal.
	src := "x = \"\"\"abc\ndef\"\"\"\ny = 1\n"
	mid := strings.Index(src, "def")

	got := runAndReconcile(t, src, tab, manualChunks(src, mid))
	assert.Equal(t, sequential(src, tab), got)

	// The string must come out as one token, not two partials.
	var stringToks []token.Token
	for _, tok := range got {
		if tok.Kind == token.StringLiteral {
			stringToks = append(stringToks, tok)
		}
	}
	require.Len(t, stringToks, 1)
	assert.Equal(t, "\"\"\"abc\ndef\"\"\"", stringToks[0].Text)
	assert.False(t, stringToks[0].Unterminated)
}

func TestReconcile_StringSpanningThreeChunks(t *testing.T) {
	tab := table(t, grammar.Python)

	src := "s = \"\"\"one\ntwo\nthree\"\"\"\ntail = 0\n"
	first := strings.Index(src, "two")
	second := strings.Index(src, "three")

	got := runAndReconcile(t, src, tab, manualChunks(src, first, second))
	assert.Equal(t, sequential(src, tab), got)
}

func TestReconcile_BlockCommentAcrossBoundary(t *testing.T) {
	tab := table(t, grammar.Racket)

	src := "(define x 1)\n#| note\nstill note |#\n(define y 2)\n"
	mid := strings.Index(src, "still")

	got := runAndReconcile(t, src, tab, manualChunks(src, mid))
	assert.Equal(t, sequential(src, tab), got)
}

func TestReconcile_WhitespaceMergedAcrossBoundary(t *testing.T) {
	tab := table(t, grammar.Python)

	// Splitting between two blank lines leaves half the whitespace run
	// in each chunk; the stitched stream must carry it as one token.
	src := "a = 1\n\n\nb = 2\n"
	mid := strings.Index(src, "\n\nb") + 1

	got := runAndReconcile(t, src, tab, manualChunks(src, mid))
	assert.Equal(t, sequential(src, tab), got)
}

func TestReconcile_LineNumbersShiftForLaterChunks(t *testing.T) {
	tab := table(t, grammar.SQL)

	src := "SELECT 1;\nSELECT 2;\nSELECT 3;\nSELECT 4;\n"
	mid := strings.Index(src, "SELECT 3")

	got := runAndReconcile(t, src, tab, manualChunks(src, mid))
	require.Equal(t, sequential(src, tab), got)

	for _, tok := range got {
		if tok.Text == "3" {
			assert.Equal(t, 3, tok.Line)
		}
		if tok.Text == "4" {
			assert.Equal(t, 4, tok.Line)
		}
	}
}

func TestReconcile_UnterminatedAtEOFSurvives(t *testing.T) {
	tab := table(t, grammar.SQL)

	src := "SELECT 1;\n/* never closed\nmore text\n"
	mid := strings.Index(src, "more")

	got := runAndReconcile(t, src, tab, manualChunks(src, mid))
	require.Equal(t, sequential(src, tab), got)

	last := got[len(got)-1]
	assert.Equal(t, token.Comment, last.Kind)
	assert.True(t, last.Unterminated)
}

func TestReconcile_EmptyResults(t *testing.T) {
	tab := table(t, grammar.Python)
	assert.Empty(t, Reconcile("", nil, tab))
}
