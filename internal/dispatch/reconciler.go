package dispatch

import (
	"github.com/salog0d/glint/internal/automaton"
	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/log"
	"github.com/salog0d/glint/internal/token"
)

// Reconcile stitches per-chunk results into one token stream identical to
// a sequential run over the whole buffer. It walks the results in order,
// carrying the true automaton state across boundaries:
//
//   - A chunk whose provisional entry agrees with the carried state keeps
//     its tokens; only line numbers are shifted, since the chunk was lexed
//     as if it began at line 1. Columns are already correct because every
//     split lands at a line start.
//   - A chunk whose entry disagrees is re-lexed under the carried state.
//     The disagreement always means a string or comment is still open, so
//     the re-lexed chunk's first token continues that construct and is
//     merged into the previous chunk's unterminated token. A construct
//     spanning several chunks merges once per boundary.
//   - A whitespace run straddling a boundary arrives as two tokens, one
//     per chunk; they are merged so the stream matches the single token a
//     sequential run produces.
func Reconcile(src string, results []Result, tab *grammar.Table) []token.Token {
	var out []token.Token
	state := automaton.Initial()

	for i, res := range results {
		toks, exit := res.Tokens, res.Exit

		if !state.SameResume(res.Chunk.Entry) {
			log.Debug(log.CatReconcile, "boundary mismatch", "chunk", i, "offset", res.Chunk.Start)
			toks, exit = automaton.Run(src, res.Chunk.Start, res.Chunk.End, state, tab)
			if state.Open() && len(toks) > 0 && len(out) > 0 {
				toks = mergeContinuation(out, toks)
			}
		} else if delta := state.Line - res.Chunk.Entry.Line; delta != 0 {
			for j := range toks {
				toks[j].Line += delta
			}
			exit.Line += delta
		}

		if n := len(out); n > 0 && len(toks) > 0 &&
			out[n-1].Kind == token.Whitespace && toks[0].Kind == token.Whitespace {
			out[n-1].Text += toks[0].Text
			out[n-1].End = toks[0].End
			toks = toks[1:]
		}

		out = append(out, toks...)
		state = exit
	}
	return out
}

// mergeContinuation folds the continuation token at the head of toks into
// the unterminated construct token at the tail of out.
func mergeContinuation(out []token.Token, toks []token.Token) []token.Token {
	prev := &out[len(out)-1]
	cont := toks[0]
	prev.Text += cont.Text
	prev.End = cont.End
	prev.Unterminated = cont.Unterminated
	return toks[1:]
}
