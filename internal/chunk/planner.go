// Package chunk plans the byte ranges handed to parallel lexer workers.
// Split points land at line starts that a cheap forward pre-scan believes
// are outside any string or comment, so a token never straddles a planned
// boundary. A candidate with no safe line start inside its look-ahead
// window is dropped: fewer, larger chunks beat an unsafe split.
package chunk

import (
	"github.com/salog0d/glint/internal/automaton"
	"github.com/salog0d/glint/internal/grammar"
)

// minChunkBytes is the smallest buffer slice worth dispatching to its own
// worker; below 2x this the whole buffer stays sequential.
const minChunkBytes = 256

// Chunk is one contiguous byte range of the input assigned to a worker,
// with the automaton state the worker should start from. Entry states for
// chunks after the first are provisional: the reconciler corrects them
// against the previous chunk's actual exit.
type Chunk struct {
	Start int
	End   int
	Entry automaton.State
}

// Plan splits src into at most target chunks covering the whole buffer
// with no gaps or overlaps.
func Plan(src string, target int, tab *grammar.Table) []Chunk {
	if target < 1 {
		target = 1
	}
	if limit := len(src) / minChunkBytes; target > limit {
		target = limit
	}
	if target <= 1 {
		return []Chunk{{Start: 0, End: len(src), Entry: automaton.Initial()}}
	}

	splits := safeSplits(src, target, tab)

	chunks := make([]Chunk, 0, len(splits)+1)
	prev := 0
	for _, s := range splits {
		chunks = append(chunks, Chunk{Start: prev, End: s, Entry: automaton.Initial()})
		prev = s
	}
	chunks = append(chunks, Chunk{Start: prev, End: len(src), Entry: automaton.Initial()})
	return chunks
}

// safeSplits walks the buffer once with the shadow scanner and picks, for
// each candidate offset k*len/target, the first following line start that
// is outside any string or comment. The look-ahead window for candidate k
// is bounded by candidate k+1; a candidate whose window has no safe line
// start is dropped and its two chunks merge.
func safeSplits(src string, target int, tab *grammar.Table) []int {
	size := len(src) / target

	candidates := make([]int, 0, target-1)
	for k := 1; k < target; k++ {
		candidates = append(candidates, k*size)
	}

	var splits []int
	sh := newShadow(tab)
	next := 0 // index of the candidate currently being placed

	i := 0
	for i < len(src) && next < len(candidates) {
		// Window exhausted: merge this candidate into the next chunk.
		if next+1 < len(candidates) && i >= candidates[next+1] {
			next++
			continue
		}

		atNewline := src[i] == '\n'
		i += sh.feed(src, i)

		if atNewline && sh.outside() && i > candidates[next] && i < len(src) {
			splits = append(splits, i)
			next++
		}
	}
	return splits
}
