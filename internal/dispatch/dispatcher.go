// Package dispatch fans chunk plans out to parallel lexer workers and
// stitches their outputs back into one sequential-equivalent token
// stream. The dispatcher owns the worker pool; the reconciler owns the
// boundary protocol that makes the stitched stream byte-identical to a
// single sequential run.
package dispatch

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/salog0d/glint/internal/automaton"
	"github.com/salog0d/glint/internal/chunk"
	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/log"
	"github.com/salog0d/glint/internal/pubsub"
	"github.com/salog0d/glint/internal/token"
)

// Result is one chunk's lexer output: the tokens produced under the
// chunk's provisional entry state, and the automaton state at its end.
type Result struct {
	Chunk  chunk.Chunk
	Tokens []token.Token
	Exit   automaton.State
}

// Progress reports one chunk's completion on the dispatcher's broker.
type Progress struct {
	RunID  string
	Index  int
	Total  int
	Tokens int
}

// Dispatcher runs chunk plans on a bounded worker pool.
type Dispatcher struct {
	workers int
	broker  *pubsub.Broker[Progress]
}

// New creates a dispatcher with the given worker budget. Budgets below
// one fall back to one.
func New(workers int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		workers: workers,
		broker:  pubsub.NewBroker[Progress](),
	}
}

// Events exposes the progress broker for subscribers.
func (d *Dispatcher) Events() *pubsub.Broker[Progress] {
	return d.broker
}

// Close shuts down the progress broker.
func (d *Dispatcher) Close() {
	d.broker.Close()
}

// Run lexes every chunk of the plan concurrently and returns results in
// chunk order. Each chunk is lexed under its provisional entry state;
// callers pass the results to Reconcile to repair boundary disagreements.
// On context cancellation partial results are discarded and ctx.Err()
// is returned.
func (d *Dispatcher) Run(ctx context.Context, src string, plan []chunk.Chunk, tab *grammar.Table) ([]Result, error) {
	runID := uuid.NewString()
	log.Debug(log.CatDispatch, "dispatch run", "run_id", runID, "chunks", len(plan), "workers", d.workers)

	results := make([]Result, len(plan))
	sem := make(chan struct{}, d.workers)
	var wg sync.WaitGroup

	for i, c := range plan {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(i int, c chunk.Chunk) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			toks, exit := automaton.Run(src, c.Start, c.End, c.Entry, tab)
			results[i] = Result{Chunk: c, Tokens: toks, Exit: exit}

			d.broker.Publish(pubsub.ProgressEvent, Progress{
				RunID:  runID,
				Index:  i,
				Total:  len(plan),
				Tokens: len(toks),
			})
		}(i, c)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		log.Warn(log.CatDispatch, "dispatch cancelled", "run_id", runID)
		return nil, err
	}
	return results, nil
}
