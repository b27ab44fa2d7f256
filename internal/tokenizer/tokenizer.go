// Package tokenizer is the public face of the lexing pipeline: it plans
// chunks, dispatches them to parallel workers and reconciles the results
// into a token stream identical to a sequential scan. Concatenating the
// returned token texts reproduces the input byte for byte.
package tokenizer

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/salog0d/glint/internal/automaton"
	"github.com/salog0d/glint/internal/chunk"
	"github.com/salog0d/glint/internal/dispatch"
	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/log"
	"github.com/salog0d/glint/internal/token"
)

// Option customizes a Tokenize call.
type Option func(*options)

type options struct {
	parallelism int
	tracer      trace.Tracer
	dispatcher  *dispatch.Dispatcher
}

// WithParallelism sets the worker budget. Values below one fall back to
// the number of CPUs.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithTracer overrides the tracer used for pipeline spans. The default
// is the global OpenTelemetry tracer, a no-op unless tracing is wired.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithDispatcher reuses an existing dispatcher, keeping its progress
// broker subscriptions alive across calls.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// Tokenize lexes source under the given language grammar. The only hard
// failure is an unknown language; malformed input always yields a token
// stream, with unrecognized bytes as Unknown tokens and unclosed strings
// or comments flagged Unterminated. Cancellation through ctx discards
// partial results and returns ctx.Err().
func Tokenize(ctx context.Context, source string, lang grammar.Language, opts ...Option) ([]token.Token, error) {
	o := options{
		parallelism: runtime.NumCPU(),
		tracer:      otel.Tracer("glint"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.NumCPU()
	}

	tab, err := grammar.For(lang)
	if err != nil {
		return nil, err
	}

	ctx, span := o.tracer.Start(ctx, "tokenize", trace.WithAttributes(
		attribute.String("language", string(lang)),
		attribute.Int("bytes", len(source)),
		attribute.Int("parallelism", o.parallelism),
	))
	defer span.End()

	plan := chunk.Plan(source, o.parallelism, tab)
	span.SetAttributes(attribute.Int("chunks", len(plan)))
	log.Debug(log.CatLexer, "tokenize", "language", lang, "bytes", len(source), "chunks", len(plan))

	if len(plan) == 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		toks, _ := automaton.Run(source, 0, len(source), automaton.Initial(), tab)
		return toks, nil
	}

	d := o.dispatcher
	if d == nil {
		d = dispatch.New(o.parallelism)
		defer d.Close()
	}

	_, dspan := o.tracer.Start(ctx, "dispatch")
	results, err := d.Run(ctx, source, plan, tab)
	dspan.End()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	_, rspan := o.tracer.Start(ctx, "reconcile")
	toks := dispatch.Reconcile(source, results, tab)
	rspan.End()

	span.SetAttributes(attribute.Int("tokens", len(toks)))
	return toks, nil
}

// Sequential lexes source in one pass with no chunking. Tokenize with
// any parallelism produces the identical stream; this is the reference
// path for tests and for callers that want deterministic single-threaded
// behavior.
func Sequential(source string, lang grammar.Language) ([]token.Token, error) {
	tab, err := grammar.For(lang)
	if err != nil {
		return nil, err
	}
	toks, _ := automaton.Run(source, 0, len(source), automaton.Initial(), tab)
	return toks, nil
}
