package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/salog0d/glint/internal/cachemanager"
	"github.com/salog0d/glint/internal/grammar"
	"github.com/salog0d/glint/internal/highlight"
	"github.com/salog0d/glint/internal/log"
	"github.com/salog0d/glint/internal/tokenizer"
	"github.com/salog0d/glint/internal/watcher"
)

// renderInput carries everything one render needs; it is the loader
// input for the read-through render cache.
type renderInput struct {
	path   string
	src    string
	lang   grammar.Language
	format highlight.Format
	jobs   int
	tracer trace.Tracer
}

// renderSource tokenizes and renders one source snapshot.
func renderSource(ctx context.Context, in renderInput) (string, error) {
	opts := []tokenizer.Option{}
	if in.jobs > 0 {
		opts = append(opts, tokenizer.WithParallelism(in.jobs))
	}
	if in.tracer != nil {
		opts = append(opts, tokenizer.WithTracer(in.tracer))
	}

	toks, err := tokenizer.Tokenize(ctx, in.src, in.lang, opts...)
	if err != nil {
		return "", err
	}
	return highlight.Render(in.format, highlight.Doc{Title: in.path, Language: in.lang}, toks)
}

// renderer holds the resolved settings for one invocation, shared by the
// single-shot path and the watch loop.
type renderer struct {
	path   string
	output string
	lang   grammar.Language
	format highlight.Format
	jobs   int
	tracer trace.Tracer
	cache  *cachemanager.ReadThroughCache[string, string, renderInput]
	ttl    time.Duration
}

// renderOnce reads the input file, renders it through the cache and
// writes the result.
func (r *renderer) renderOnce(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", r.path, err)
	}
	src := string(data)

	out, err := r.cache.Get(ctx, hashKey(r.lang, r.format, src), renderInput{
		path:   r.path,
		src:    src,
		lang:   r.lang,
		format: r.format,
		jobs:   r.jobs,
		tracer: r.tracer,
	}, r.ttl)
	if err != nil {
		return err
	}
	return r.write(out)
}

func (r *renderer) write(out string) error {
	if r.output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(r.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", r.output, err)
	}
	log.Info(log.CatRender, "wrote output", "path", r.output, "bytes", len(out))
	return nil
}

// watchLoop re-renders on every debounced change until the context is
// cancelled.
func (r *renderer) watchLoop(ctx context.Context) error {
	w, err := watcher.New(watcher.Config{Path: r.path, DebounceDur: cfg.Watch.Debounce})
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	log.Info(log.CatWatch, "watching", "path", r.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := r.renderOnce(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.ErrorErr(log.CatWatch, "render failed", err, "path", r.path)
				fmt.Fprintln(os.Stderr, "glint:", err)
			}
		}
	}
}
