package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Enabled, "tracing should be disabled by default")
	require.Equal(t, "file", cfg.Exporter, "default exporter should be file")
	require.Equal(t, "traces.jsonl", cfg.FilePath, "default file path must work without edits")
	require.Equal(t, "localhost:4317", cfg.OTLPEndpoint, "default OTLP endpoint")
	require.Equal(t, 1.0, cfg.SampleRate, "default sample rate should be 1.0")
	require.Equal(t, "glint", cfg.ServiceName, "default service name")
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, provider)
	require.False(t, provider.Enabled())

	tracer := provider.Tracer()
	require.NotNil(t, tracer)

	ctx, span := tracer.Start(context.Background(), "test-span")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_EnabledDefaults(t *testing.T) {
	// Flipping enabled on the shipped defaults must work as-is: the file
	// exporter gets its default path instead of failing on an empty one.
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg := DefaultConfig()
	cfg.Enabled = true

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	tracer := provider.Tracer()
	_, span := tracer.Start(context.Background(), "default-path-span")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))

	_, err = os.Stat(filepath.Join(tmpDir, "traces.jsonl"))
	require.NoError(t, err, "spans should land in the default trace file")
}

func TestNewProvider_Enabled_WithFileExporter(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	cfg := Config{
		Enabled:     true,
		Exporter:    "file",
		FilePath:    tracePath,
		SampleRate:  1.0,
		ServiceName: "test-service",
	}

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	tracer := provider.Tracer()
	ctx, span := tracer.Start(context.Background(), "test-span")
	require.NotNil(t, ctx)

	sc := span.SpanContext()
	require.True(t, sc.IsValid())
	require.True(t, sc.TraceID().IsValid())
	require.True(t, sc.SpanID().IsValid())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))

	data, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	require.Contains(t, string(data), "test-span")
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	cfg := Config{Enabled: true, Exporter: "carrier-pigeon"}

	_, err := NewProvider(cfg)
	require.Error(t, err)
}
