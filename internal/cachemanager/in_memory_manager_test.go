package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type renderedDoc struct {
	Format string
	Body   string
}

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)
	})
}

func TestInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, renderedDoc]("render", DefaultExpiration, DefaultCleanupInterval)
	doc := renderedDoc{Format: "html", Body: "<span>x</span>"}
	cache.Set(context.Background(), "python/html/abc123", doc, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "python/html/abc123")
	require.True(t, ok)
	require.Equal(t, doc, got)
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "sql/ansi/def456", "SELECT 1;", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "sql/ansi/def456")
	require.True(t, ok)
	require.Equal(t, "SELECT 1;", got)
}

func TestInMemoryCacheManager_GetMissingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "never-set")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithWrongValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	cache.cache.Set("key", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "key")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetMultipleWithNoKeys(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.GetMultiple(context.Background(), []string{})
	require.False(t, ok)
	require.Nil(t, got)
}

func TestInMemoryCacheManager_GetMultipleCacheHit(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	cache.Set(context.Background(), "a", "alpha", DefaultExpiration)
	cache.Set(context.Background(), "b", "beta", DefaultExpiration)

	got, ok := cache.GetMultiple(context.Background(), []string{"a", "b", "missing"})
	require.True(t, ok)
	require.Equal(t, map[string]string{"a": "alpha", "b": "beta"}, got)
}

func TestInMemoryCacheManager_GetMultipleCacheMiss(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.GetMultiple(context.Background(), []string{"a", "b"})
	require.False(t, ok)
	require.Nil(t, got)
}

func TestInMemoryCacheManager_GetWithRefresh_Missing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.GetWithRefresh(context.Background(), "key", time.Hour)
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithRefresh_Existing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "key", "value", DefaultExpiration)

	got, ok := cache.GetWithRefresh(context.Background(), "key", time.Hour)
	require.True(t, ok)
	require.Equal(t, "value", got)
}

func TestInMemoryCacheManager_DeleteWithNoKeys(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	require.NoError(t, cache.Delete(context.Background()))
}

func TestInMemoryCacheManager_DeleteExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "key", "value", DefaultExpiration)

	require.NoError(t, cache.Delete(context.Background(), "key"))

	got, ok := cache.Get(context.Background(), "key")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "alpha", DefaultExpiration)
	cache.Set(context.Background(), "b", "beta", DefaultExpiration)

	require.NoError(t, cache.Flush(context.Background()))

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
	_, ok = cache.Get(context.Background(), "b")
	require.False(t, ok)
}
