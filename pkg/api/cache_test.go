package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

func TestLoadCache_Disabled(t *testing.T) {
	cache := NewLoadCache(CacheConfig{Enabled: false})
	require.Nil(t, cache)

	// A nil cache is a working no-op.
	cache.Set("key", dataset.NewTable(nil))
	_, ok := cache.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
	cache.Clear()
}

func TestLoadCache_SetGet(t *testing.T) {
	cache := NewLoadCache(DefaultCacheConfig)
	table := dataset.NewTable(nil)

	cache.Set("key", table)

	got, ok := cache.Get("key")
	require.True(t, ok)
	assert.Same(t, table, got)
	assert.Equal(t, 1, cache.Len())

	_, ok = cache.Get("other")
	assert.False(t, ok)
}

func TestLoadCache_TTLExpiry(t *testing.T) {
	cache := NewLoadCache(CacheConfig{Enabled: true, TTL: 10 * time.Millisecond, MaxSize: 4})
	cache.Set("key", dataset.NewTable(nil))

	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestLoadCache_EvictsOldest(t *testing.T) {
	cache := NewLoadCache(CacheConfig{Enabled: true, TTL: time.Minute, MaxSize: 2})

	cache.Set("a", dataset.NewTable(nil))
	time.Sleep(time.Millisecond)
	cache.Set("b", dataset.NewTable(nil))
	time.Sleep(time.Millisecond)
	cache.Set("c", dataset.NewTable(nil))

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestLoadCache_Clear(t *testing.T) {
	cache := NewLoadCache(DefaultCacheConfig)
	cache.Set("a", dataset.NewTable(nil))
	cache.Set("b", dataset.NewTable(nil))

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
}

func TestCacheKey(t *testing.T) {
	a := &Source{Name: "a.csv", Data: []byte("one")}
	b := &Source{Name: "b.csv", Data: []byte("two")}
	sameBytes := &Source{Name: "renamed.csv", Data: []byte("one")}

	// Builtin and uploads never collide.
	assert.NotEqual(t, CacheKey(nil, 5), CacheKey(a, 5))
	// Different bytes, different key.
	assert.NotEqual(t, CacheKey(a, 5), CacheKey(b, 5))
	// Different percentage, different key.
	assert.NotEqual(t, CacheKey(a, 5), CacheKey(a, 10))
	assert.NotEqual(t, CacheKey(nil, 5), CacheKey(nil, 10))
	// The key follows content, not the file name.
	assert.Equal(t, CacheKey(a, 5), CacheKey(sameBytes, 5))
}
