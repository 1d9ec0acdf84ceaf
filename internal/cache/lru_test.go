package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU_EdgeCases(t *testing.T) {
	c := NewLRUBlockCache(50)
	ctx := context.Background()
	k := Key{Path: "a", Block: 1}

	// 1. Item larger than capacity
	big := make([]byte, 60)
	c.Set(ctx, k, big)
	_, ok := c.Get(ctx, k)
	assert.False(t, ok, "Item > capacity should not be cached")

	// 2. Update existing item
	v1 := make([]byte, 10)
	c.Set(ctx, k, v1)
	assert.Equal(t, int64(10), c.Size())

	v2 := make([]byte, 20)
	c.Set(ctx, k, v2)
	assert.Equal(t, int64(20), c.Size())

	v3 := make([]byte, 5)
	c.Set(ctx, k, v3)
	assert.Equal(t, int64(5), c.Size())
}

func TestLRU_EvictsOldest(t *testing.T) {
	c := NewLRUBlockCache(30)
	ctx := context.Background()

	c.Set(ctx, Key{Path: "a", Block: 1}, make([]byte, 10))
	c.Set(ctx, Key{Path: "a", Block: 2}, make([]byte, 10))
	c.Set(ctx, Key{Path: "a", Block: 3}, make([]byte, 10))

	// Touch block 1 so block 2 is the eviction candidate.
	_, ok := c.Get(ctx, Key{Path: "a", Block: 1})
	assert.True(t, ok)

	c.Set(ctx, Key{Path: "a", Block: 4}, make([]byte, 10))

	_, ok = c.Get(ctx, Key{Path: "a", Block: 2})
	assert.False(t, ok, "least recently used block should be evicted")
	_, ok = c.Get(ctx, Key{Path: "a", Block: 1})
	assert.True(t, ok)
}

func TestLRU_Stats(t *testing.T) {
	c := NewLRUBlockCache(100)
	ctx := context.Background()
	k := Key{Path: "a", Block: 1}
	c.Set(ctx, k, []byte{1})
	c.Get(ctx, k)                         // Hit
	c.Get(ctx, Key{Path: "b", Block: 2}) // Miss

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestLRU_Invalidate(t *testing.T) {
	c := NewLRUBlockCache(100)
	ctx := context.Background()
	c.Set(ctx, Key{Path: "a", Block: 1}, []byte("a"))
	c.Set(ctx, Key{Path: "a", Block: 2}, []byte("b"))
	c.Set(ctx, Key{Path: "b", Block: 1}, []byte("c"))

	c.Invalidate(func(k Key) bool {
		return k.Path == "a"
	})

	_, ok := c.Get(ctx, Key{Path: "a", Block: 1})
	assert.False(t, ok)
	_, ok = c.Get(ctx, Key{Path: "b", Block: 1})
	assert.True(t, ok)
}
