package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Put(t *testing.T) {
	c := New()

	require.NoError(t, c.Put("ORD001", true))
	assert.True(t, c.Contains("ORD001"))

	// Overwriting is allowed; the value type is irrelevant.
	require.NoError(t, c.Put("ORD001", "marker"))

	value, ok := c.Get("ORD001")
	require.True(t, ok)
	assert.Equal(t, "marker", value)

	assert.ErrorIs(t, c.Put("", true), ErrEmptyKey)
}

func TestCache_EmptyKeyLookups(t *testing.T) {
	c := New()

	assert.False(t, c.Contains(""))

	_, ok := c.Get("")
	assert.False(t, ok)

	// No-op, no panic.
	c.Remove("")
}

func TestCache_PutIfAbsent(t *testing.T) {
	c := New()

	claimed, err := c.PutIfAbsent("ORD001", true)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = c.PutIfAbsent("ORD001", "other")
	require.NoError(t, err)
	assert.False(t, claimed)

	// The original value survives a losing PutIfAbsent.
	value, ok := c.Get("ORD001")
	require.True(t, ok)
	assert.Equal(t, true, value)

	_, err = c.PutIfAbsent("", true)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestCache_RemoveAndClear(t *testing.T) {
	c := New()

	require.NoError(t, c.Put("ORD001", true))
	require.NoError(t, c.Put("ORD002", true))
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.IsEmpty())

	c.Remove("ORD001")
	assert.False(t, c.Contains("ORD001"))
	assert.Equal(t, 1, c.Len())

	// Removing an absent key is fine.
	c.Remove("ORD001")

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
}

func TestCache_ConcurrentClaims(t *testing.T) {
	c := New()

	const workers = 32

	var wg sync.WaitGroup

	claims := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func(worker int) {
			defer wg.Done()

			claimed, err := c.PutIfAbsent("ORD001", worker)
			if err != nil {
				t.Error(err)
				return
			}

			if claimed {
				claims <- fmt.Sprintf("worker-%d", worker)
			}
		}(i)
	}

	wg.Wait()
	close(claims)

	// Exactly one worker wins the claim.
	assert.Len(t, drain(claims), 1)
}

func drain(ch chan string) []string {
	var out []string
	for s := range ch {
		out = append(out, s)
	}

	return out
}
