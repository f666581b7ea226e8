package ratelimit_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Arjun0606/cabbageseo-sub003/internal/ratelimit"
	"github.com/stretchr/testify/require"
)

func TestTryConsume_ExhaustsWindow(t *testing.T) {
	l := ratelimit.NewMemory(ratelimit.Options{Limit: 5, Window: time.Hour})

	for i := 1; i <= 5; i++ {
		require.True(t, l.TryConsume("1.2.3.4", 1), "consumption %d should fit the window", i)
	}
	require.False(t, l.TryConsume("1.2.3.4", 1), "sixth consumption should be denied")
}

func TestTryConsume_KeysAreIndependent(t *testing.T) {
	l := ratelimit.NewMemory(ratelimit.Options{Limit: 2, Window: time.Hour})

	require.True(t, l.TryConsume("a", 2))
	require.False(t, l.TryConsume("a", 1))
	require.True(t, l.TryConsume("b", 1), "a different caller has its own window")
}

func TestTryConsume_MultiSlotIsAtomic(t *testing.T) {
	l := ratelimit.NewMemory(ratelimit.Options{Limit: 5, Window: time.Hour})

	require.True(t, l.TryConsume("caller", 4))

	// one slot remains: a two-slot request must fail without consuming it
	require.False(t, l.TryConsume("caller", 2))
	require.True(t, l.TryConsume("caller", 1), "the remaining slot should be intact after the denied two-slot request")
}

func TestTryConsume_WindowRollsOver(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := ratelimit.NewMemory(ratelimit.Options{
		Limit:  2,
		Window: time.Hour,
		Now:    func() time.Time { return now },
	})

	require.True(t, l.TryConsume("caller", 2))
	require.False(t, l.TryConsume("caller", 1))

	// exactly at the boundary the window is still closed
	now = now.Add(time.Hour)
	require.False(t, l.TryConsume("caller", 1))

	// past the boundary a fresh window replaces the old one
	now = now.Add(time.Nanosecond)
	require.True(t, l.TryConsume("caller", 1))
	require.True(t, l.TryConsume("caller", 1))
	require.False(t, l.TryConsume("caller", 1))
}

func TestTryConsume_InvalidSlots(t *testing.T) {
	l := ratelimit.NewMemory(ratelimit.Options{Limit: 5, Window: time.Hour})

	require.False(t, l.TryConsume("caller", 0))
	require.False(t, l.TryConsume("caller", -1))
	require.True(t, l.TryConsume("caller", 5), "invalid requests must not have consumed anything")
}

func TestTryConsume_Concurrent(t *testing.T) {
	l := ratelimit.NewMemory(ratelimit.Options{Limit: 100, Window: time.Hour})

	var wg sync.WaitGroup
	granted := make([]bool, 200)
	for i := range granted {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			granted[i] = l.TryConsume("caller", 1)
		}(i)
	}
	wg.Wait()

	count := 0
	for _, ok := range granted {
		if ok {
			count++
		}
	}
	require.Equal(t, 100, count, "exactly the window capacity should be granted")
}
