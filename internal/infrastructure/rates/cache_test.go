package rates

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCache_HitAndExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var hits, misses int
	c := NewRateCache(CacheOptions{TTL: time.Minute}, CacheHooks{
		OnHit:  func(string) { hits++ },
		OnMiss: func(string) { misses++ },
	})
	c.now = func() time.Time { return now }

	calls := 0
	loader := func(context.Context) (float64, error) {
		calls++
		return 0.25, nil
	}

	rate, err := c.Get(context.Background(), "a:1", loader)
	require.NoError(t, err)
	require.Equal(t, 0.25, rate)

	_, err = c.Get(context.Background(), "a:1", loader)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	now = now.Add(time.Minute)
	_, err = c.Get(context.Background(), "a:1", loader)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Equal(t, 1, hits)
	require.Equal(t, 2, misses)
}

func TestRateCache_ErrorsAreNotStored(t *testing.T) {
	c := NewRateCache(CacheOptions{}, CacheHooks{})
	boom := errors.New("boom")

	_, err := c.Get(context.Background(), "a:1", func(context.Context) (float64, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, c.Len())

	rate, err := c.Get(context.Background(), "a:1", func(context.Context) (float64, error) { return 2, nil })
	require.NoError(t, err)
	require.Equal(t, 2.0, rate)
}

func TestRateCache_ConcurrentMissesShareOneLoad(t *testing.T) {
	c := NewRateCache(CacheOptions{}, CacheHooks{})
	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (float64, error) {
		calls.Add(1)
		<-release
		return 1.5, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rate, err := c.Get(context.Background(), "a:1", loader)
			assert.NoError(t, err)
			assert.Equal(t, 1.5, rate)
		}()
	}
	// let the goroutines pile up on the in-flight load
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
}

func TestRateCache_FIFOEvictionDeleteAndPurge(t *testing.T) {
	c := NewRateCache(CacheOptions{MaxEntries: 2}, CacheHooks{})
	load := func(v float64) RateLoader {
		return func(context.Context) (float64, error) { return v, nil }
	}
	ctx := context.Background()

	_, _ = c.Get(ctx, "a", load(1))
	_, _ = c.Get(ctx, "b", load(2))
	_, _ = c.Get(ctx, "c", load(3))
	require.Equal(t, 2, c.Len())

	reloaded := false
	_, _ = c.Get(ctx, "a", func(context.Context) (float64, error) { reloaded = true; return 1, nil })
	require.True(t, reloaded, "oldest key should have been evicted")

	c.Delete("c")
	require.Equal(t, 1, c.Len())

	c.Purge()
	require.Equal(t, 0, c.Len())
}

func TestRateCache_CancelledCallerDoesNotFailOthers(t *testing.T) {
	c := NewRateCache(CacheOptions{LoadTimeout: time.Second}, CacheHooks{})
	var calls atomic.Int32
	started := make(chan struct{})
	loader := func(ctx context.Context) (float64, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		select {
		case <-time.After(150 * time.Millisecond):
			return 3.0, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	shortCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	shortErr := make(chan error, 1)
	go func() {
		_, err := c.Get(shortCtx, "a:1", loader)
		shortErr <- err
	}()
	<-started

	rate, err := c.Get(context.Background(), "a:1", loader)
	require.NoError(t, err)
	require.Equal(t, 3.0, rate)
	require.ErrorIs(t, <-shortErr, context.DeadlineExceeded)
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, 1, c.Len())
}

func TestRateCache_LoadTimeoutBoundsUpstream(t *testing.T) {
	c := NewRateCache(CacheOptions{LoadTimeout: 30 * time.Millisecond}, CacheHooks{})
	loader := func(ctx context.Context) (float64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}

	start := time.Now()
	_, err := c.Get(context.Background(), "a:1", loader)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, 0, c.Len())
}
