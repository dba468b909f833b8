package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nutrilens/backend/internal/domain"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("get before set misses", func(t *testing.T) {
		c := NewMemoryCache(0)

		_, err := c.Get(ctx, "missing")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		c := NewMemoryCache(0)

		if err := c.Set(ctx, "k", 42); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		value, err := c.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if value.(int) != 42 {
			t.Errorf("value = %v, want 42", value)
		}
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		c := NewMemoryCache(10 * time.Millisecond)

		c.Set(ctx, "k", "v")
		time.Sleep(20 * time.Millisecond)

		_, err := c.Get(ctx, "k")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after expiry", err)
		}
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		c := NewMemoryCache(0)

		c.Set(ctx, "k", "v")
		time.Sleep(10 * time.Millisecond)

		if _, err := c.Get(ctx, "k"); err != nil {
			t.Errorf("Get() error = %v, want nil", err)
		}
	})

	t.Run("invalidate removes the key", func(t *testing.T) {
		c := NewMemoryCache(0)

		c.Set(ctx, "k", "v")
		if err := c.Invalidate(ctx, "k"); err != nil {
			t.Fatalf("Invalidate() error = %v", err)
		}
		if _, err := c.Get(ctx, "k"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("loads once and caches", func(t *testing.T) {
		c := NewMemoryCache(0)
		var calls atomic.Int32

		load := func(ctx context.Context) (any, error) {
			calls.Add(1)
			return "loaded", nil
		}

		for i := 0; i < 3; i++ {
			value, err := c.GetOrLoad(ctx, "dataset", load)
			if err != nil {
				t.Fatalf("GetOrLoad() error = %v", err)
			}
			if value.(string) != "loaded" {
				t.Errorf("value = %v", value)
			}
		}
		if calls.Load() != 1 {
			t.Errorf("load ran %d times, want 1", calls.Load())
		}
	})

	t.Run("load error is not cached", func(t *testing.T) {
		c := NewMemoryCache(0)
		wantErr := errors.New("read failed")

		if _, err := c.GetOrLoad(ctx, "k", func(ctx context.Context) (any, error) {
			return nil, wantErr
		}); !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want %v", err, wantErr)
		}

		value, err := c.GetOrLoad(ctx, "k", func(ctx context.Context) (any, error) {
			return "recovered", nil
		})
		if err != nil || value.(string) != "recovered" {
			t.Errorf("GetOrLoad() = %v, %v, want recovered", value, err)
		}
	})

	t.Run("concurrent callers share one load", func(t *testing.T) {
		c := NewMemoryCache(0)
		var calls atomic.Int32

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.GetOrLoad(ctx, "dataset", func(ctx context.Context) (any, error) {
					calls.Add(1)
					time.Sleep(time.Millisecond)
					return "loaded", nil
				})
			}()
		}
		wg.Wait()

		if calls.Load() != 1 {
			t.Errorf("load ran %d times, want 1", calls.Load())
		}
	})

	t.Run("invalidate forces a reload", func(t *testing.T) {
		c := NewMemoryCache(0)
		var calls atomic.Int32

		load := func(ctx context.Context) (any, error) {
			calls.Add(1)
			return calls.Load(), nil
		}

		c.GetOrLoad(ctx, "k", load)
		c.Invalidate(ctx, "k")
		value, _ := c.GetOrLoad(ctx, "k", load)

		if value.(int32) != 2 {
			t.Errorf("value after invalidate = %v, want the reloaded 2", value)
		}
	})
}
