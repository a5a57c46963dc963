package api

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched value stays fresh.
const DefaultCacheTTL = 5 * time.Minute

// FetchFunc produces the value for a cache key.
type FetchFunc[T any] func(ctx context.Context) (T, error)

type cacheEntry[T any] struct {
	data      T
	timestamp time.Time
}

// inflightCall is one outstanding fetch. data and err are written before
// done is closed; waiters read them only after done.
type inflightCall[T any] struct {
	done chan struct{}
	data T
	err  error
}

// FetchCache is a TTL cache with in-flight request deduplication: any
// number of concurrent Gets for the same key during one fetch window share
// a single underlying call and its result. Errors are never cached, so the
// next Get after a failure retries fresh.
//
// Construct one per data shape and inject it; the cache holds the mutex
// only across map mutation, never across the fetch itself.
type FetchCache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry[T]
	calls   map[string]*inflightCall[T]
}

// NewFetchCache creates a cache with the given TTL. A non-positive TTL
// falls back to DefaultCacheTTL.
func NewFetchCache[T any](ttl time.Duration) *FetchCache[T] {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &FetchCache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry[T]),
		calls:   make(map[string]*inflightCall[T]),
	}
}

// Get returns the cached value for key if it is younger than the TTL.
// Otherwise it joins the outstanding fetch for the key if one exists, or
// starts a new one. All joiners observe the same result, success or error.
func (c *FetchCache[T]) Get(ctx context.Context, key string, fetch FetchFunc[T]) (T, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.timestamp) < c.ttl {
		c.mu.Unlock()
		return e.data, nil
	}
	if call, ok := c.calls[key]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.data, call.err
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
	call := &inflightCall[T]{done: make(chan struct{})}
	c.calls[key] = call
	c.mu.Unlock()

	data, err := fetch(ctx)

	c.mu.Lock()
	delete(c.calls, key)
	if err == nil {
		c.entries[key] = cacheEntry[T]{data: data, timestamp: c.now()}
	}
	c.mu.Unlock()

	call.data, call.err = data, err
	close(call.done)
	return data, err
}

// Invalidate removes the cached entry for key, forcing the next Get to
// fetch fresh. An already outstanding fetch is unaffected: later Gets
// still join it.
func (c *FetchCache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
