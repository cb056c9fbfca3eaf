// Package cache holds a single lazily resolved value. Concurrent callers
// share one in-flight load through singleflight, and a successful result is
// kept with no expiration in a go-cache store. A failed load leaves the
// cache empty so the next caller starts over.
package cache

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// State is the lifecycle position of a cached value.
type State int

const (
	// Empty means no value is held and no load is running.
	Empty State = iota
	// Pending means a load is running and callers wait for it.
	Pending
	// Ready means a value is held and returned without loading.
	Ready
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// LoadFunc produces the value for an empty cache.
type LoadFunc[T any] func(ctx context.Context) (T, error)

const valueKey = "value"

// Once caches the result of the first successful load.
type Once[T any] struct {
	mu    sync.Mutex
	state State
	group singleflight.Group
	store *gocache.Cache
}

// New creates an empty cache.
func New[T any]() *Once[T] {
	return &Once[T]{
		// values never expire, so no janitor is started
		store: gocache.New(gocache.NoExpiration, 0),
	}
}

// State returns the current lifecycle state.
func (o *Once[T]) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Peek returns the held value without loading.
func (o *Once[T]) Peek() (T, bool) {
	if v, ok := o.store.Get(valueKey); ok {
		return v.(T), true
	}
	var zero T
	return zero, false
}

// Get returns the held value, joins the running load, or starts a new one.
// The load runs detached from ctx cancellation so one caller giving up does
// not fail the others; that caller alone gets ctx.Err(). The shared flag
// reports whether the result came from a load started by another caller.
func (o *Once[T]) Get(ctx context.Context, load LoadFunc[T]) (value T, shared bool, err error) {
	if v, ok := o.Peek(); ok {
		return v, false, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := o.group.DoChan(valueKey, func() (any, error) {
		// another flight may have completed between Peek and DoChan
		if v, ok := o.store.Get(valueKey); ok {
			return v, nil
		}

		o.setState(Pending)
		v, err := load(detached)
		o.mu.Lock()
		defer o.mu.Unlock()
		if err != nil {
			o.state = Empty
			return nil, err
		}
		o.store.Set(valueKey, v, gocache.NoExpiration)
		o.state = Ready
		return v, nil
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Shared, res.Err
		}
		return res.Val.(T), res.Shared, nil
	}
}

func (o *Once[T]) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}
