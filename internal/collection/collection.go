// Package collection keeps an in-memory, refetch-on-change cache of one
// entity table. Every successful mutation is followed by a full reload
// from the store; a failed mutation leaves the cache untouched.
package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/auth"
	"logistics-backoffice/internal/changefeed"
	"logistics-backoffice/internal/logx"
)

// Store is the remote side of a collection.
type Store[T any, U any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item *T) (int64, error)
	UpdatePartial(ctx context.Context, u U) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Options customise a collection.
type Options[T any] struct {
	// Name labels log entries, e.g. "deliveries".
	Name string
	// ID extracts the primary key.
	ID func(T) int64
	// SetOwner stamps the creating account on a new item.
	SetOwner func(*T, uuid.UUID)
	// Decorate derives read-time fields after every fetch.
	Decorate func(*T)
	Logger   logx.Logger
}

// Collection is a cached list of T backed by a Store.
type Collection[T any, U any] struct {
	store Store[T, U]
	opts  Options[T]

	mu      sync.RWMutex
	items   []T
	loading bool
	loaded  bool
}

// New creates an empty collection. Call Refresh to populate it.
func New[T any, U any](store Store[T, U], opts Options[T]) *Collection[T, U] {
	if opts.Logger == nil {
		opts.Logger = logx.Nop()
	}
	return &Collection[T, U]{store: store, opts: opts}
}

// Refresh replaces the cache with a fresh fetch. The loading flag is held
// for the duration of the fetch; on error the previous cache is kept.
func (c *Collection[T, U]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.store.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.opts.Logger.Error("collection fetch failed", logx.String("collection", c.opts.Name), logx.Err(err))
		return fmt.Errorf("fetch %s: %w", c.opts.Name, err)
	}
	if c.opts.Decorate != nil {
		for i := range items {
			c.opts.Decorate(&items[i])
		}
	}
	c.items = items
	c.loaded = true
	return nil
}

// Create stamps the authenticated actor as owner, inserts item and reloads.
// Without an actor in ctx it fails with apperr.ErrUnauthorized and makes no
// remote call.
func (c *Collection[T, U]) Create(ctx context.Context, item *T) (int64, error) {
	actor, ok := auth.ActorFrom(ctx)
	if !ok {
		return 0, apperr.ErrUnauthorized
	}
	if c.opts.SetOwner != nil {
		c.opts.SetOwner(item, actor)
	}
	id, err := c.store.Create(ctx, item)
	if err != nil {
		c.logMutation("create", 0, err)
		return 0, err
	}
	c.logMutation("create", id, nil)
	return id, c.Refresh(ctx)
}

// Update applies a partial update and reloads. A missing row yields
// apperr.ErrNotFound.
func (c *Collection[T, U]) Update(ctx context.Context, id int64, u U) error {
	ok, err := c.store.UpdatePartial(ctx, u)
	if err == nil && !ok {
		err = apperr.ErrNotFound
	}
	c.logMutation("update", id, err)
	if err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Delete removes a row and reloads. A missing row yields apperr.ErrNotFound.
func (c *Collection[T, U]) Delete(ctx context.Context, id int64) error {
	ok, err := c.store.Delete(ctx, id)
	if err == nil && !ok {
		err = apperr.ErrNotFound
	}
	c.logMutation("delete", id, err)
	if err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Replace swaps the cached item with the same id for next without touching
// the store, returning the previous value. It is the local half of an
// optimistic write.
func (c *Collection[T, U]) Replace(next T) (prev T, ok bool) {
	id := c.opts.ID(next)
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.opts.ID(c.items[i]) == id {
			prev = c.items[i]
			c.items[i] = next
			return prev, true
		}
	}
	return prev, false
}

// Get returns the cached item with id.
func (c *Collection[T, U]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if c.opts.ID(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot returns a copy of the cached list in store order.
func (c *Collection[T, U]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a fetch is in flight.
func (c *Collection[T, U]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Loaded reports whether at least one fetch has succeeded.
func (c *Collection[T, U]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Follow reloads the collection whenever sub yields an event, coalescing
// bursts into a single fetch. It returns when ctx is done or sub is closed.
// The last completed fetch wins over any optimistic local write.
func (c *Collection[T, U]) Follow(ctx context.Context, sub changefeed.Subscription) error {
	defer sub.Close()
	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			drain(events)
			if err := c.Refresh(ctx); err != nil && ctx.Err() == nil {
				c.opts.Logger.Warn("collection refresh on change failed",
					logx.String("collection", c.opts.Name), logx.Err(err))
			}
		}
	}
}

func drain(ch <-chan changefeed.Event) {
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (c *Collection[T, U]) logMutation(op string, id int64, err error) {
	fields := []logx.Field{
		logx.String("collection", c.opts.Name),
		logx.String("op", op),
		logx.Int64("id", id),
	}
	if err != nil {
		c.opts.Logger.Warn("collection mutation failed", append(fields, logx.Err(err))...)
		return
	}
	c.opts.Logger.Info("collection mutation applied", fields...)
}
