package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"budgetmaster/internal/cache"
)

// Cached wraps a Backend with per-owner serialization, a monotonic revision
// counter and a snapshot cache that is dropped on every write.
//
// All operations for the same owner run one at a time, so a List can never
// observe a half-applied write, and every Snapshot carries the revision it
// was read at. Clients discard views whose revision is lower than one they
// have already rendered.
//
// Per-owner locks only live while an operation holds or waits for them.
// Revisions come from one counter per store that never goes backwards, so
// no per-owner state has to be kept between requests.
type Cached[T any] struct {
	backend Backend[T]
	cache   cache.Cache[Snapshot[T]]
	now     func() time.Time

	mu    sync.Mutex
	locks map[string]*ownerLock
	last  int64

	onChange func(Change)
}

// CachedOption configures a Cached store.
type CachedOption[T any] func(*Cached[T])

// WithChangeHook registers fn to be called after every committed write.
func WithChangeHook[T any](fn func(Change)) CachedOption[T] {
	return func(c *Cached[T]) { c.onChange = fn }
}

// NewCached wraps backend. snapshots may be shared by several collections of
// the same record type; keys are prefixed with the collection name.
func NewCached[T any](backend Backend[T], snapshots cache.Cache[Snapshot[T]], opts ...CachedOption[T]) *Cached[T] {
	c := &Cached[T]{
		backend: backend,
		cache:   snapshots,
		now:     time.Now,
		locks:   make(map[string]*ownerLock),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collection returns the wrapped backend's collection name.
func (c *Cached[T]) Collection() string { return c.backend.Collection() }

func (c *Cached[T]) key(ownerID string) string {
	return c.backend.Collection() + "/" + ownerID
}

type ownerLock struct {
	mu   sync.Mutex
	refs int
}

// lock serializes work for owner. The entry is dropped once nobody holds or
// waits for it.
func (c *Cached[T]) lock(ownerID string) func() {
	c.mu.Lock()
	l, ok := c.locks[ownerID]
	if !ok {
		l = &ownerLock{}
		c.locks[ownerID] = l
	}
	l.refs++
	c.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		c.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(c.locks, ownerID)
		}
		c.mu.Unlock()
	}
}

// revision returns the revision for a fresh read: the wall clock, or the
// last revision handed out if the clock is behind it.
func (c *Cached[T]) revision() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if now := c.now().UnixNano(); now > c.last {
		c.last = now
	}
	return c.last
}

// bump returns a revision strictly greater than any handed out before, even
// if the wall clock goes backwards.
func (c *Cached[T]) bump() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.now().UnixNano()
	if next <= c.last {
		next = c.last + 1
	}
	c.last = next
	return next
}

// Add creates a record and invalidates the owner's snapshot.
func (c *Cached[T]) Add(ctx context.Context, ownerID string, rec *T) (string, error) {
	unlock := c.lock(ownerID)
	defer unlock()

	id, err := c.backend.Add(ctx, ownerID, rec)
	if err != nil {
		return "", err
	}
	c.committed(ownerID, id, OpCreate)
	return id, nil
}

// Delete removes a record and invalidates the owner's snapshot. A missing
// record leaves the revision unchanged.
func (c *Cached[T]) Delete(ctx context.Context, ownerID, id string) error {
	unlock := c.lock(ownerID)
	defer unlock()

	if err := c.backend.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	c.committed(ownerID, id, OpDelete)
	return nil
}

func (c *Cached[T]) committed(ownerID, id string, op Op) {
	rev := c.bump()
	c.cache.Delete(c.key(ownerID))
	if c.onChange != nil {
		c.onChange(Change{
			Collection: c.backend.Collection(),
			OwnerID:    ownerID,
			RecordID:   id,
			Op:         op,
			Revision:   rev,
		})
	}
}

// List returns the owner's records, from cache when possible.
func (c *Cached[T]) List(ctx context.Context, ownerID string) (Snapshot[T], error) {
	unlock := c.lock(ownerID)
	defer unlock()

	if snap, ok := c.cache.Get(c.key(ownerID)); ok {
		return Snapshot[T]{Records: slices.Clone(snap.Records), Revision: snap.Revision}, nil
	}

	records, err := c.backend.List(ctx, ownerID)
	if err != nil {
		return Snapshot[T]{}, err
	}
	snap := Snapshot[T]{Records: records, Revision: c.revision()}
	c.cache.Set(c.key(ownerID), snap)
	return Snapshot[T]{Records: slices.Clone(records), Revision: snap.Revision}, nil
}

// Invalidate drops the owner's cached snapshot after a write made elsewhere,
// for example by another instance.
func (c *Cached[T]) Invalidate(ownerID string) {
	unlock := c.lock(ownerID)
	defer unlock()

	c.bump()
	c.cache.Delete(c.key(ownerID))
}
