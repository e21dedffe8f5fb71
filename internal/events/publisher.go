// Package events broadcasts record changes between API instances so each
// can drop its cached snapshots when another instance writes.
package events

import (
	"context"
	"time"

	"budgetmaster/internal/logger"
	"budgetmaster/internal/store"
)

// Publisher sends change notifications.
type Publisher interface {
	Publish(ctx context.Context, ch store.Change) error
	Close() error
}

// NopPublisher discards every change. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, store.Change) error { return nil }
func (NopPublisher) Close() error                                { return nil }

// publishTimeout bounds a single asynchronous publish.
const publishTimeout = 5 * time.Second

// Hook adapts p to a store change hook. Publishing happens off the request
// path; failures are logged and otherwise ignored.
func Hook(p Publisher) func(store.Change) {
	return func(ch store.Change) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()
			if err := p.Publish(ctx, ch); err != nil {
				logger.Get().Warnw("Failed to publish record change",
					"collection", ch.Collection,
					"owner_id", ch.OwnerID,
					"op", ch.Op,
					"error", err,
				)
			}
		}()
	}
}

// Invalidator is implemented by caches that can drop an owner's snapshot.
type Invalidator interface {
	Collection() string
	Invalidate(ownerID string)
}

// InvalidationHandler returns a consumer handler that invalidates the
// matching collection for every change published by another instance.
func InvalidationHandler(origin string, targets ...Invalidator) func(*ChangeMessage) error {
	byName := make(map[string]Invalidator, len(targets))
	for _, t := range targets {
		byName[t.Collection()] = t
	}
	return func(msg *ChangeMessage) error {
		if msg.Origin == origin {
			return nil
		}
		if t, ok := byName[msg.Collection]; ok {
			t.Invalidate(msg.OwnerID)
		}
		return nil
	}
}
