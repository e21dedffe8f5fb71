// Package store is the record store adapter: create, list and delete over the
// four named record collections, scoped to the owning user. Backends are
// interchangeable; Cached sits in front of any of them.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Delete when no record with the given ID exists
// for the owner.
var ErrNotFound = errors.New("record not found")

// Owned is the pointer constraint satisfied by every record model.
type Owned[T any] interface {
	*T
	GetID() string
	GetOwnerID() string
	SetOwnerID(id string)
	Prepare(now time.Time)
	TableName() string
}

// Backend stores records of one collection.
type Backend[T any] interface {
	// Collection returns the collection (table) name.
	Collection() string
	// Add persists rec for owner and returns the new record ID. rec is
	// updated in place with its ID, owner and timestamps.
	Add(ctx context.Context, ownerID string, rec *T) (string, error)
	// List returns every record of owner in insertion order.
	List(ctx context.Context, ownerID string) ([]T, error)
	// Delete removes one record. It returns ErrNotFound when the record
	// does not exist or belongs to someone else.
	Delete(ctx context.Context, ownerID, id string) error
}

// Op is the kind of write that produced a Change.
type Op string

const (
	OpCreate Op = "create"
	OpDelete Op = "delete"
)

// Change describes a committed write.
type Change struct {
	Collection string `json:"collection"`
	OwnerID    string `json:"owner_id"`
	RecordID   string `json:"record_id"`
	Op         Op     `json:"op"`
	Revision   int64  `json:"revision"`
}

// Snapshot is the full record list of one owner at a given revision.
type Snapshot[T any] struct {
	Records  []T
	Revision int64
}

func collectionOf[T any, PT Owned[T]]() string {
	var zero T
	return PT(&zero).TableName()
}
