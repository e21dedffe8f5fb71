package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"budgetmaster/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvalidator struct {
	name  string
	owner []string
}

func (f *fakeInvalidator) Collection() string      { return f.name }
func (f *fakeInvalidator) Invalidate(owner string) { f.owner = append(f.owner, owner) }

func TestInvalidationHandler(t *testing.T) {
	expenses := &fakeInvalidator{name: "expenses"}
	goals := &fakeInvalidator{name: "goals"}
	handle := InvalidationHandler("instance-a", expenses, goals)

	msg := NewChangeMessage("instance-b", store.Change{Collection: "expenses", OwnerID: "alice", Op: store.OpCreate})
	require.NoError(t, handle(msg))
	assert.Equal(t, []string{"alice"}, expenses.owner)
	assert.Empty(t, goals.owner)

	own := NewChangeMessage("instance-a", store.Change{Collection: "goals", OwnerID: "alice"})
	require.NoError(t, handle(own))
	assert.Empty(t, goals.owner, "own changes are already reflected locally")

	unknown := NewChangeMessage("instance-b", store.Change{Collection: "transactions", OwnerID: "alice"})
	assert.NoError(t, handle(unknown))
}

func TestChangeMessage_JSON(t *testing.T) {
	in := NewChangeMessage("instance-a", store.Change{
		Collection: "income", OwnerID: "bob", RecordID: "r1", Op: store.OpDelete, Revision: 42,
	})
	body, err := in.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"collection":"income"`)
	assert.Contains(t, string(body), `"origin":"instance-a"`)

	out, err := ChangeMessageFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, in.Change, out.Change)

	_, err = ChangeMessageFromJSON([]byte("{"))
	assert.Error(t, err)
}

type recordingPublisher struct {
	mu   sync.Mutex
	got  []store.Change
	err  error
	done chan struct{}
}

func (r *recordingPublisher) Publish(_ context.Context, ch store.Change) error {
	r.mu.Lock()
	r.got = append(r.got, ch)
	r.mu.Unlock()
	r.done <- struct{}{}
	return r.err
}

func (r *recordingPublisher) Close() error { return nil }

func TestHook(t *testing.T) {
	for _, pubErr := range []error{nil, errors.New("broker down")} {
		p := &recordingPublisher{err: pubErr, done: make(chan struct{}, 1)}
		Hook(p)(store.Change{Collection: "budget", OwnerID: "carol", Op: store.OpCreate})

		select {
		case <-p.done:
		case <-time.After(time.Second):
			t.Fatal("hook did not publish")
		}
		p.mu.Lock()
		assert.Len(t, p.got, 1)
		p.mu.Unlock()
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), store.Change{}))
	assert.NoError(t, p.Close())
}
