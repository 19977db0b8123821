package docstore

import (
	"context"
	"sync"
)

// Status reports the lifecycle state of an Accessor snapshot.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

// Accessor keeps a live in-memory snapshot of a collection, decoded into
// typed values. It loads the collection once at Start and reloads it on
// every change notification, so reads never touch the database.
type Accessor[T any] struct {
	client     Client
	collection string
	decode     func(Document) (T, error)

	mu     sync.RWMutex
	items  []T
	status Status
	err    error

	cancel context.CancelFunc
	done   chan struct{}
}

// NewAccessor creates an accessor for a collection. decode converts each
// raw document into the caller's type; documents it rejects fail the
// whole snapshot so callers never observe a partial view.
func NewAccessor[T any](client Client, collection string, decode func(Document) (T, error)) *Accessor[T] {
	return &Accessor[T]{
		client:     client,
		collection: collection,
		decode:     decode,
		status:     StatusLoading,
	}
}

// Start performs the initial load and begins following change
// notifications. It returns once the first snapshot attempt completed.
func (a *Accessor[T]) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan struct{})

	changes, err := a.client.Subscribe(ctx, a.collection)
	if err != nil {
		cancel()
		close(a.done)
		a.setError(err)
		return err
	}

	loadErr := a.load(ctx)

	go func() {
		defer close(a.done)
		for range changes {
			if err := a.load(ctx); err != nil && ctx.Err() != nil {
				return
			}
		}
	}()

	return loadErr
}

// Stop ends the subscription and waits for the follower to exit.
func (a *Accessor[T]) Stop() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	<-a.done
}

// Snapshot returns the current decoded items along with the accessor
// status and last error. The returned slice must not be mutated.
func (a *Accessor[T]) Snapshot() ([]T, Status, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.items, a.status, a.err
}

// Refresh forces an immediate reload, bypassing the notification stream.
func (a *Accessor[T]) Refresh(ctx context.Context) error {
	return a.load(ctx)
}

func (a *Accessor[T]) load(ctx context.Context) error {
	docs, err := a.client.List(ctx, a.collection, nil)
	if err != nil {
		a.setError(err)
		return err
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := a.decode(doc)
		if err != nil {
			a.setError(err)
			return err
		}
		items = append(items, item)
	}

	a.mu.Lock()
	a.items = items
	a.status = StatusReady
	a.err = nil
	a.mu.Unlock()
	return nil
}

func (a *Accessor[T]) setError(err error) {
	a.mu.Lock()
	a.status = StatusError
	a.err = err
	a.mu.Unlock()
}
