package docstore

import "context"

// Client is the document store access interface. Implementations must be
// safe for concurrent use.
type Client interface {
	// List returns all documents of a collection matching the filter,
	// ordered by creation time descending.
	List(ctx context.Context, collection string, filter Filter) ([]Document, error)
	// Get returns a single document or apperrors.ErrNotFound.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Create inserts a new document and returns it with server-stamped
	// creation and update times.
	Create(ctx context.Context, collection, id string, data any) (*Document, error)
	// Update merges the given fields into an existing document's payload
	// and bumps its update time. Missing documents yield apperrors.ErrNotFound.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
	// Subscribe delivers a notification on the returned channel every time
	// the given collection changes, until ctx is cancelled. The channel is
	// closed when the subscription ends.
	Subscribe(ctx context.Context, collection string) (<-chan struct{}, error)
}
