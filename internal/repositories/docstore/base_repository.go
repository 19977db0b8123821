// Package docstore implements the repository ports on top of the
// platform document store.
package docstore

import (
	"encoding/json"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	store "github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Client store.Client
}

// decodeInto unmarshals a document payload into the given value.
func decodeInto(doc store.Document, v any) error {
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return apperrors.NewAppError(500, "failed to decode document payload", err)
	}
	return nil
}
