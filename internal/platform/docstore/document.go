// Package docstore provides a schemaless document store backed by PostgreSQL.
// Documents are JSON blobs keyed by (collection, id), with change
// notifications delivered over LISTEN/NOTIFY so callers can keep live
// in-memory snapshots of a collection.
package docstore

import (
	"encoding/json"
	"time"
)

// Collection names used by the application.
const (
	CollectionFermes  = "fermes"
	CollectionRooms   = "rooms"
	CollectionWorkers = "workers"
	CollectionUsers   = "users"
)

// Document is a single stored record. Data holds the raw JSON payload;
// callers decode it into their own types.
type Document struct {
	ID        string
	Data      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter restricts List results to documents whose payload contains the
// given top-level field values. An empty filter matches everything.
type Filter map[string]any
