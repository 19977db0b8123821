package repositories

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// RoomReader defines read operations for room data
type RoomReader interface {
	// FindRoomByID retrieves a specific room by its ID.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRooms retrieves all rooms.
	ListRooms(ctx context.Context) ([]domain.Room, error)

	// ListRoomsBySiteID retrieves all rooms belonging to a site.
	ListRoomsBySiteID(ctx context.Context, siteID string) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) (*domain.Room, error)

	// UpdateRoomFields merges the given fields into an existing room.
	UpdateRoomFields(ctx context.Context, roomID string, fields map[string]any) error

	// DeleteRoom removes a room. Deleting a missing room is not an error.
	DeleteRoom(ctx context.Context, roomID string) error
}

// RoomRepositoryFacade combines all room-related repository interfaces
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}
