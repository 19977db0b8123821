package services

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// RoomReaderSvc defines read operations for room data
type RoomReaderSvc interface {
	// GetRoomByID retrieves a specific room by its ID.
	GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRooms retrieves rooms, optionally filtered by ferme and gender.
	ListRooms(ctx context.Context, params dto.ListRoomsParams) ([]domain.Room, error)
}

// RoomWriterSvc defines write operations for room data
type RoomWriterSvc interface {
	// CreateRoom persists a new room and refreshes its ferme's capacity
	// counters.
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error)

	// UpdateRoom updates an existing room. A capacity below the room's
	// current occupancy is rejected without writing anything. When the
	// room write succeeds but the follow-up capacity recalculation fails,
	// the non-nil RecalculationError describes the stale counters; the
	// update itself still stands.
	UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest) (*domain.Room, *apperrors.RecalculationError, error)

	// DeleteRoom removes a room and refreshes its ferme's capacity counters.
	DeleteRoom(ctx context.Context, roomID string) error
}

// RoomOccupancySvc defines operations for housing workers in rooms
type RoomOccupancySvc interface {
	// AddOccupant houses a worker in the room. Full rooms and gender
	// mismatches are rejected.
	AddOccupant(ctx context.Context, roomID, workerID string) (*domain.Room, error)

	// RemoveOccupant removes the occupant with the given national id from
	// the room. Removing one that is not housed in the room is not an error.
	RemoveOccupant(ctx context.Context, roomID, nationalID string) (*domain.Room, error)
}

// RoomSvcFacade combines all room-related service interfaces
type RoomSvcFacade interface {
	RoomReaderSvc
	RoomWriterSvc
	RoomOccupancySvc
}
