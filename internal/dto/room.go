package dto

import (
	"time"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// --- Room DTOs ---

// CreateRoomRequest defines data for creating a new room.
type CreateRoomRequest struct {
	Number   string            `json:"number" binding:"required"`
	FermeID  string            `json:"fermeID" binding:"required"`
	Gender   domain.RoomGender `json:"gender" binding:"required,oneof=men women"`
	Capacity int               `json:"capacity" binding:"required,min=1"`
}

// UpdateRoomRequest defines the data allowed for updating a room.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateRoomRequest struct {
	Number   *string            `json:"number"`
	Gender   *domain.RoomGender `json:"gender" binding:"omitempty,oneof=men women"`
	Capacity *int               `json:"capacity" binding:"omitempty,min=1"`
}

// AddOccupantRequest defines data for assigning a worker to a room.
type AddOccupantRequest struct {
	WorkerID string `json:"workerID" binding:"required"`
}

// RoomResponse defines data returned for a room.
type RoomResponse struct {
	RoomID          string            `json:"roomID"`
	Number          string            `json:"number"`
	FermeID         string            `json:"fermeID"`
	Gender          domain.RoomGender `json:"gender"`
	Capacity        int               `json:"capacity"`
	Occupancy       int               `json:"occupancy"`
	AvailablePlaces int               `json:"availablePlaces"`
	OccupantRefs    []string          `json:"occupantRefs,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// ToRoomResponse converts domain.Room to DTO.
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:          r.RoomID,
		Number:          r.Number,
		FermeID:         r.SiteID,
		Gender:          r.Gender,
		Capacity:        r.RoomCapacity,
		Occupancy:       r.CurrentOccupancy,
		AvailablePlaces: r.AvailablePlaces(),
		OccupantRefs:    r.OccupantRefs,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ListRoomsResponse wraps a list of rooms.
type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ToListRoomsResponse converts a slice of domain.Room to DTO.
func ToListRoomsResponse(rooms []domain.Room) ListRoomsResponse {
	list := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		list[i] = ToRoomResponse(&r)
	}
	return ListRoomsResponse{Rooms: list}
}

// UpdateRoomResponse carries the updated room. Warning is set when the
// update itself succeeded but the follow-up ferme capacity recalculation
// failed and will be retried on the next room change.
type UpdateRoomResponse struct {
	Room    RoomResponse `json:"room"`
	Warning string       `json:"warning,omitempty"`
}

// ListRoomsParams defines query parameters for listing rooms.
type ListRoomsParams struct {
	FermeID string `form:"fermeID"`
	Gender  string `form:"gender" binding:"omitempty,oneof=men women"`
}
