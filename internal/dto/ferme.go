package dto

import (
	"time"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// --- Ferme DTOs ---

// CreateFermeRequest defines data for creating a new ferme.
// When AutoCreateRooms is set, the dormitory rooms described by the plan
// are created alongside the ferme and the totals are derived from the plan;
// otherwise TotalRooms and TotalCapacity are stored as supplied.
type CreateFermeRequest struct {
	Name            string `json:"name" binding:"required"`
	AutoCreateRooms bool   `json:"autoCreateRooms"`
	TotalRooms      int    `json:"totalRooms" binding:"omitempty,min=0"`
	TotalCapacity   int    `json:"totalCapacity" binding:"omitempty,min=0"`

	MenRoomsCount      int `json:"menRoomsCount" binding:"omitempty,min=0"`
	MenRoomsCapacity   int `json:"menRoomsCapacity" binding:"omitempty,min=0"`
	MenRoomsStart      int `json:"menRoomsStart" binding:"omitempty,min=1"`
	WomenRoomsCount    int `json:"womenRoomsCount" binding:"omitempty,min=0"`
	WomenRoomsCapacity int `json:"womenRoomsCapacity" binding:"omitempty,min=0"`
	WomenRoomsStart    int `json:"womenRoomsStart" binding:"omitempty,min=1"`
}

// ToRoomPlan converts the request's room numbers into a domain room plan,
// applying the standard defaults for anything left unset.
func (r CreateFermeRequest) ToRoomPlan() domain.RoomPlan {
	plan := domain.DefaultRoomPlan()
	plan.AutoCreateRooms = r.AutoCreateRooms
	if r.MenRoomsCount > 0 {
		plan.MenCount = r.MenRoomsCount
	}
	if r.MenRoomsCapacity > 0 {
		plan.MenCapacity = r.MenRoomsCapacity
	}
	if r.MenRoomsStart > 0 {
		plan.MenStart = r.MenRoomsStart
	}
	if r.WomenRoomsCount > 0 {
		plan.WomenCount = r.WomenRoomsCount
	}
	if r.WomenRoomsCapacity > 0 {
		plan.WomenCapacity = r.WomenRoomsCapacity
	}
	if r.WomenRoomsStart > 0 {
		plan.WomenStart = r.WomenRoomsStart
	}
	return plan
}

// UpdateFermeRequest defines the data allowed for updating a ferme.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateFermeRequest struct {
	Name     *string   `json:"name"`
	AdminIDs *[]string `json:"adminIDs"`
}

// FermeResponse defines data returned for a ferme.
type FermeResponse struct {
	FermeID       string    `json:"fermeID"`
	Name          string    `json:"name"`
	TotalRooms    int       `json:"totalRooms"`
	TotalCapacity int       `json:"totalCapacity"`
	AdminIDs      []string  `json:"adminIDs,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToFermeResponse converts domain.Site to DTO.
func ToFermeResponse(s *domain.Site) FermeResponse {
	return FermeResponse{
		FermeID:       s.SiteID,
		Name:          s.Name,
		TotalRooms:    s.TotalRooms,
		TotalCapacity: s.TotalCapacity,
		AdminIDs:      s.AdminIDs,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ListFermesResponse wraps a list of fermes.
type ListFermesResponse struct {
	Fermes []FermeResponse `json:"fermes"`
}

// ToListFermesResponse converts a slice of domain.Site to DTO.
func ToListFermesResponse(sites []domain.Site) ListFermesResponse {
	list := make([]FermeResponse, len(sites))
	for i, s := range sites {
		list[i] = ToFermeResponse(&s)
	}
	return ListFermesResponse{Fermes: list}
}

// RecalculateResponse carries the refreshed ferme after an explicit
// capacity recalculation.
type RecalculateResponse struct {
	Ferme FermeResponse `json:"ferme"`
}
