package services

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// FermeReaderSvc defines read operations for ferme data
type FermeReaderSvc interface {
	// GetFermeByID retrieves a specific ferme by its ID.
	GetFermeByID(ctx context.Context, fermeID string) (*domain.Site, error)

	// ListFermes retrieves the fermes visible to the requesting user.
	// Superadmins see every ferme, admins only their own.
	ListFermes(ctx context.Context, requester *domain.User) ([]domain.Site, error)
}

// FermeWriterSvc defines write operations for ferme data
type FermeWriterSvc interface {
	// CreateFerme persists a new ferme and, when the request asks for it,
	// the dormitory rooms of its room plan. The returned rooms are the
	// ones created by the plan.
	CreateFerme(ctx context.Context, req dto.CreateFermeRequest) (*domain.Site, []domain.Room, error)

	// UpdateFerme updates an existing ferme.
	UpdateFerme(ctx context.Context, fermeID string, req dto.UpdateFermeRequest) (*domain.Site, error)

	// DeleteFermeCascade removes a ferme together with all of its rooms.
	// Rooms are deleted first, one by one; if any room deletion fails the
	// cascade stops and the ferme itself is kept.
	DeleteFermeCascade(ctx context.Context, fermeID string) error
}

// FermeCapacitySvc defines capacity bookkeeping operations
type FermeCapacitySvc interface {
	// RecalculateCapacity rescans the ferme's rooms and rewrites its
	// TotalRooms and TotalCapacity counters, returning the refreshed ferme.
	RecalculateCapacity(ctx context.Context, fermeID string) (*domain.Site, error)
}

// FermeSvcFacade combines all ferme-related service interfaces
type FermeSvcFacade interface {
	FermeReaderSvc
	FermeWriterSvc
	FermeCapacitySvc
}
