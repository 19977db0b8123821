package services

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// StatisticsSvcFacade defines read-only reporting over the housing data.
// All figures are computed from live collection snapshots and scoped to
// what the requesting user may see.
type StatisticsSvcFacade interface {
	// GetHousingStats returns the aggregate dashboard figures.
	GetHousingStats(ctx context.Context, requester *domain.User) (*domain.HousingStats, error)

	// GetFermeStats returns per-ferme occupancy figures.
	GetFermeStats(ctx context.Context, requester *domain.User) ([]domain.SiteStats, error)

	// GetAgeDistribution returns active worker counts per age bucket.
	GetAgeDistribution(ctx context.Context, requester *domain.User) (*domain.AgeDistribution, error)
}

// IntegritySvcFacade defines consistency checks over the housing data.
type IntegritySvcFacade interface {
	// CheckHousing cross-checks room occupancy counters against worker
	// assignments and reports every mismatch found.
	CheckHousing(ctx context.Context) (*domain.IntegrityReport, error)
}
