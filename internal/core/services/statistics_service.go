package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

// SnapshotSource is the read side of a live collection accessor.
type SnapshotSource[T any] interface {
	Snapshot() ([]T, docstore.Status, error)
}

// statisticsService implements the StatisticsSvcFacade interface. It computes
// everything from the live accessor snapshots, so serving a dashboard never
// triggers a collection scan.
type statisticsService struct {
	BaseService
	sites   SnapshotSource[domain.Site]
	rooms   SnapshotSource[domain.Room]
	workers SnapshotSource[domain.Worker]
}

// NewStatisticsService creates a new statistics service over the given
// collection snapshots.
func NewStatisticsService(
	sites SnapshotSource[domain.Site],
	rooms SnapshotSource[domain.Room],
	workers SnapshotSource[domain.Worker],
) portssvc.StatisticsSvcFacade {
	return &statisticsService{
		sites:   sites,
		rooms:   rooms,
		workers: workers,
	}
}

// Ensure statisticsService implements the StatisticsSvcFacade interface
var _ portssvc.StatisticsSvcFacade = (*statisticsService)(nil)

// recentArrivalWindow is how far back an entry date still counts as a
// recent arrival on the dashboard.
const recentArrivalWindow = 30 * 24 * time.Hour

func snapshot[T any](src SnapshotSource[T]) ([]T, error) {
	items, status, err := src.Snapshot()
	if status == docstore.StatusError {
		return nil, err
	}
	if status == docstore.StatusLoading {
		return nil, apperrors.NewAppError(503, "collection snapshot not loaded yet", apperrors.ErrUnavailable)
	}
	return items, nil
}

// GetHousingStats returns the aggregate dashboard figures
func (s *statisticsService) GetHousingStats(ctx context.Context, requester *domain.User) (*domain.HousingStats, error) {
	rooms, workers, err := s.scopedRoomsAndWorkers(requester)
	if err != nil {
		s.LogError(ctx, err, "Failed to read snapshots for housing stats")
		return nil, err
	}

	stats := &domain.HousingStats{}

	var ageSum, ageSumMen, ageSumWomen int
	cutoff := time.Now().Add(-recentArrivalWindow)
	for _, worker := range workers {
		if !worker.IsActive() {
			continue
		}
		stats.TotalWorkers++
		ageSum += worker.Age
		if worker.Gender == domain.Woman {
			stats.FemaleWorkers++
			ageSumWomen += worker.Age
		} else {
			stats.MaleWorkers++
			ageSumMen += worker.Age
		}
		if worker.EntryDate.After(cutoff) {
			stats.RecentArrivals++
		}
	}

	for _, room := range rooms {
		stats.TotalRooms++
		stats.TotalCapacity += room.RoomCapacity
		stats.OccupiedPlaces += room.CurrentOccupancy
		if room.CurrentOccupancy > 0 {
			stats.OccupiedRooms++
		}
		if !room.IsFull() {
			stats.AvailableRooms++
		}
	}
	stats.AvailablePlaces = stats.TotalCapacity - stats.OccupiedPlaces
	stats.OccupancyRate = percentage(stats.OccupiedPlaces, stats.TotalCapacity)
	stats.AverageAge = roundedAverage(ageSum, stats.TotalWorkers)
	stats.AverageAgeMen = roundedAverage(ageSumMen, stats.MaleWorkers)
	stats.AverageAgeWomen = roundedAverage(ageSumWomen, stats.FemaleWorkers)

	return stats, nil
}

// GetFermeStats returns per-ferme occupancy figures
func (s *statisticsService) GetFermeStats(ctx context.Context, requester *domain.User) ([]domain.SiteStats, error) {
	sites, err := snapshot(s.sites)
	if err != nil {
		s.LogError(ctx, err, "Failed to read site snapshot for ferme stats")
		return nil, err
	}
	rooms, workers, err := s.scopedRoomsAndWorkers(requester)
	if err != nil {
		s.LogError(ctx, err, "Failed to read snapshots for ferme stats")
		return nil, err
	}

	perSite := make(map[string]*domain.SiteStats, len(sites))
	// Preallocated to full size so the pointers into it stay valid.
	out := make([]domain.SiteStats, 0, len(sites))
	for _, site := range sites {
		if requester != nil && !requester.CanAccessSite(site.SiteID) {
			continue
		}
		out = append(out, domain.SiteStats{SiteID: site.SiteID, SiteName: site.Name})
		perSite[site.SiteID] = &out[len(out)-1]
	}

	capacities := make(map[string]int, len(perSite))
	occupied := make(map[string]int, len(perSite))
	for _, room := range rooms {
		entry, ok := perSite[room.SiteID]
		if !ok {
			continue
		}
		entry.Rooms++
		if room.CurrentOccupancy > 0 {
			entry.OccupiedRooms++
		}
		capacities[room.SiteID] += room.RoomCapacity
		occupied[room.SiteID] += room.CurrentOccupancy
	}
	for _, worker := range workers {
		if entry, ok := perSite[worker.SiteID]; ok && worker.IsActive() {
			entry.Workers++
		}
	}
	for siteID, entry := range perSite {
		entry.OccupancyRate = percentage(occupied[siteID], capacities[siteID])
	}

	return out, nil
}

// GetAgeDistribution returns active worker counts per age bucket
func (s *statisticsService) GetAgeDistribution(ctx context.Context, requester *domain.User) (*domain.AgeDistribution, error) {
	_, workers, err := s.scopedRoomsAndWorkers(requester)
	if err != nil {
		s.LogError(ctx, err, "Failed to read worker snapshot for age distribution")
		return nil, err
	}

	dist := &domain.AgeDistribution{}
	for _, worker := range workers {
		if !worker.IsActive() {
			continue
		}
		switch {
		case worker.Age >= 18 && worker.Age <= 25:
			dist.From18To25++
		case worker.Age >= 26 && worker.Age <= 35:
			dist.From26To35++
		case worker.Age >= 36 && worker.Age <= 45:
			dist.From36To45++
		case worker.Age >= 46:
			dist.Above46++
		}
	}
	return dist, nil
}

func (s *statisticsService) scopedRoomsAndWorkers(requester *domain.User) ([]domain.Room, []domain.Worker, error) {
	rooms, err := snapshot(s.rooms)
	if err != nil {
		return nil, nil, err
	}
	workers, err := snapshot(s.workers)
	if err != nil {
		return nil, nil, err
	}

	if requester != nil && !requester.IsSuperAdmin() {
		scopedRooms := make([]domain.Room, 0, len(rooms))
		for _, room := range rooms {
			if requester.CanAccessSite(room.SiteID) {
				scopedRooms = append(scopedRooms, room)
			}
		}
		scopedWorkers := make([]domain.Worker, 0, len(workers))
		for _, worker := range workers {
			if requester.CanAccessSite(worker.SiteID) {
				scopedWorkers = append(scopedWorkers, worker)
			}
		}
		rooms, workers = scopedRooms, scopedWorkers
	}
	return rooms, workers, nil
}

// percentage returns round(part/total*100), 0 when total is 0.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(part) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(0)
	return int(rate.IntPart())
}

// roundedAverage returns round(sum/count), 0 when count is 0.
func roundedAverage(sum, count int) int {
	if count == 0 {
		return 0
	}
	avg := decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(count))).
		Round(0)
	return int(avg.IntPart())
}
