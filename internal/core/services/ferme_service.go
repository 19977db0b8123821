package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// fermeService implements the FermeSvcFacade interface
type fermeService struct {
	BaseService
	siteRepo portsrepo.SiteRepositoryFacade
	roomRepo portsrepo.RoomRepositoryFacade
}

// NewFermeService creates a new ferme service with the provided dependencies
func NewFermeService(siteRepo portsrepo.SiteRepositoryFacade, roomRepo portsrepo.RoomRepositoryFacade) portssvc.FermeSvcFacade {
	return &fermeService{
		siteRepo: siteRepo,
		roomRepo: roomRepo,
	}
}

// Ensure fermeService implements the FermeSvcFacade interface
var _ portssvc.FermeSvcFacade = (*fermeService)(nil)

// GetFermeByID retrieves a ferme by its ID
func (s *fermeService) GetFermeByID(ctx context.Context, fermeID string) (*domain.Site, error) {
	site, err := s.siteRepo.FindSiteByID(ctx, fermeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ferme by ID",
				slog.String("ferme_id", fermeID))
		}
		return nil, err
	}
	return site, nil
}

// ListFermes retrieves the fermes visible to the requesting user
func (s *fermeService) ListFermes(ctx context.Context, requester *domain.User) ([]domain.Site, error) {
	sites, err := s.siteRepo.ListSites(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fermes")
		return nil, err
	}

	if requester != nil && !requester.IsSuperAdmin() {
		scoped := make([]domain.Site, 0, 1)
		for _, site := range sites {
			if requester.CanAccessSite(site.SiteID) {
				scoped = append(scoped, site)
			}
		}
		sites = scoped
	}

	if sites == nil {
		return []domain.Site{}, nil
	}
	return sites, nil
}

// CreateFerme creates a new ferme, optionally bulk-creating its dormitory rooms
func (s *fermeService) CreateFerme(ctx context.Context, req dto.CreateFermeRequest) (*domain.Site, []domain.Room, error) {
	plan := req.ToRoomPlan()

	site := domain.Site{
		SiteID: uuid.NewString(),
		Name:   req.Name,
	}
	if plan.AutoCreateRooms {
		// Planned totals are written up front instead of being recomputed
		// by a scan, which would race the in-flight room creations below.
		site.TotalRooms = plan.PlannedRooms()
		site.TotalCapacity = plan.PlannedCapacity()
	} else {
		// Without a room plan the caller's declared totals are kept as-is;
		// a later recalculation reconciles them against actual rooms.
		site.TotalRooms = req.TotalRooms
		site.TotalCapacity = req.TotalCapacity
	}

	saved, err := s.siteRepo.SaveSite(ctx, site)
	if err != nil {
		s.LogError(ctx, err, "Failed to save ferme", slog.String("ferme_name", req.Name))
		return nil, nil, err
	}

	if !plan.AutoCreateRooms {
		s.LogInfo(ctx, "Ferme created", slog.String("ferme_id", saved.SiteID))
		return saved, nil, nil
	}

	rooms := s.createPlannedRooms(ctx, saved.SiteID, plan)
	s.LogInfo(ctx, "Ferme created with rooms",
		slog.String("ferme_id", saved.SiteID),
		slog.Int("planned_rooms", plan.PlannedRooms()),
		slog.Int("created_rooms", len(rooms)))
	return saved, rooms, nil
}

// createPlannedRooms issues all room creations concurrently. Failures are
// not rolled back; the next capacity recalculation reconciles the ferme's
// counters with whatever subset actually persisted.
func (s *fermeService) createPlannedRooms(ctx context.Context, fermeID string, plan domain.RoomPlan) []domain.Room {
	type roomSpec struct {
		number   int
		gender   domain.RoomGender
		capacity int
	}

	specs := make([]roomSpec, 0, plan.PlannedRooms())
	for i := 0; i < plan.MenCount; i++ {
		specs = append(specs, roomSpec{number: plan.MenStart + i, gender: domain.RoomMen, capacity: plan.MenCapacity})
	}
	for i := 0; i < plan.WomenCount; i++ {
		specs = append(specs, roomSpec{number: plan.WomenStart + i, gender: domain.RoomWomen, capacity: plan.WomenCapacity})
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created []domain.Room
	)
	for _, spec := range specs {
		wg.Add(1)
		go func(spec roomSpec) {
			defer wg.Done()
			room := domain.Room{
				RoomID:       uuid.NewString(),
				Number:       fmt.Sprintf("%d", spec.number),
				SiteID:       fermeID,
				Gender:       spec.gender,
				RoomCapacity: spec.capacity,
				OccupantRefs: []string{},
			}
			saved, err := s.roomRepo.SaveRoom(ctx, room)
			if err != nil {
				s.LogError(ctx, err, "Failed to create planned room",
					slog.String("ferme_id", fermeID),
					slog.String("room_number", room.Number))
				return
			}
			mu.Lock()
			created = append(created, *saved)
			mu.Unlock()
		}(spec)
	}
	wg.Wait()
	return created
}

// UpdateFerme updates an existing ferme
func (s *fermeService) UpdateFerme(ctx context.Context, fermeID string, req dto.UpdateFermeRequest) (*domain.Site, error) {
	if _, err := s.siteRepo.FindSiteByID(ctx, fermeID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.AdminIDs != nil {
		fields["adminIds"] = *req.AdminIDs
	}
	if len(fields) == 0 {
		return s.siteRepo.FindSiteByID(ctx, fermeID)
	}

	if err := s.siteRepo.UpdateSiteFields(ctx, fermeID, fields); err != nil {
		s.LogError(ctx, err, "Failed to update ferme", slog.String("ferme_id", fermeID))
		return nil, err
	}
	return s.siteRepo.FindSiteByID(ctx, fermeID)
}

// DeleteFermeCascade removes a ferme and all of its rooms. Rooms are deleted
// sequentially to keep a simple progress trail; on the first failure the
// cascade stops and the ferme is kept, so no room data is orphaned silently.
// Retrying the whole cascade is safe: already-deleted rooms delete as no-ops.
func (s *fermeService) DeleteFermeCascade(ctx context.Context, fermeID string) error {
	if _, err := s.siteRepo.FindSiteByID(ctx, fermeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Deleting an already-deleted ferme is a no-op.
			return nil
		}
		return err
	}

	rooms, err := s.roomRepo.ListRoomsBySiteID(ctx, fermeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms for cascade delete",
			slog.String("ferme_id", fermeID))
		return err
	}

	for i, room := range rooms {
		if err := s.roomRepo.DeleteRoom(ctx, room.RoomID); err != nil {
			s.LogError(ctx, err, "Cascade delete stopped on room failure",
				slog.String("ferme_id", fermeID),
				slog.String("room_id", room.RoomID),
				slog.Int("deleted", i),
				slog.Int("remaining", len(rooms)-i))
			return &apperrors.PartialCascadeError{
				SiteID:    fermeID,
				Deleted:   i,
				Remaining: len(rooms) - i,
				Err:       err,
			}
		}
	}

	if err := s.siteRepo.DeleteSite(ctx, fermeID); err != nil {
		s.LogError(ctx, err, "Failed to delete ferme after rooms",
			slog.String("ferme_id", fermeID))
		return err
	}

	s.LogInfo(ctx, "Ferme deleted",
		slog.String("ferme_id", fermeID),
		slog.Int("rooms_deleted", len(rooms)))
	return nil
}

// RecalculateCapacity rescans the ferme's rooms and rewrites its counters
func (s *fermeService) RecalculateCapacity(ctx context.Context, fermeID string) (*domain.Site, error) {
	rooms, err := s.roomRepo.ListRoomsBySiteID(ctx, fermeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to scan rooms for recalculation",
			slog.String("ferme_id", fermeID))
		return nil, &apperrors.RecalculationError{SiteID: fermeID, Err: err}
	}

	totalCapacity := 0
	for _, room := range rooms {
		totalCapacity += room.RoomCapacity
	}

	fields := map[string]any{
		"totalRooms":    len(rooms),
		"totalCapacity": totalCapacity,
	}
	if err := s.siteRepo.UpdateSiteFields(ctx, fermeID, fields); err != nil {
		s.LogError(ctx, err, "Failed to write recalculated capacity",
			slog.String("ferme_id", fermeID))
		return nil, &apperrors.RecalculationError{SiteID: fermeID, Err: err}
	}

	s.LogDebug(ctx, "Ferme capacity recalculated",
		slog.String("ferme_id", fermeID),
		slog.Int("total_rooms", len(rooms)),
		slog.Int("total_capacity", totalCapacity))
	return s.siteRepo.FindSiteByID(ctx, fermeID)
}
