package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
)

// integrityService implements the IntegritySvcFacade interface. Room occupant
// lists and worker room assignments are two independently written views of
// the same fact; this service cross-checks them and reports drift without
// repairing anything.
type integrityService struct {
	BaseService
	roomRepo   portsrepo.RoomReader
	workerRepo portsrepo.WorkerReader
}

// NewIntegrityService creates a new integrity service with the provided dependencies
func NewIntegrityService(roomRepo portsrepo.RoomReader, workerRepo portsrepo.WorkerReader) portssvc.IntegritySvcFacade {
	return &integrityService{
		roomRepo:   roomRepo,
		workerRepo: workerRepo,
	}
}

// Ensure integrityService implements the IntegritySvcFacade interface
var _ portssvc.IntegritySvcFacade = (*integrityService)(nil)

// CheckHousing cross-checks room occupancy counters against worker assignments
func (s *integrityService) CheckHousing(ctx context.Context) (*domain.IntegrityReport, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms for integrity check")
		return nil, err
	}
	workers, err := s.workerRepo.ListWorkers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workers for integrity check")
		return nil, err
	}

	workersByNationalID := make(map[string]domain.Worker, len(workers))
	for _, worker := range workers {
		workersByNationalID[worker.NationalID] = worker
	}
	// Keyed by (siteID, room number) because numbers repeat across fermes.
	housedWorkers := make(map[string]map[string]bool, len(rooms))
	roomsByNumber := make(map[string]bool, len(rooms))

	report := &domain.IntegrityReport{
		CheckedRooms:   len(rooms),
		CheckedWorkers: len(workers),
		Issues:         []domain.IntegrityIssue{},
	}

	for _, room := range rooms {
		key := room.SiteID + "/" + room.Number
		roomsByNumber[key] = true
		housed := make(map[string]bool, len(room.OccupantRefs))
		for _, ref := range room.OccupantRefs {
			housed[ref] = true
			if _, ok := workersByNationalID[ref]; !ok {
				report.Issues = append(report.Issues, domain.IntegrityIssue{
					Kind:       domain.IssueUnknownOccupant,
					SiteID:     room.SiteID,
					RoomNumber: room.Number,
					WorkerRef:  ref,
					Detail:     fmt.Sprintf("room %s lists occupant %s but no worker carries that national id", room.Number, ref),
				})
			}
		}
		housedWorkers[key] = housed

		if room.CurrentOccupancy != len(room.OccupantRefs) {
			report.Issues = append(report.Issues, domain.IntegrityIssue{
				Kind:       domain.IssueOccupancyMismatch,
				SiteID:     room.SiteID,
				RoomNumber: room.Number,
				Detail: fmt.Sprintf("room %s records occupancy %d but lists %d occupants",
					room.Number, room.CurrentOccupancy, len(room.OccupantRefs)),
			})
		}
	}

	for _, worker := range workers {
		if !worker.IsActive() || worker.RoomNumber == "" {
			continue
		}
		key := worker.SiteID + "/" + worker.RoomNumber
		if !roomsByNumber[key] {
			report.Issues = append(report.Issues, domain.IntegrityIssue{
				Kind:       domain.IssueRoomMismatch,
				SiteID:     worker.SiteID,
				RoomNumber: worker.RoomNumber,
				WorkerRef:  worker.NationalID,
				Detail:     fmt.Sprintf("worker %s is assigned to room %s which does not exist", worker.FullName, worker.RoomNumber),
			})
			continue
		}
		if !housedWorkers[key][worker.NationalID] {
			report.Issues = append(report.Issues, domain.IntegrityIssue{
				Kind:       domain.IssueRoomMismatch,
				SiteID:     worker.SiteID,
				RoomNumber: worker.RoomNumber,
				WorkerRef:  worker.NationalID,
				Detail:     fmt.Sprintf("worker %s claims room %s but the room does not list them", worker.FullName, worker.RoomNumber),
			})
		}
	}

	s.LogInfo(ctx, "Housing integrity check completed",
		slog.Int("rooms", report.CheckedRooms),
		slog.Int("workers", report.CheckedWorkers),
		slog.Int("issues", len(report.Issues)))
	return report, nil
}
