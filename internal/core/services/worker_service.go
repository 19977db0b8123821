package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// workerService implements the WorkerSvcFacade interface
type workerService struct {
	BaseService
	workerRepo portsrepo.WorkerRepositoryFacade
	siteRepo   portsrepo.SiteReader
}

// NewWorkerService creates a new worker service with the provided dependencies
func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade, siteRepo portsrepo.SiteReader) portssvc.WorkerSvcFacade {
	return &workerService{
		workerRepo: workerRepo,
		siteRepo:   siteRepo,
	}
}

// Ensure workerService implements the WorkerSvcFacade interface
var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

// GetWorkerByID retrieves a worker by its ID
func (s *workerService) GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find worker by ID", slog.String("worker_id", workerID))
		}
		return nil, err
	}
	return worker, nil
}

// ListWorkers retrieves the workers visible to the requesting user
func (s *workerService) ListWorkers(ctx context.Context, requester *domain.User, params dto.ListWorkersParams) ([]domain.Worker, error) {
	// Admins only ever see their own ferme, whatever the filter says.
	if requester != nil && !requester.IsSuperAdmin() {
		params.FermeID = requester.SiteID
	}

	var (
		workers []domain.Worker
		err     error
	)
	if params.FermeID != "" {
		workers, err = s.workerRepo.ListWorkersBySiteID(ctx, params.FermeID)
	} else {
		workers, err = s.workerRepo.ListWorkers(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list workers", slog.String("ferme_id", params.FermeID))
		return nil, err
	}

	filtered := make([]domain.Worker, 0, len(workers))
	search := strings.ToLower(strings.TrimSpace(params.Search))
	for _, worker := range workers {
		if params.Status != "" && string(worker.Status) != params.Status {
			continue
		}
		if params.Gender != "" && string(worker.Gender) != params.Gender {
			continue
		}
		if search != "" && !matchesSearch(worker, search) {
			continue
		}
		filtered = append(filtered, worker)
	}
	return filtered, nil
}

func matchesSearch(worker domain.Worker, search string) bool {
	return strings.Contains(strings.ToLower(worker.FullName), search) ||
		strings.Contains(strings.ToLower(worker.NationalID), search) ||
		strings.Contains(worker.Phone, search)
}

// CreateWorker registers a new worker. Age is always derived from the birth
// year; any caller-supplied age is ignored.
func (s *workerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	if _, err := s.siteRepo.FindSiteByID(ctx, req.FermeID); err != nil {
		return nil, err
	}

	entryDate := req.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	worker := domain.Worker{
		WorkerID:   uuid.NewString(),
		FullName:   req.FullName,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Gender:     req.Gender,
		Age:        domain.CalculateAge(req.BirthYear),
		BirthYear:  req.BirthYear,
		SiteID:     req.FermeID,
		RoomNumber: req.RoomNumber,
		Status:     domain.StatusActive,
		EntryDate:  entryDate,
	}
	if req.RoomNumber != "" {
		worker.DormitoryLabel = dormitoryLabelFor(req.Gender)
	}

	saved, err := s.workerRepo.SaveWorker(ctx, worker)
	if err != nil {
		s.LogError(ctx, err, "Failed to save worker",
			slog.String("ferme_id", req.FermeID),
			slog.String("national_id", req.NationalID))
		return nil, err
	}

	s.LogInfo(ctx, "Worker registered",
		slog.String("worker_id", saved.WorkerID),
		slog.String("ferme_id", saved.SiteID))
	return saved, nil
}

// UpdateWorker updates an existing worker, rederiving Age when the birth
// year changes and recording exit details when the worker goes inactive.
func (s *workerService) UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.FullName != nil {
		fields["fullName"] = *req.FullName
	}
	if req.NationalID != nil {
		fields["nationalId"] = *req.NationalID
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.BirthYear != nil {
		fields["birthYear"] = *req.BirthYear
		fields["age"] = domain.CalculateAge(*req.BirthYear)
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
		if worker.RoomNumber != "" {
			fields["dormitoryLabel"] = dormitoryLabelFor(*req.Gender)
		}
	}
	if req.FermeID != nil && *req.FermeID != worker.SiteID {
		if _, err := s.siteRepo.FindSiteByID(ctx, *req.FermeID); err != nil {
			return nil, err
		}
		fields["siteId"] = *req.FermeID
	}
	if req.RoomNumber != nil {
		fields["roomNumber"] = *req.RoomNumber
		gender := worker.Gender
		if req.Gender != nil {
			gender = *req.Gender
		}
		if *req.RoomNumber == "" {
			fields["dormitoryLabel"] = ""
		} else {
			fields["dormitoryLabel"] = dormitoryLabelFor(gender)
		}
	}
	if req.EntryDate != nil {
		fields["entryDate"] = *req.EntryDate
	}

	if req.Status != nil && *req.Status != worker.Status {
		fields["status"] = *req.Status
		switch *req.Status {
		case domain.StatusInactive:
			exitDate := time.Now()
			if req.ExitDate != nil {
				exitDate = *req.ExitDate
			}
			fields["exitDate"] = exitDate
			if req.ExitReason != nil {
				fields["exitReason"] = *req.ExitReason
			} else {
				fields["exitReason"] = domain.ExitOther
			}
			// An inactive worker no longer holds a place in a room.
			fields["roomNumber"] = ""
			fields["dormitoryLabel"] = ""
		case domain.StatusActive:
			fields["exitDate"] = nil
			fields["exitReason"] = ""
		}
	} else {
		if req.ExitDate != nil {
			fields["exitDate"] = *req.ExitDate
		}
		if req.ExitReason != nil {
			fields["exitReason"] = *req.ExitReason
		}
	}

	if len(fields) == 0 {
		return worker, nil
	}

	if err := s.workerRepo.UpdateWorkerFields(ctx, workerID, fields); err != nil {
		s.LogError(ctx, err, "Failed to update worker", slog.String("worker_id", workerID))
		return nil, err
	}
	return s.workerRepo.FindWorkerByID(ctx, workerID)
}

// DeleteWorker removes a worker
func (s *workerService) DeleteWorker(ctx context.Context, workerID string) error {
	if err := s.workerRepo.DeleteWorker(ctx, workerID); err != nil {
		s.LogError(ctx, err, "Failed to delete worker", slog.String("worker_id", workerID))
		return err
	}
	return nil
}

func dormitoryLabelFor(gender domain.WorkerGender) string {
	if gender == domain.Woman {
		return "Dortoir Femmes"
	}
	return "Dortoir Hommes"
}
