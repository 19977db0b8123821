package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// roomService implements the RoomSvcFacade interface
type roomService struct {
	BaseService
	roomRepo   portsrepo.RoomRepositoryFacade
	workerRepo portsrepo.WorkerRepositoryFacade
	capacity   portssvc.FermeCapacitySvc
}

// NewRoomService creates a new room service with the provided dependencies
func NewRoomService(
	roomRepo portsrepo.RoomRepositoryFacade,
	workerRepo portsrepo.WorkerRepositoryFacade,
	capacity portssvc.FermeCapacitySvc,
) portssvc.RoomSvcFacade {
	return &roomService{
		roomRepo:   roomRepo,
		workerRepo: workerRepo,
		capacity:   capacity,
	}
}

// Ensure roomService implements the RoomSvcFacade interface
var _ portssvc.RoomSvcFacade = (*roomService)(nil)

// GetRoomByID retrieves a room by its ID
func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find room by ID", slog.String("room_id", roomID))
		}
		return nil, err
	}
	return room, nil
}

// ListRooms retrieves rooms, optionally filtered by ferme and gender
func (s *roomService) ListRooms(ctx context.Context, params dto.ListRoomsParams) ([]domain.Room, error) {
	var (
		rooms []domain.Room
		err   error
	)
	if params.FermeID != "" {
		rooms, err = s.roomRepo.ListRoomsBySiteID(ctx, params.FermeID)
	} else {
		rooms, err = s.roomRepo.ListRooms(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms", slog.String("ferme_id", params.FermeID))
		return nil, err
	}

	if params.Gender != "" {
		filtered := rooms[:0]
		for _, room := range rooms {
			if string(room.Gender) == params.Gender {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}

	if rooms == nil {
		return []domain.Room{}, nil
	}
	return rooms, nil
}

// CreateRoom persists a new room and refreshes the ferme's counters
func (s *roomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error) {
	room := domain.Room{
		RoomID:       uuid.NewString(),
		Number:       req.Number,
		SiteID:       req.FermeID,
		Gender:       req.Gender,
		RoomCapacity: req.Capacity,
		OccupantRefs: []string{},
	}

	saved, err := s.roomRepo.SaveRoom(ctx, room)
	if err != nil {
		s.LogError(ctx, err, "Failed to save room",
			slog.String("ferme_id", req.FermeID),
			slog.String("room_number", req.Number))
		return nil, err
	}

	s.recalculateBestEffort(ctx, saved.SiteID)
	return saved, nil
}

// UpdateRoom updates an existing room. Capacity may never drop below the
// room's present occupancy; such requests are rejected without any write.
func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest) (*domain.Room, *apperrors.RecalculationError, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	if req.Capacity != nil && *req.Capacity < room.CurrentOccupancy {
		return nil, nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("capacity %d is below current occupancy %d", *req.Capacity, room.CurrentOccupancy))
	}

	fields := map[string]any{}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	capacityChanged := false
	if req.Capacity != nil && *req.Capacity != room.RoomCapacity {
		fields["roomCapacity"] = *req.Capacity
		capacityChanged = true
	}
	if len(fields) == 0 {
		return room, nil, nil
	}

	if err := s.roomRepo.UpdateRoomFields(ctx, roomID, fields); err != nil {
		s.LogError(ctx, err, "Failed to update room", slog.String("room_id", roomID))
		return nil, nil, err
	}

	updated, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	// The recalculation runs only when the capacity value actually changed.
	// Its failure does not undo the room write; the caller gets the updated
	// room together with a warning about the stale ferme counters.
	if capacityChanged {
		if _, err := s.capacity.RecalculateCapacity(ctx, room.SiteID); err != nil {
			s.LogWarn(ctx, "Room updated, but ferme capacity recalculation failed",
				slog.String("room_id", roomID),
				slog.String("ferme_id", room.SiteID),
				slog.String("error", err.Error()))
			var recalcErr *apperrors.RecalculationError
			if !errors.As(err, &recalcErr) {
				recalcErr = &apperrors.RecalculationError{SiteID: room.SiteID, Err: err}
			}
			return updated, recalcErr, nil
		}
	}
	return updated, nil, nil
}

// DeleteRoom removes a room and refreshes the ferme's counters
func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Deleting an already-deleted room is a no-op.
			return nil
		}
		return err
	}

	if err := s.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		s.LogError(ctx, err, "Failed to delete room", slog.String("room_id", roomID))
		return err
	}

	s.recalculateBestEffort(ctx, room.SiteID)
	return nil
}

// AddOccupant houses a worker in the room
func (s *roomService) AddOccupant(ctx context.Context, roomID, workerID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	// Occupant lists are keyed by national id, not by document id.
	for _, ref := range room.OccupantRefs {
		if ref == worker.NationalID {
			return room, nil
		}
	}
	if room.IsFull() {
		return nil, apperrors.NewConflictError(fmt.Sprintf("room %s is full", room.Number))
	}
	if !room.Houses(worker.Gender) {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("room %s does not house %s workers", room.Number, worker.Gender))
	}

	refs := append(append([]string{}, room.OccupantRefs...), worker.NationalID)
	fields := map[string]any{
		"occupantRefs":     refs,
		"currentOccupancy": len(refs),
	}
	if err := s.roomRepo.UpdateRoomFields(ctx, roomID, fields); err != nil {
		s.LogError(ctx, err, "Failed to add occupant",
			slog.String("room_id", roomID),
			slog.String("worker_id", workerID))
		return nil, err
	}

	// Mirror the assignment on the worker side. The two fields are only
	// eventually consistent; the integrity checker reports any drift.
	workerFields := map[string]any{
		"roomNumber":     room.Number,
		"dormitoryLabel": room.DormitoryLabel(),
	}
	if err := s.workerRepo.UpdateWorkerFields(ctx, workerID, workerFields); err != nil {
		s.LogWarn(ctx, "Occupant added, but worker room assignment write failed",
			slog.String("room_id", roomID),
			slog.String("worker_id", workerID),
			slog.String("error", err.Error()))
	}

	return s.roomRepo.FindRoomByID(ctx, roomID)
}

// RemoveOccupant removes a worker from the room
func (s *roomService) RemoveOccupant(ctx context.Context, roomID, nationalID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(room.OccupantRefs))
	found := false
	for _, ref := range room.OccupantRefs {
		if ref == nationalID {
			found = true
			continue
		}
		refs = append(refs, ref)
	}
	if !found {
		return room, nil
	}

	fields := map[string]any{
		"occupantRefs":     refs,
		"currentOccupancy": len(refs),
	}
	if err := s.roomRepo.UpdateRoomFields(ctx, roomID, fields); err != nil {
		s.LogError(ctx, err, "Failed to remove occupant",
			slog.String("room_id", roomID),
			slog.String("national_id", nationalID))
		return nil, err
	}

	// The ref may be a ghost whose worker was already deleted; then there
	// is no assignment left to clear.
	worker, err := s.workerRepo.FindWorkerByNationalID(ctx, nationalID)
	if err == nil {
		workerFields := map[string]any{
			"roomNumber":     "",
			"dormitoryLabel": "",
		}
		if err := s.workerRepo.UpdateWorkerFields(ctx, worker.WorkerID, workerFields); err != nil {
			s.LogWarn(ctx, "Occupant removed, but worker room assignment write failed",
				slog.String("room_id", roomID),
				slog.String("national_id", nationalID),
				slog.String("error", err.Error()))
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Occupant removed, but worker lookup failed",
			slog.String("room_id", roomID),
			slog.String("national_id", nationalID),
			slog.String("error", err.Error()))
	}

	return s.roomRepo.FindRoomByID(ctx, roomID)
}

// recalculateBestEffort refreshes the ferme's counters after a room change.
// A failed refresh only logs a warning; the counters stay stale until the
// next room change or an explicit recalculation.
func (s *roomService) recalculateBestEffort(ctx context.Context, fermeID string) {
	if _, err := s.capacity.RecalculateCapacity(ctx, fermeID); err != nil {
		s.LogWarn(ctx, "Ferme capacity recalculation failed",
			slog.String("ferme_id", fermeID),
			slog.String("error", err.Error()))
	}
}
