package dto

import (
	"time"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// --- Worker DTOs ---

// CreateWorkerRequest defines data for registering a new worker.
type CreateWorkerRequest struct {
	FullName   string              `json:"fullName" binding:"required"`
	NationalID string              `json:"nationalID" binding:"required"`
	Phone      string              `json:"phone"`
	Gender     domain.WorkerGender `json:"gender" binding:"required,oneof=man woman"`
	BirthYear  int                 `json:"birthYear" binding:"required,min=1900"`
	FermeID    string              `json:"fermeID" binding:"required"`
	RoomNumber string              `json:"roomNumber"`
	EntryDate  time.Time           `json:"entryDate"`
}

// UpdateWorkerRequest defines the data allowed for updating a worker.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateWorkerRequest struct {
	FullName   *string              `json:"fullName"`
	NationalID *string              `json:"nationalID"`
	Phone      *string              `json:"phone"`
	Gender     *domain.WorkerGender `json:"gender" binding:"omitempty,oneof=man woman"`
	BirthYear  *int                 `json:"birthYear" binding:"omitempty,min=1900"`
	FermeID    *string              `json:"fermeID"`
	RoomNumber *string              `json:"roomNumber"`
	EntryDate  *time.Time           `json:"entryDate"`
	Status     *domain.WorkerStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	ExitDate   *time.Time           `json:"exitDate"`
	ExitReason *domain.ExitReason   `json:"exitReason" binding:"omitempty,oneof=fin_contrat demission licenciement mutation maladie retraite autre"`
}

// ListWorkersParams defines query parameters for listing workers.
type ListWorkersParams struct {
	FermeID string `form:"fermeID"`
	Status  string `form:"status" binding:"omitempty,oneof=active inactive"`
	Gender  string `form:"gender" binding:"omitempty,oneof=man woman"`
	Search  string `form:"search"`
}

// WorkerResponse defines data returned for a worker.
type WorkerResponse struct {
	WorkerID       string              `json:"workerID"`
	FullName       string              `json:"fullName"`
	NationalID     string              `json:"nationalID"`
	Phone          string              `json:"phone,omitempty"`
	Gender         domain.WorkerGender `json:"gender"`
	Age            int                 `json:"age"`
	BirthYear      int                 `json:"birthYear"`
	FermeID        string              `json:"fermeID"`
	RoomNumber     string              `json:"roomNumber,omitempty"`
	DormitoryLabel string              `json:"dormitoryLabel,omitempty"`
	Status         domain.WorkerStatus `json:"status"`
	EntryDate      time.Time           `json:"entryDate"`
	ExitDate       *time.Time          `json:"exitDate,omitempty"`
	ExitReason     domain.ExitReason   `json:"exitReason,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ToWorkerResponse converts domain.Worker to DTO.
func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:       w.WorkerID,
		FullName:       w.FullName,
		NationalID:     w.NationalID,
		Phone:          w.Phone,
		Gender:         w.Gender,
		Age:            w.Age,
		BirthYear:      w.BirthYear,
		FermeID:        w.SiteID,
		RoomNumber:     w.RoomNumber,
		DormitoryLabel: w.DormitoryLabel,
		Status:         w.Status,
		EntryDate:      w.EntryDate,
		ExitDate:       w.ExitDate,
		ExitReason:     w.ExitReason,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

// ListWorkersResponse wraps a list of workers.
type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

// ToListWorkersResponse converts a slice of domain.Worker to DTO.
func ToListWorkersResponse(workers []domain.Worker) ListWorkersResponse {
	list := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		list[i] = ToWorkerResponse(&w)
	}
	return ListWorkersResponse{Workers: list}
}
