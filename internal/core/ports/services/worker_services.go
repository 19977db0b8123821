package services

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// WorkerReaderSvc defines read operations for worker data
type WorkerReaderSvc interface {
	// GetWorkerByID retrieves a specific worker by its ID.
	GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// ListWorkers retrieves the workers visible to the requesting user,
	// filtered by the given parameters. Superadmins see every worker,
	// admins only those of their own ferme.
	ListWorkers(ctx context.Context, requester *domain.User, params dto.ListWorkersParams) ([]domain.Worker, error)
}

// WorkerWriterSvc defines write operations for worker data
type WorkerWriterSvc interface {
	// CreateWorker registers a new worker. Age is derived from the birth
	// year, never taken from the request.
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error)

	// UpdateWorker updates an existing worker, rederiving Age whenever the
	// birth year changes. Marking a worker inactive records the exit date
	// and reason and frees the worker's room assignment.
	UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error)

	// DeleteWorker removes a worker. Deleting a missing worker is not an error.
	DeleteWorker(ctx context.Context, workerID string) error
}

// WorkerExportSvc defines export operations for worker data
type WorkerExportSvc interface {
	// ExportWorkers renders the visible workers as a spreadsheet and
	// returns the suggested filename with the file content.
	ExportWorkers(ctx context.Context, requester *domain.User, params dto.ListWorkersParams) (string, []byte, error)
}

// WorkerSvcFacade combines all worker-related service interfaces
type WorkerSvcFacade interface {
	WorkerReaderSvc
	WorkerWriterSvc
	WorkerExportSvc
}
