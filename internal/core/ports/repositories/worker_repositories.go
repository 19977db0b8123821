package repositories

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// WorkerReader defines read operations for worker data
type WorkerReader interface {
	// FindWorkerByID retrieves a specific worker by its ID.
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// FindWorkerByNationalID retrieves a worker by national id, the key
	// rooms use in their occupant lists.
	FindWorkerByNationalID(ctx context.Context, nationalID string) (*domain.Worker, error)

	// ListWorkers retrieves all workers.
	ListWorkers(ctx context.Context) ([]domain.Worker, error)

	// ListWorkersBySiteID retrieves all workers assigned to a site.
	ListWorkersBySiteID(ctx context.Context, siteID string) ([]domain.Worker, error)
}

// WorkerWriter defines write operations for worker data
type WorkerWriter interface {
	// SaveWorker persists a new worker.
	SaveWorker(ctx context.Context, worker domain.Worker) (*domain.Worker, error)

	// UpdateWorkerFields merges the given fields into an existing worker.
	UpdateWorkerFields(ctx context.Context, workerID string, fields map[string]any) error

	// DeleteWorker removes a worker. Deleting a missing worker is not an error.
	DeleteWorker(ctx context.Context, workerID string) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}
