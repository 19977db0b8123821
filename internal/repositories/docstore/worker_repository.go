package docstore

import (
	"context"
	"fmt"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	store "github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

type DocWorkerRepository struct {
	BaseRepository
}

// newDocWorkerRepository creates a new repository for worker data.
func newDocWorkerRepository(client store.Client) portsrepo.WorkerRepositoryFacade {
	return &DocWorkerRepository{
		BaseRepository: BaseRepository{Client: client},
	}
}

// Ensure DocWorkerRepository implements portsrepo.WorkerRepositoryFacade
var _ portsrepo.WorkerRepositoryFacade = (*DocWorkerRepository)(nil)

// DecodeWorker converts a raw worker document into a domain worker.
func DecodeWorker(doc store.Document) (domain.Worker, error) {
	var worker domain.Worker
	if err := decodeInto(doc, &worker); err != nil {
		return domain.Worker{}, err
	}
	worker.WorkerID = doc.ID
	worker.CreatedAt = doc.CreatedAt
	worker.UpdatedAt = doc.UpdatedAt
	return worker, nil
}

func (r *DocWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	doc, err := r.Client.Get(ctx, store.CollectionWorkers, workerID)
	if err != nil {
		return nil, err
	}
	worker, err := DecodeWorker(*doc)
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *DocWorkerRepository) FindWorkerByNationalID(ctx context.Context, nationalID string) (*domain.Worker, error) {
	workers, err := r.listWorkers(ctx, store.Filter{"nationalId": nationalID})
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("worker with national id %s not found", nationalID))
	}
	return &workers[0], nil
}

func (r *DocWorkerRepository) listWorkers(ctx context.Context, filter store.Filter) ([]domain.Worker, error) {
	docs, err := r.Client.List(ctx, store.CollectionWorkers, filter)
	if err != nil {
		return nil, err
	}
	workers := make([]domain.Worker, 0, len(docs))
	for _, doc := range docs {
		worker, err := DecodeWorker(doc)
		if err != nil {
			return nil, err
		}
		workers = append(workers, worker)
	}
	return workers, nil
}

func (r *DocWorkerRepository) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return r.listWorkers(ctx, nil)
}

func (r *DocWorkerRepository) ListWorkersBySiteID(ctx context.Context, siteID string) ([]domain.Worker, error) {
	return r.listWorkers(ctx, store.Filter{"siteId": siteID})
}

func (r *DocWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) (*domain.Worker, error) {
	doc, err := r.Client.Create(ctx, store.CollectionWorkers, worker.WorkerID, worker)
	if err != nil {
		return nil, err
	}
	saved, err := DecodeWorker(*doc)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *DocWorkerRepository) UpdateWorkerFields(ctx context.Context, workerID string, fields map[string]any) error {
	return r.Client.Update(ctx, store.CollectionWorkers, workerID, fields)
}

func (r *DocWorkerRepository) DeleteWorker(ctx context.Context, workerID string) error {
	return r.Client.Delete(ctx, store.CollectionWorkers, workerID)
}
