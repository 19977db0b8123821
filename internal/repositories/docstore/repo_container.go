package docstore

import (
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	store "github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

func NewRepositoryProvider(client store.Client) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SiteRepo:   newDocSiteRepository(client),
		RoomRepo:   newDocRoomRepository(client),
		WorkerRepo: newDocWorkerRepository(client),
		UserRepo:   newDocUserRepository(client),
	}
}
