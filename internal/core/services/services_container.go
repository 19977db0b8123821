package services

import (
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/platform/config"
)

// CollectionAccessors bundles the live collection snapshots the reporting
// services consume. They are created and started by the composition root so
// their lifecycle stays with the process, not with any single service.
type CollectionAccessors struct {
	Sites   SnapshotSource[domain.Site]
	Rooms   SnapshotSource[domain.Room]
	Workers SnapshotSource[domain.Worker]
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, accessors CollectionAccessors) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Ferme service first since the room service depends on its capacity
	// recalculation.
	container.Ferme = NewFermeService(repos.SiteRepo, repos.RoomRepo)
	container.Room = NewRoomService(repos.RoomRepo, repos.WorkerRepo, container.Ferme)
	container.Worker = NewWorkerService(repos.WorkerRepo, repos.SiteRepo)

	container.Statistics = NewStatisticsService(accessors.Sites, accessors.Rooms, accessors.Workers)
	container.Integrity = NewIntegrityService(repos.RoomRepo, repos.WorkerRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.FermeSvcFacade  = (*fermeService)(nil)
	_ portssvc.RoomSvcFacade   = (*roomService)(nil)
	_ portssvc.WorkerSvcFacade = (*workerService)(nil)
	_ portssvc.UserSvcFacade   = (*userService)(nil)
)
