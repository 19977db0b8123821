package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	store "github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

// --- Mock SiteRepository ---

type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	args := m.Called(ctx, siteID)
	var site *domain.Site
	if args.Get(0) != nil {
		site = args.Get(0).(*domain.Site)
	}
	return site, args.Error(1)
}

func (m *MockSiteRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	args := m.Called(ctx)
	var sites []domain.Site
	if args.Get(0) != nil {
		sites = args.Get(0).([]domain.Site)
	}
	return sites, args.Error(1)
}

func (m *MockSiteRepository) SaveSite(ctx context.Context, site domain.Site) (*domain.Site, error) {
	args := m.Called(ctx, site)
	var saved *domain.Site
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Site)
	}
	return saved, args.Error(1)
}

func (m *MockSiteRepository) UpdateSiteFields(ctx context.Context, siteID string, fields map[string]any) error {
	args := m.Called(ctx, siteID, fields)
	return args.Error(0)
}

func (m *MockSiteRepository) DeleteSite(ctx context.Context, siteID string) error {
	args := m.Called(ctx, siteID)
	return args.Error(0)
}

// --- Mock RoomRepository ---

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	var room *domain.Room
	if args.Get(0) != nil {
		room = args.Get(0).(*domain.Room)
	}
	return room, args.Error(1)
}

func (m *MockRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	var rooms []domain.Room
	if args.Get(0) != nil {
		rooms = args.Get(0).([]domain.Room)
	}
	return rooms, args.Error(1)
}

func (m *MockRoomRepository) ListRoomsBySiteID(ctx context.Context, siteID string) ([]domain.Room, error) {
	args := m.Called(ctx, siteID)
	var rooms []domain.Room
	if args.Get(0) != nil {
		rooms = args.Get(0).([]domain.Room)
	}
	return rooms, args.Error(1)
}

func (m *MockRoomRepository) SaveRoom(ctx context.Context, room domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	var saved *domain.Room
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Room)
	}
	return saved, args.Error(1)
}

func (m *MockRoomRepository) UpdateRoomFields(ctx context.Context, roomID string, fields map[string]any) error {
	args := m.Called(ctx, roomID, fields)
	return args.Error(0)
}

func (m *MockRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

// --- Mock WorkerRepository ---

type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	var worker *domain.Worker
	if args.Get(0) != nil {
		worker = args.Get(0).(*domain.Worker)
	}
	return worker, args.Error(1)
}

func (m *MockWorkerRepository) FindWorkerByNationalID(ctx context.Context, nationalID string) (*domain.Worker, error) {
	args := m.Called(ctx, nationalID)
	var worker *domain.Worker
	if args.Get(0) != nil {
		worker = args.Get(0).(*domain.Worker)
	}
	return worker, args.Error(1)
}

func (m *MockWorkerRepository) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	var workers []domain.Worker
	if args.Get(0) != nil {
		workers = args.Get(0).([]domain.Worker)
	}
	return workers, args.Error(1)
}

func (m *MockWorkerRepository) ListWorkersBySiteID(ctx context.Context, siteID string) ([]domain.Worker, error) {
	args := m.Called(ctx, siteID)
	var workers []domain.Worker
	if args.Get(0) != nil {
		workers = args.Get(0).([]domain.Worker)
	}
	return workers, args.Error(1)
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) (*domain.Worker, error) {
	args := m.Called(ctx, worker)
	var saved *domain.Worker
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Worker)
	}
	return saved, args.Error(1)
}

func (m *MockWorkerRepository) UpdateWorkerFields(ctx context.Context, workerID string, fields map[string]any) error {
	args := m.Called(ctx, workerID, fields)
	return args.Error(0)
}

func (m *MockWorkerRepository) DeleteWorker(ctx context.Context, workerID string) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	var saved *domain.User
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.User)
	}
	return saved, args.Error(1)
}

func (m *MockUserRepository) UpdateUserFields(ctx context.Context, userID string, fields map[string]any) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock FermeCapacitySvc ---

type MockCapacityService struct {
	mock.Mock
}

func (m *MockCapacityService) RecalculateCapacity(ctx context.Context, fermeID string) (*domain.Site, error) {
	args := m.Called(ctx, fermeID)
	var site *domain.Site
	if args.Get(0) != nil {
		site = args.Get(0).(*domain.Site)
	}
	return site, args.Error(1)
}

// --- Fake snapshot source for the reporting services ---

type fakeSnapshot[T any] struct {
	items  []T
	status store.Status
	err    error
}

func readySnapshot[T any](items []T) *fakeSnapshot[T] {
	return &fakeSnapshot[T]{items: items, status: store.StatusReady}
}

func (f *fakeSnapshot[T]) Snapshot() ([]T, store.Status, error) {
	return f.items, f.status, f.err
}

// entryDaysAgo builds a time n days in the past, handy for arrival windows.
func entryDaysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}
