package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/core/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

type WorkerServiceTestSuite struct {
	suite.Suite
	mockWorkerRepo *MockWorkerRepository
	mockSiteRepo   *MockSiteRepository
	service        portssvc.WorkerSvcFacade
}

func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.service = services.NewWorkerService(suite.mockWorkerRepo, suite.mockSiteRepo)
}

// --- CreateWorker ---

func (suite *WorkerServiceTestSuite) TestCreateWorker_DerivesAgeFromBirthYear() {
	ctx := context.Background()
	birthYear := 1990
	wantAge := time.Now().Year() - birthYear

	suite.mockSiteRepo.On("FindSiteByID", ctx, "ferme-1").
		Return(&domain.Site{SiteID: "ferme-1"}, nil).Once()
	suite.mockWorkerRepo.On("SaveWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.Age == wantAge && w.BirthYear == birthYear && w.Status == domain.StatusActive
	})).Return(&domain.Worker{WorkerID: "w1", Age: wantAge}, nil).Once()

	worker, err := suite.service.CreateWorker(ctx, dto.CreateWorkerRequest{
		FullName:   "Ahmed Ben Ali",
		NationalID: "AB123456",
		Gender:     domain.Man,
		BirthYear:  birthYear,
		FermeID:    "ferme-1",
	})

	suite.Require().NoError(err)
	suite.Equal(wantAge, worker.Age)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestCreateWorker_UnknownFermeRejected() {
	ctx := context.Background()

	suite.mockSiteRepo.On("FindSiteByID", ctx, "gone").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateWorker(ctx, dto.CreateWorkerRequest{
		FullName:   "Ahmed Ben Ali",
		NationalID: "AB123456",
		Gender:     domain.Man,
		BirthYear:  1990,
		FermeID:    "gone",
	})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockWorkerRepo.AssertNotCalled(suite.T(), "SaveWorker", mock.Anything, mock.Anything)
}

func (suite *WorkerServiceTestSuite) TestCreateWorker_RoomAssignmentSetsDormitoryLabel() {
	ctx := context.Background()

	suite.mockSiteRepo.On("FindSiteByID", ctx, "ferme-1").
		Return(&domain.Site{SiteID: "ferme-1"}, nil).Once()
	suite.mockWorkerRepo.On("SaveWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.RoomNumber == "201" && w.DormitoryLabel == "Dortoir Femmes"
	})).Return(&domain.Worker{WorkerID: "w1"}, nil).Once()

	_, err := suite.service.CreateWorker(ctx, dto.CreateWorkerRequest{
		FullName:   "Fatima Zahra",
		NationalID: "FZ654321",
		Gender:     domain.Woman,
		BirthYear:  1995,
		FermeID:    "ferme-1",
		RoomNumber: "201",
	})

	suite.Require().NoError(err)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

// --- UpdateWorker ---

func (suite *WorkerServiceTestSuite) TestUpdateWorker_BirthYearRederivesAge() {
	ctx := context.Background()
	newBirthYear := 1985
	wantAge := time.Now().Year() - newBirthYear

	worker := &domain.Worker{WorkerID: "w1", BirthYear: 1990, Status: domain.StatusActive}
	suite.mockWorkerRepo.On("FindWorkerByID", ctx, "w1").Return(worker, nil)
	suite.mockWorkerRepo.On("UpdateWorkerFields", ctx, "w1", map[string]any{
		"birthYear": newBirthYear,
		"age":       wantAge,
	}).Return(nil).Once()

	_, err := suite.service.UpdateWorker(ctx, "w1", dto.UpdateWorkerRequest{BirthYear: &newBirthYear})

	suite.Require().NoError(err)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestUpdateWorker_GoingInactiveRecordsExitAndFreesRoom() {
	ctx := context.Background()

	worker := &domain.Worker{
		WorkerID: "w1", Status: domain.StatusActive,
		RoomNumber: "101", DormitoryLabel: "Dortoir Hommes",
	}
	inactive := domain.StatusInactive
	reason := domain.ExitEndOfContract

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, "w1").Return(worker, nil)
	suite.mockWorkerRepo.On("UpdateWorkerFields", ctx, "w1", mock.MatchedBy(func(fields map[string]any) bool {
		exitDate, hasExitDate := fields["exitDate"].(time.Time)
		return fields["status"] == inactive &&
			fields["exitReason"] == reason &&
			hasExitDate && !exitDate.IsZero() &&
			fields["roomNumber"] == "" &&
			fields["dormitoryLabel"] == ""
	})).Return(nil).Once()

	_, err := suite.service.UpdateWorker(ctx, "w1", dto.UpdateWorkerRequest{
		Status:     &inactive,
		ExitReason: &reason,
	})

	suite.Require().NoError(err)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestUpdateWorker_GoingInactiveDefaultsExitReason() {
	ctx := context.Background()

	worker := &domain.Worker{WorkerID: "w1", Status: domain.StatusActive}
	inactive := domain.StatusInactive

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, "w1").Return(worker, nil)
	suite.mockWorkerRepo.On("UpdateWorkerFields", ctx, "w1", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["exitReason"] == domain.ExitOther
	})).Return(nil).Once()

	_, err := suite.service.UpdateWorker(ctx, "w1", dto.UpdateWorkerRequest{Status: &inactive})

	suite.Require().NoError(err)
}

func (suite *WorkerServiceTestSuite) TestUpdateWorker_ReactivationClearsExitDetails() {
	ctx := context.Background()

	exitDate := time.Now().AddDate(0, -1, 0)
	worker := &domain.Worker{
		WorkerID: "w1", Status: domain.StatusInactive,
		ExitDate: &exitDate, ExitReason: domain.ExitIllness,
	}
	active := domain.StatusActive

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, "w1").Return(worker, nil)
	suite.mockWorkerRepo.On("UpdateWorkerFields", ctx, "w1", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == active && fields["exitDate"] == nil && fields["exitReason"] == ""
	})).Return(nil).Once()

	_, err := suite.service.UpdateWorker(ctx, "w1", dto.UpdateWorkerRequest{Status: &active})

	suite.Require().NoError(err)
}

// --- ListWorkers ---

func (suite *WorkerServiceTestSuite) TestListWorkers_AdminIsForcedToOwnFerme() {
	ctx := context.Background()

	admin := &domain.User{UserID: "u1", Role: domain.RoleAdmin, SiteID: "ferme-2"}
	suite.mockWorkerRepo.On("ListWorkersBySiteID", ctx, "ferme-2").
		Return([]domain.Worker{{WorkerID: "w1", SiteID: "ferme-2"}}, nil).Once()

	// The admin asks for another ferme; the filter is overridden.
	workers, err := suite.service.ListWorkers(ctx, admin, dto.ListWorkersParams{FermeID: "ferme-1"})

	suite.Require().NoError(err)
	suite.Len(workers, 1)
	suite.mockWorkerRepo.AssertNotCalled(suite.T(), "ListWorkersBySiteID", ctx, "ferme-1")
}

func (suite *WorkerServiceTestSuite) TestListWorkers_SearchAndStatusFilters() {
	ctx := context.Background()

	super := &domain.User{UserID: "u1", Role: domain.RoleSuperAdmin}
	workers := []domain.Worker{
		{WorkerID: "w1", FullName: "Ahmed Ben Ali", NationalID: "AB123", Status: domain.StatusActive},
		{WorkerID: "w2", FullName: "Mohamed Salah", NationalID: "MS456", Status: domain.StatusActive},
		{WorkerID: "w3", FullName: "Ahmed Karim", NationalID: "AK789", Status: domain.StatusInactive},
	}
	suite.mockWorkerRepo.On("ListWorkers", ctx).Return(workers, nil).Once()

	result, err := suite.service.ListWorkers(ctx, super, dto.ListWorkersParams{
		Status: "active",
		Search: "ahmed",
	})

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("w1", result[0].WorkerID)
}

func TestWorkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}
