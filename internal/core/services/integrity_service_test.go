package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/core/services"
)

type IntegrityServiceTestSuite struct {
	suite.Suite
	mockRoomRepo   *MockRoomRepository
	mockWorkerRepo *MockWorkerRepository
	service        portssvc.IntegritySvcFacade
}

func (suite *IntegrityServiceTestSuite) SetupTest() {
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.service = services.NewIntegrityService(suite.mockRoomRepo, suite.mockWorkerRepo)
}

func (suite *IntegrityServiceTestSuite) TestCheckHousing_CleanState() {
	ctx := context.Background()

	rooms := []domain.Room{
		{SiteID: "f1", Number: "101", CurrentOccupancy: 1, OccupantRefs: []string{"AB100200"}},
	}
	workers := []domain.Worker{
		{WorkerID: "w1", NationalID: "AB100200", SiteID: "f1", RoomNumber: "101", Status: domain.StatusActive},
	}
	suite.mockRoomRepo.On("ListRooms", ctx).Return(rooms, nil).Once()
	suite.mockWorkerRepo.On("ListWorkers", ctx).Return(workers, nil).Once()

	report, err := suite.service.CheckHousing(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, report.CheckedRooms)
	suite.Equal(1, report.CheckedWorkers)
	suite.Empty(report.Issues)
}

func (suite *IntegrityServiceTestSuite) TestCheckHousing_ReportsAllDriftKinds() {
	ctx := context.Background()

	rooms := []domain.Room{
		// Counter says 2 but only one occupant is listed, and that occupant
		// does not exist.
		{SiteID: "f1", Number: "101", CurrentOccupancy: 2, OccupantRefs: []string{"ghost"}},
		{SiteID: "f1", Number: "102", CurrentOccupancy: 0, OccupantRefs: []string{}},
	}
	workers := []domain.Worker{
		// Claims a room that does not list them.
		{WorkerID: "w1", NationalID: "AB1", SiteID: "f1", RoomNumber: "102", Status: domain.StatusActive},
		// Claims a room that does not exist.
		{WorkerID: "w2", NationalID: "AB2", SiteID: "f1", RoomNumber: "999", Status: domain.StatusActive},
		// Inactive workers are skipped even with a stale room number.
		{WorkerID: "w3", NationalID: "AB3", SiteID: "f1", RoomNumber: "999", Status: domain.StatusInactive},
	}
	suite.mockRoomRepo.On("ListRooms", ctx).Return(rooms, nil).Once()
	suite.mockWorkerRepo.On("ListWorkers", ctx).Return(workers, nil).Once()

	report, err := suite.service.CheckHousing(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Issues, 4)

	kinds := map[domain.IntegrityIssueKind]int{}
	for _, issue := range report.Issues {
		kinds[issue.Kind]++
	}
	suite.Equal(1, kinds[domain.IssueUnknownOccupant])
	suite.Equal(1, kinds[domain.IssueOccupancyMismatch])
	suite.Equal(2, kinds[domain.IssueRoomMismatch])
}

func (suite *IntegrityServiceTestSuite) TestCheckHousing_SameRoomNumberAcrossFermes() {
	ctx := context.Background()

	// Room numbers repeat across fermes; the checker must key by site too.
	rooms := []domain.Room{
		{SiteID: "f1", Number: "101", CurrentOccupancy: 1, OccupantRefs: []string{"AB1"}},
		{SiteID: "f2", Number: "101", CurrentOccupancy: 0, OccupantRefs: []string{}},
	}
	workers := []domain.Worker{
		{WorkerID: "w1", NationalID: "AB1", SiteID: "f1", RoomNumber: "101", Status: domain.StatusActive},
		{WorkerID: "w2", NationalID: "AB2", SiteID: "f2", RoomNumber: "101", Status: domain.StatusActive},
	}
	suite.mockRoomRepo.On("ListRooms", ctx).Return(rooms, nil).Once()
	suite.mockWorkerRepo.On("ListWorkers", ctx).Return(workers, nil).Once()

	report, err := suite.service.CheckHousing(ctx)

	suite.Require().NoError(err)
	// w2's room exists on f2 but does not list them.
	suite.Require().Len(report.Issues, 1)
	suite.Equal(domain.IssueRoomMismatch, report.Issues[0].Kind)
	suite.Equal("AB2", report.Issues[0].WorkerRef)
}

func TestIntegrityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrityServiceTestSuite))
}
