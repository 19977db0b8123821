package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
	"github.com/atlasferme/worker_housing_app/internal/handlers"
	"github.com/atlasferme/worker_housing_app/internal/middleware"
	"github.com/atlasferme/worker_housing_app/internal/utils"
)

// --- Mock RoomService ---

type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) ListRooms(ctx context.Context, params dto.ListRoomsParams) ([]domain.Room, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest) (*domain.Room, *apperrors.RecalculationError, error) {
	args := m.Called(ctx, roomID, req)
	var room *domain.Room
	if args.Get(0) != nil {
		room = args.Get(0).(*domain.Room)
	}
	var recalcErr *apperrors.RecalculationError
	if args.Get(1) != nil {
		recalcErr = args.Get(1).(*apperrors.RecalculationError)
	}
	return room, recalcErr, args.Error(2)
}

func (m *MockRoomService) DeleteRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockRoomService) AddOccupant(ctx context.Context, roomID, workerID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) RemoveOccupant(ctx context.Context, roomID, workerID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

var _ portssvc.RoomSvcFacade = (*MockRoomService)(nil)

// --- Test Suite ---

type RoomHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockRoomService *MockRoomService
	jwtSecret       string
	userID          string
}

func (suite *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockRoomService = new(MockRoomService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRoomRoutes(v1, suite.mockRoomService)
}

func (suite *RoomHandlerTestSuite) authedRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	token, err := utils.GenerateJWT(suite.userID, suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_Success() {
	suite.mockRoomService.On("CreateRoom", mock.Anything, mock.MatchedBy(func(req dto.CreateRoomRequest) bool {
		return req.Number == "101" && req.FermeID == "f1" && req.Gender == domain.RoomMen && req.Capacity == 8
	})).Return(&domain.Room{RoomID: "r1", Number: "101", SiteID: "f1", Gender: domain.RoomMen, RoomCapacity: 8}, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/rooms", gin.H{
		"number":   "101",
		"fermeID":  "f1",
		"gender":   "men",
		"capacity": 8,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RoomResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("r1", resp.RoomID)
	suite.Equal(8, resp.AvailablePlaces)
	suite.mockRoomService.AssertExpectations(suite.T())
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_InvalidGenderRejected() {
	w := suite.authedRequest(http.MethodPost, "/api/v1/rooms", gin.H{
		"number":   "101",
		"fermeID":  "f1",
		"gender":   "mixed",
		"capacity": 8,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRoomService.AssertNotCalled(suite.T(), "CreateRoom", mock.Anything, mock.Anything)
}

func (suite *RoomHandlerTestSuite) TestUpdateRoom_RecalculationFailureReturnsWarning() {
	roomID := uuid.NewString()
	capacity := 10
	updated := &domain.Room{RoomID: roomID, Number: "101", SiteID: "f1", RoomCapacity: capacity, CurrentOccupancy: 4}
	suite.mockRoomService.On("UpdateRoom", mock.Anything, roomID, mock.MatchedBy(func(req dto.UpdateRoomRequest) bool {
		return req.Capacity != nil && *req.Capacity == capacity
	})).Return(updated, &apperrors.RecalculationError{SiteID: "f1", Err: errors.New("scan failed")}, nil).Once()

	w := suite.authedRequest(http.MethodPut, fmt.Sprintf("/api/v1/rooms/%s", roomID), gin.H{"capacity": capacity})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UpdateRoomResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(capacity, resp.Room.Capacity)
	suite.NotEmpty(resp.Warning)
}

func (suite *RoomHandlerTestSuite) TestUpdateRoom_CapacityBelowOccupancy() {
	roomID := uuid.NewString()
	suite.mockRoomService.On("UpdateRoom", mock.Anything, roomID, mock.Anything).
		Return(nil, nil, apperrors.NewValidationFailedError("capacity 2 is below current occupancy 5")).Once()

	w := suite.authedRequest(http.MethodPut, fmt.Sprintf("/api/v1/rooms/%s", roomID), gin.H{"capacity": 2})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RoomHandlerTestSuite) TestAddOccupant_Success() {
	roomID := uuid.NewString()
	suite.mockRoomService.On("AddOccupant", mock.Anything, roomID, "w1").
		Return(&domain.Room{RoomID: roomID, RoomCapacity: 8, CurrentOccupancy: 1, OccupantRefs: []string{"AB1"}}, nil).Once()

	w := suite.authedRequest(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/occupants", roomID), gin.H{"workerID": "w1"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RoomResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"AB1"}, resp.OccupantRefs)
	suite.Equal(1, resp.Occupancy)
}

func (suite *RoomHandlerTestSuite) TestAddOccupant_RoomFull() {
	roomID := uuid.NewString()
	suite.mockRoomService.On("AddOccupant", mock.Anything, roomID, "w9").
		Return(nil, apperrors.NewConflictError("room 101 is full")).Once()

	w := suite.authedRequest(http.MethodPost, fmt.Sprintf("/api/v1/rooms/%s/occupants", roomID), gin.H{"workerID": "w9"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RoomHandlerTestSuite) TestRemoveOccupant() {
	roomID := uuid.NewString()
	suite.mockRoomService.On("RemoveOccupant", mock.Anything, roomID, "AB1").
		Return(&domain.Room{RoomID: roomID, RoomCapacity: 8, CurrentOccupancy: 0}, nil).Once()

	w := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/rooms/%s/occupants/AB1", roomID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RoomResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(0, resp.Occupancy)
}

func (suite *RoomHandlerTestSuite) TestListRooms_FermeFilterForwarded() {
	suite.mockRoomService.On("ListRooms", mock.Anything, dto.ListRoomsParams{FermeID: "f1", Gender: "women"}).
		Return([]domain.Room{{RoomID: "r2", Number: "201", SiteID: "f1", Gender: domain.RoomWomen, RoomCapacity: 6}}, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/rooms?fermeID=f1&gender=women", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListRoomsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Rooms, 1)
	suite.Equal("201", resp.Rooms[0].Number)
}

func (suite *RoomHandlerTestSuite) TestDeleteRoom() {
	roomID := uuid.NewString()
	suite.mockRoomService.On("DeleteRoom", mock.Anything, roomID).Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/rooms/%s", roomID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestRoomHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}
