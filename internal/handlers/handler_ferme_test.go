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

// --- Mock FermeService ---

type MockFermeService struct {
	mock.Mock
}

func (m *MockFermeService) GetFermeByID(ctx context.Context, fermeID string) (*domain.Site, error) {
	args := m.Called(ctx, fermeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockFermeService) ListFermes(ctx context.Context, requester *domain.User) ([]domain.Site, error) {
	args := m.Called(ctx, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockFermeService) CreateFerme(ctx context.Context, req dto.CreateFermeRequest) (*domain.Site, []domain.Room, error) {
	args := m.Called(ctx, req)
	var site *domain.Site
	if args.Get(0) != nil {
		site = args.Get(0).(*domain.Site)
	}
	var rooms []domain.Room
	if args.Get(1) != nil {
		rooms = args.Get(1).([]domain.Room)
	}
	return site, rooms, args.Error(2)
}

func (m *MockFermeService) UpdateFerme(ctx context.Context, fermeID string, req dto.UpdateFermeRequest) (*domain.Site, error) {
	args := m.Called(ctx, fermeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockFermeService) DeleteFermeCascade(ctx context.Context, fermeID string) error {
	args := m.Called(ctx, fermeID)
	return args.Error(0)
}

func (m *MockFermeService) RecalculateCapacity(ctx context.Context, fermeID string) (*domain.Site, error) {
	args := m.Called(ctx, fermeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

var _ portssvc.FermeSvcFacade = (*MockFermeService)(nil)

// --- Mock user reader, only what requesterFromContext needs ---

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

var _ portssvc.UserReaderSvc = (*MockUserReader)(nil)

// --- Test Suite ---

type FermeHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockFermeService *MockFermeService
	mockUserReader   *MockUserReader
	jwtSecret        string
	userID           string
}

func (suite *FermeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockFermeService = new(MockFermeService)
	suite.mockUserReader = new(MockUserReader)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterFermeRoutes(v1, suite.mockFermeService, suite.mockUserReader)
}

func (suite *FermeHandlerTestSuite) authedRequest(method, path string, body any) *httptest.ResponseRecorder {
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

// requesterHasRole makes the auth lookup resolve the test user with the
// given role. Mutating ferme routes require the superadmin role.
func (suite *FermeHandlerTestSuite) requesterHasRole(role domain.UserRole) {
	suite.mockUserReader.On("GetUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, Role: role, SiteID: "f2"}, nil).Once()
}

func (suite *FermeHandlerTestSuite) TestCreateFerme_Success() {
	suite.requesterHasRole(domain.RoleSuperAdmin)
	suite.mockFermeService.On("CreateFerme", mock.Anything, mock.MatchedBy(func(req dto.CreateFermeRequest) bool {
		return req.Name == "Ferme Nord" && req.AutoCreateRooms
	})).Return(&domain.Site{SiteID: "f1", Name: "Ferme Nord", TotalRooms: 20, TotalCapacity: 80}, []domain.Room{}, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/fermes", gin.H{
		"name":            "Ferme Nord",
		"autoCreateRooms": true,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.FermeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("f1", resp.FermeID)
	suite.Equal(20, resp.TotalRooms)
	suite.mockFermeService.AssertExpectations(suite.T())
}

func (suite *FermeHandlerTestSuite) TestCreateFerme_DeclaredTotalsForwarded() {
	suite.requesterHasRole(domain.RoleSuperAdmin)
	suite.mockFermeService.On("CreateFerme", mock.Anything, mock.MatchedBy(func(req dto.CreateFermeRequest) bool {
		return !req.AutoCreateRooms && req.TotalRooms == 7 && req.TotalCapacity == 70
	})).Return(&domain.Site{SiteID: "f3", Name: "Ferme X", TotalRooms: 7, TotalCapacity: 70}, nil, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/fermes", gin.H{
		"name":            "Ferme X",
		"autoCreateRooms": false,
		"totalRooms":      7,
		"totalCapacity":   70,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.FermeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(7, resp.TotalRooms)
	suite.Equal(70, resp.TotalCapacity)
	suite.mockFermeService.AssertExpectations(suite.T())
}

func (suite *FermeHandlerTestSuite) TestCreateFerme_AdminForbidden() {
	suite.requesterHasRole(domain.RoleAdmin)

	w := suite.authedRequest(http.MethodPost, "/api/v1/fermes", gin.H{"name": "Ferme Nord"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockFermeService.AssertNotCalled(suite.T(), "CreateFerme", mock.Anything, mock.Anything)
}

func (suite *FermeHandlerTestSuite) TestCreateFerme_MissingNameRejected() {
	suite.requesterHasRole(domain.RoleSuperAdmin)

	w := suite.authedRequest(http.MethodPost, "/api/v1/fermes", gin.H{"autoCreateRooms": true})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFermeService.AssertNotCalled(suite.T(), "CreateFerme", mock.Anything, mock.Anything)
}

func (suite *FermeHandlerTestSuite) TestCreateFerme_NoToken() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fermes", bytes.NewReader([]byte(`{"name":"x"}`)))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *FermeHandlerTestSuite) TestListFermes_ScopedToRequester() {
	requester := &domain.User{UserID: suite.userID, Role: domain.RoleAdmin, SiteID: "f2"}
	suite.mockUserReader.On("GetUserByID", mock.Anything, suite.userID).Return(requester, nil).Once()
	suite.mockFermeService.On("ListFermes", mock.Anything, requester).
		Return([]domain.Site{{SiteID: "f2", Name: "Ferme Sud"}}, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/fermes", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListFermesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Fermes, 1)
	suite.Equal("f2", resp.Fermes[0].FermeID)
}

func (suite *FermeHandlerTestSuite) TestDeleteFerme_AdminForbidden() {
	suite.requesterHasRole(domain.RoleAdmin)
	fermeID := uuid.NewString()

	w := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/fermes/%s", fermeID), nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockFermeService.AssertNotCalled(suite.T(), "DeleteFermeCascade", mock.Anything, mock.Anything)
}

func (suite *FermeHandlerTestSuite) TestDeleteFerme_PartialCascadeConflict() {
	suite.requesterHasRole(domain.RoleSuperAdmin)
	fermeID := uuid.NewString()
	suite.mockFermeService.On("DeleteFermeCascade", mock.Anything, fermeID).
		Return(&apperrors.PartialCascadeError{
			SiteID: fermeID, Deleted: 3, Remaining: 2, Err: errors.New("delete failed"),
		}).Once()

	w := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/fermes/%s", fermeID), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *FermeHandlerTestSuite) TestDeleteFerme_Success() {
	suite.requesterHasRole(domain.RoleSuperAdmin)
	fermeID := uuid.NewString()
	suite.mockFermeService.On("DeleteFermeCascade", mock.Anything, fermeID).Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/fermes/%s", fermeID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *FermeHandlerTestSuite) TestRecalculateFerme() {
	suite.requesterHasRole(domain.RoleSuperAdmin)
	fermeID := uuid.NewString()
	suite.mockFermeService.On("RecalculateCapacity", mock.Anything, fermeID).
		Return(&domain.Site{SiteID: fermeID, TotalRooms: 5, TotalCapacity: 42}, nil).Once()

	w := suite.authedRequest(http.MethodPost, fmt.Sprintf("/api/v1/fermes/%s/recalculate", fermeID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RecalculateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(42, resp.Ferme.TotalCapacity)
}

func (suite *FermeHandlerTestSuite) TestGetFerme_NotFound() {
	suite.mockFermeService.On("GetFermeByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/fermes/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestFermeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FermeHandlerTestSuite))
}
