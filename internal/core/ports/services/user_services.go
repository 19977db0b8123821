package services

import (
	"context"
	"time"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	"github.com/atlasferme/worker_housing_app/internal/dto"
)

// UserReaderSvc exposes read access to user accounts.
type UserReaderSvc interface {
	// GetUserByID looks up a user account by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail looks up a user account by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers returns every user account.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc exposes mutations on user accounts.
type UserWriterSvc interface {
	// CreateUser registers a new local (password-based) account.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateOAuthUser creates or links an account from an external provider identity.
	CreateOAuthUser(ctx context.Context, provider domain.AuthProvider, info *domain.GoogleUserInfo) (*domain.User, error)

	// UpdateUser applies profile changes on behalf of the requesting user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// UpdateRefreshToken stores a new refresh token hash and expiry for the user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken revokes the user's current refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc performs credential checks.
type UserAuthSvc interface {
	// AuthenticateUser verifies an email and password pair.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade bundles the user read, write and auth surfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
