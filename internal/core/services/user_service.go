package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	portssvc "github.com/atlasferme/worker_housing_app/internal/core/ports/services"
	"github.com/atlasferme/worker_housing_app/internal/dto"
	"github.com/atlasferme/worker_housing_app/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email address
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// ListUsers retrieves all users
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// CreateUser creates a new local user. The very first account becomes a
// superadmin so a fresh deployment can be bootstrapped; everyone after that
// starts as an unscoped admin until a superadmin assigns them a ferme.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("email is already registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalServerError("failed to hash password")
	}

	role := domain.RoleAdmin
	existing, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		role = domain.RoleSuperAdmin
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         role,
		AuthProvider: domain.ProviderLocal,
	}
	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", saved.UserID),
		slog.String("role", string(saved.Role)))
	return saved, nil
}

// CreateOAuthUser creates or links a user from an external provider identity
func (s *userService) CreateOAuthUser(ctx context.Context, provider domain.AuthProvider, info *domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, provider, info.Sub)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// Link the provider identity to an existing local account with the
	// same email, if there is one.
	user, err = s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		fields := map[string]any{
			"authProvider":   provider,
			"providerUserId": info.Sub,
		}
		if err := s.userRepo.UpdateUserFields(ctx, user.UserID, fields); err != nil {
			return nil, err
		}
		return s.userRepo.FindUserByID(ctx, user.UserID)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	created := domain.User{
		UserID:         uuid.NewString(),
		Email:          info.Email,
		FullName:       info.Name,
		Role:           domain.RoleAdmin,
		AuthProvider:   provider,
		ProviderUserID: info.Sub,
	}
	saved, err := s.userRepo.SaveUser(ctx, created)
	if err != nil {
		s.LogError(ctx, err, "Failed to save oauth user", slog.String("email", info.Email))
		return nil, err
	}

	s.LogInfo(ctx, "OAuth user registered",
		slog.String("user_id", saved.UserID),
		slog.String("provider", string(provider)))
	return saved, nil
}

// UpdateUser updates an existing user. Role and ferme assignment changes are
// reserved to superadmins; everyone may edit their own name.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !requester.IsSuperAdmin() && requestingUserID != userID {
		return nil, apperrors.NewAppError(403, "cannot update another user", apperrors.ErrForbidden)
	}

	fields := map[string]any{}
	if req.FullName != nil {
		fields["fullName"] = *req.FullName
	}
	if req.Role != nil || req.FermeID != nil {
		if !requester.IsSuperAdmin() {
			return nil, apperrors.NewAppError(403, "only superadmins may change roles or ferme assignments", apperrors.ErrForbidden)
		}
		if req.Role != nil {
			fields["role"] = *req.Role
		}
		if req.FermeID != nil {
			fields["siteId"] = *req.FermeID
		}
	}
	if len(fields) == 0 {
		return s.userRepo.FindUserByID(ctx, userID)
	}

	if err := s.userRepo.UpdateUserFields(ctx, userID, fields); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateRefreshToken updates the refresh token details for a user
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	fields := map[string]any{
		"refreshTokenHash":       refreshTokenHash,
		"refreshTokenExpiryTime": refreshTokenExpiryTime,
	}
	return s.userRepo.UpdateUserFields(ctx, userID, fields)
}

// ClearRefreshToken clears the refresh token for a user
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	fields := map[string]any{
		"refreshTokenHash":       "",
		"refreshTokenExpiryTime": nil,
	}
	return s.userRepo.UpdateUserFields(ctx, userID, fields)
}

// AuthenticateUser authenticates a user with email and password
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}
	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, apperrors.NewUnauthorizedError("account uses an external sign-in provider")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}
	return user, nil
}
