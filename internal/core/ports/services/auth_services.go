package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
)

// TokenSvcFacade issues and validates the tokens backing API sessions.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken checks a refresh token against the
	// user's stored hash and expiry, returning the user on success.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade wraps the Google OAuth login flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString produces the CSRF state nonce for the OAuth redirect.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL builds the consent-screen URL for the given state.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken trades an authorization code for an OAuth token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo fetches the Google profile backing the token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken verifies an ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
