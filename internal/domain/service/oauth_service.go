// Package service defines contracts for external collaborators that are not
// persistence.
package service

import (
	"context"

	"stockroom/internal/domain/entity"
)

// OAuthService abstracts the third-party OAuth provider handshake.
type OAuthService interface {
	// AuthorizationURL builds the provider authorization URL. The embedded
	// state parameter is stored server-side for later validation.
	AuthorizationURL() string

	// ValidateState checks a callback state parameter. A state validates at
	// most once.
	ValidateState(state string) bool

	// ExchangeCode exchanges an authorization code for an access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile retrieves the identity profile for an access token.
	FetchProfile(ctx context.Context, accessToken string) (*entity.IdentityProfile, error)
}
