package usecase

import (
	"context"

	"studylink/internal/domain/entity"
)

// OAuthCallbackInput carries the query of a provider redirect.
type OAuthCallbackInput struct {
	ProviderID string
	Code       string
	State      string
	// Error is set by the provider when the member declined consent.
	Error string
}

// OAuthUsecase drives the authorization-code handshake around AuthUsecase.FederatedLogin.
type OAuthUsecase interface {
	AuthorizationURL(ctx context.Context, providerID string) (string, error)
	CompleteLogin(ctx context.Context, input OAuthCallbackInput) (*entity.TokenPair, error)
	LoginWithGoogleIDToken(ctx context.Context, idToken string) (*entity.TokenPair, error)
}
