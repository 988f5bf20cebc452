package service

import (
	"context"

	"studylink/internal/domain/entity"
)

// OAuthProvider drives the authorization-code handshake of one identity provider.
type OAuthProvider interface {
	// Provider returns the provider this client talks to.
	Provider() entity.Provider

	// AuthCodeURL builds the consent page URL carrying state.
	AuthCodeURL(state string) string

	// FetchAttributes exchanges the code and returns the raw user-info payload.
	FetchAttributes(ctx context.Context, code string) (map[string]any, error)
}

// IDTokenVerifier validates identity tokens minted by Google for mobile clients.
type IDTokenVerifier interface {
	// VerifyIDToken returns the token claims, shaped like the user-info payload.
	VerifyIDToken(ctx context.Context, idToken string) (map[string]any, error)
}
