// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"studylink/internal/domain/entity"
)

// LoginInput defines the data required for a member to log in.
type LoginInput struct {
	Identity string
	Secret   string
}

// AuthUsecase owns token issuance and the single-active-refresh-token rule.
// It is the only writer of the refresh token store.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.TokenPair, error)
	Reissue(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	FederatedLogin(ctx context.Context, provider entity.Provider, attributes map[string]any) (*entity.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// CredentialAuthenticator checks a local identity and secret.
type CredentialAuthenticator interface {
	// Authenticate fails with INVALID_CREDENTIALS for an unknown identity and for a
	// wrong secret alike.
	Authenticate(ctx context.Context, identity, secret string) (*entity.Principal, error)
}

// FederatedIdentityResolver folds identity provider payloads into local members.
type FederatedIdentityResolver interface {
	// Resolve maps the raw provider attributes onto a profile. It never touches storage.
	Resolve(provider entity.Provider, attributes map[string]any) (*entity.FederatedProfile, error)

	// Upsert creates the member of profile or refreshes its contact fields.
	Upsert(ctx context.Context, profile *entity.FederatedProfile) (*entity.Member, error)
}
