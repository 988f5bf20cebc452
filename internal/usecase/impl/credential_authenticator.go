// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/domain/service"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"go.uber.org/fx"
)

// dummySecret is hashed once so unknown identities cost one comparison like known ones.
const dummySecret = "studylink-unknown-identity"

type credentialAuthenticator struct {
	memberRepo repository.MemberRepository
	hasher     service.PasswordHasher
	dummyHash  func() string
	logger     *slog.Logger
}

// CredentialAuthenticatorParams holds dependencies for the authenticator, injected by Fx.
type CredentialAuthenticatorParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewCredentialAuthenticator is the constructor for credentialAuthenticator.
func NewCredentialAuthenticator(params CredentialAuthenticatorParams) usecase.CredentialAuthenticator {
	hasher := params.Hasher

	return &credentialAuthenticator{
		memberRepo: params.MemberRepo,
		hasher:     hasher,
		dummyHash: sync.OnceValue(func() string {
			hash, err := hasher.Hash(dummySecret)
			if err != nil {
				return ""
			}

			return hash
		}),
		logger: params.Logger,
	}
}

func (a *credentialAuthenticator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Authenticate verifies identity and secret against the stored bcrypt hash.
// Federated-origin members hold only a random placeholder secret and are always refused.
func (a *credentialAuthenticator) Authenticate(ctx context.Context, identity, secret string) (*entity.Principal, error) {
	if identity == "" || secret == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	member, err := a.memberRepo.FindByUsername(ctx, identity)
	if errors.Is(err, repository.ErrMemberNotFound) {
		if hash := a.dummyHash(); hash != "" {
			a.hasher.Check(secret, hash)
		}
		a.log(ctx).Debug("Login for unknown identity")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load member for authentication")
	}

	matched := a.hasher.Check(secret, member.PasswordHash)
	if member.IsFederated() {
		a.log(ctx).Warn("Password login attempted for federated member",
			slog.String("provider", member.Provider.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !matched {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return member.Principal(), nil
}
