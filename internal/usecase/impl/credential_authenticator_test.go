package impl

import (
	"context"
	"testing"

	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/errors"
	mockRepo "studylink/internal/mocks/repository"
	mockSvc "studylink/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialAuthenticator_UnknownIdentityStillComparesHash(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	authenticator := NewCredentialAuthenticator(CredentialAuthenticatorParams{
		MemberRepo: memberRepo,
		Hasher:     hasher,
		Logger:     newDiscardLogger(),
	})
	ctx := context.Background()

	memberRepo.EXPECT().FindByUsername(ctx, "nobody@x.com").Return(nil, repository.ErrMemberNotFound).Twice()
	hasher.EXPECT().Hash(dummySecret).Return("$2a$dummy", nil).Once()
	hasher.EXPECT().Check("secret", "$2a$dummy").Return(false).Twice()

	for range 2 {
		principal, err := authenticator.Authenticate(ctx, "nobody@x.com", "secret")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestCredentialAuthenticator_Success(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	authenticator := NewCredentialAuthenticator(CredentialAuthenticatorParams{
		MemberRepo: memberRepo,
		Hasher:     hasher,
		Logger:     newDiscardLogger(),
	})
	ctx := context.Background()

	memberRepo.EXPECT().FindByUsername(ctx, "root@x.com").Return(&entity.Member{
		Username:     "root@x.com",
		PasswordHash: "$2a$hash",
		Role:         entity.RoleAdmin,
		Provider:     entity.ProviderNone,
	}, nil).Once()
	hasher.EXPECT().Check("right", "$2a$hash").Return(true).Once()

	principal, err := authenticator.Authenticate(ctx, "root@x.com", "right")
	require.NoError(t, err)
	assert.Equal(t, entity.NewPrincipal("root@x.com", entity.RoleAdmin), principal)
	assert.True(t, principal.HasRole(entity.RoleAdmin))
}

func TestCredentialAuthenticator_RepositoryFailureIsNotInvalidCredentials(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	authenticator := NewCredentialAuthenticator(CredentialAuthenticatorParams{
		MemberRepo: memberRepo,
		Hasher:     mockSvc.NewMockPasswordHasher(t),
		Logger:     newDiscardLogger(),
	})
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	memberRepo.EXPECT().FindByUsername(ctx, "a@x.com").Return(nil, dbErr).Once()

	_, err := authenticator.Authenticate(ctx, "a@x.com", "right")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
