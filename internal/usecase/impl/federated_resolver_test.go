package impl

import (
	"context"
	"encoding/json"
	"testing"

	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	mockRepo "studylink/internal/mocks/repository"
	mockSvc "studylink/internal/mocks/service"
	"studylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resolverFixtures struct {
	resolver   usecase.FederatedIdentityResolver
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	memberRepo *mockRepo.MockMemberRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestResolver(t *testing.T) resolverFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	memberRepo := mockRepo.NewMockMemberRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	resolver := NewFederatedResolver(FederatedResolverParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return resolverFixtures{
		resolver:   resolver,
		txManager:  txManager,
		factory:    factory,
		memberRepo: memberRepo,
		hasher:     hasher,
	}
}

// expectTransaction makes every Execute call run fn against the mocked factory.
func (f resolverFixtures) expectTransaction(times int) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Times(times)
	f.factory.EXPECT().MemberRepo().Return(f.memberRepo).Times(times)
}

func TestFederatedResolver_Resolve(t *testing.T) {
	resolver := createTestResolver(t).resolver

	tests := []struct {
		name       string
		provider   entity.Provider
		attributes map[string]any
		want       *entity.FederatedProfile
		wantErr    error
	}{
		{
			name:     "google",
			provider: entity.ProviderGoogle,
			attributes: map[string]any{
				"sub":     "1098765",
				"name":    "Hong",
				"email":   "hong@gmail.com",
				"picture": "http://img/g.png",
			},
			want: &entity.FederatedProfile{
				Provider:    entity.ProviderGoogle,
				Username:    "1098765",
				DisplayName: "Hong",
				Email:       "hong@gmail.com",
				AvatarURL:   "http://img/g.png",
			},
		},
		{
			name:     "google without email",
			provider: entity.ProviderGoogle,
			attributes: map[string]any{
				"sub":  "1098765",
				"name": "Hong",
			},
			want: &entity.FederatedProfile{Provider: entity.ProviderGoogle, Username: "1098765", DisplayName: "Hong"},
		},
		{
			name:     "kakao with json number id",
			provider: entity.ProviderKakao,
			attributes: map[string]any{
				"id": json.Number("4012345678901"),
				"kakao_account": map[string]any{
					"email": "ignored@kakao.com",
					"profile": map[string]any{
						"nickname":          "hong",
						"profile_image_url": "http://img/k.png",
					},
				},
			},
			want: &entity.FederatedProfile{
				Provider:    entity.ProviderKakao,
				Username:    "4012345678901",
				DisplayName: "hong",
				Email:       "",
				AvatarURL:   "http://img/k.png",
			},
		},
		{
			name:     "kakao with string id and no image",
			provider: entity.ProviderKakao,
			attributes: map[string]any{
				"id":            "77",
				"kakao_account": map[string]any{"profile": map[string]any{"nickname": "kim"}},
			},
			want: &entity.FederatedProfile{Provider: entity.ProviderKakao, Username: "77", DisplayName: "kim"},
		},
		{
			name:     "kakao without nickname",
			provider: entity.ProviderKakao,
			attributes: map[string]any{
				"id":            float64(77),
				"kakao_account": map[string]any{"profile": map[string]any{}},
			},
			wantErr: domainerrors.ErrProviderAttributeMissing,
		},
		{
			name:       "kakao without account",
			provider:   entity.ProviderKakao,
			attributes: map[string]any{"id": float64(77)},
			wantErr:    domainerrors.ErrProviderAttributeMissing,
		},
		{
			name:       "kakao with fractional id",
			provider:   entity.ProviderKakao,
			attributes: map[string]any{"id": 1.5},
			wantErr:    domainerrors.ErrProviderAttributeMissing,
		},
		{
			name:     "google without name falls back to email",
			provider: entity.ProviderGoogle,
			attributes: map[string]any{
				"sub":   "1098765",
				"email": "hong@gmail.com",
			},
			want: &entity.FederatedProfile{
				Provider:    entity.ProviderGoogle,
				Username:    "1098765",
				DisplayName: "hong@gmail.com",
				Email:       "hong@gmail.com",
			},
		},
		{
			name:       "google id token with sub only",
			provider:   entity.ProviderGoogle,
			attributes: map[string]any{"sub": "1098765", "name": nil},
			want:       &entity.FederatedProfile{Provider: entity.ProviderGoogle, Username: "1098765", DisplayName: "1098765"},
		},
		{
			name:       "google with non-string sub",
			provider:   entity.ProviderGoogle,
			attributes: map[string]any{"sub": 12, "name": "Hong"},
			wantErr:    domainerrors.ErrProviderAttributeMissing,
		},
		{
			name:     "nil attributes",
			provider: entity.ProviderGoogle,
			wantErr:  domainerrors.ErrProviderAttributeMissing,
		},
		{
			name:       "unsupported provider",
			provider:   entity.Provider("NAVER"),
			attributes: map[string]any{"id": "1"},
			wantErr:    domainerrors.ErrUnsupportedProvider,
		},
		{
			name:       "local provider",
			provider:   entity.ProviderNone,
			attributes: map[string]any{"sub": "1", "name": "x"},
			wantErr:    domainerrors.ErrUnsupportedProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(tt.provider, tt.attributes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func kakaoProfile() *entity.FederatedProfile {
	return &entity.FederatedProfile{
		Provider:    entity.ProviderKakao,
		Username:    "4012345678",
		DisplayName: "hong",
		AvatarURL:   "http://img/new.png",
	}
}

func TestFederatedResolver_UpsertCreatesMember(t *testing.T) {
	f := createTestResolver(t)
	ctx := context.Background()
	f.expectTransaction(1)

	f.memberRepo.EXPECT().FindByUsername(ctx, "4012345678").Return(nil, repository.ErrMemberNotFound).Once()
	f.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$placeholder", nil).Once()
	f.memberRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(m *entity.Member) bool {
			return m.Username == "4012345678" &&
				m.PasswordHash == "$2a$placeholder" &&
				m.Role == entity.RoleMember &&
				m.Provider == entity.ProviderKakao &&
				m.Nickname == "hong" &&
				m.ProfileImg == "http://img/new.png"
		})).
		Return(nil).Once()

	member, err := f.resolver.Upsert(ctx, kakaoProfile())
	require.NoError(t, err)
	assert.Equal(t, "4012345678", member.Username)
}

func TestFederatedResolver_UpsertUpdatesOnlyContactFields(t *testing.T) {
	f := createTestResolver(t)
	ctx := context.Background()
	f.expectTransaction(1)

	existing := &entity.Member{
		ID:           uuid.New(),
		Username:     "4012345678",
		PasswordHash: "$2a$original",
		Nickname:     "old nickname",
		ProfileImg:   "http://img/old.png",
		Role:         entity.RoleAdmin,
		Provider:     entity.ProviderKakao,
	}
	f.memberRepo.EXPECT().FindByUsername(ctx, "4012345678").Return(existing, nil).Once()
	f.memberRepo.EXPECT().Save(ctx, existing).Return(nil).Once()

	member, err := f.resolver.Upsert(ctx, kakaoProfile())
	require.NoError(t, err)

	assert.Equal(t, "http://img/new.png", member.ProfileImg)
	assert.Equal(t, entity.RoleAdmin, member.Role)
	assert.Equal(t, "$2a$original", member.PasswordHash)
	assert.Equal(t, "old nickname", member.Nickname)
}

func TestFederatedResolver_UpsertSkipsSaveWhenUnchanged(t *testing.T) {
	f := createTestResolver(t)
	ctx := context.Background()
	f.expectTransaction(1)

	existing := &entity.Member{
		ID:         uuid.New(),
		Username:   "4012345678",
		ProfileImg: "http://img/new.png",
		Role:       entity.RoleMember,
		Provider:   entity.ProviderKakao,
	}
	f.memberRepo.EXPECT().FindByUsername(ctx, "4012345678").Return(existing, nil).Once()

	member, err := f.resolver.Upsert(ctx, kakaoProfile())
	require.NoError(t, err)
	assert.Same(t, existing, member)
}

func TestFederatedResolver_UpsertRejectsForeignAccount(t *testing.T) {
	f := createTestResolver(t)
	ctx := context.Background()
	f.expectTransaction(1)

	f.memberRepo.EXPECT().FindByUsername(ctx, "4012345678").Return(&entity.Member{
		Username: "4012345678",
		Role:     entity.RoleMember,
		Provider: entity.ProviderGoogle,
	}, nil).Once()

	_, err := f.resolver.Upsert(ctx, kakaoProfile())
	assert.ErrorIs(t, err, domainerrors.ErrFederatedAccountConflict)
}

func TestFederatedResolver_UpsertRetriesAfterConcurrentCreate(t *testing.T) {
	f := createTestResolver(t)
	ctx := context.Background()
	f.expectTransaction(2)

	created := &entity.Member{
		ID:         uuid.New(),
		Username:   "4012345678",
		ProfileImg: "http://img/new.png",
		Role:       entity.RoleMember,
		Provider:   entity.ProviderKakao,
	}
	f.memberRepo.EXPECT().FindByUsername(ctx, "4012345678").Return(nil, repository.ErrMemberNotFound).Once()
	f.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$placeholder", nil).Once()
	f.memberRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Member")).
		Return(domainerrors.ErrEmailDuplicate.WrapMessage("username already exists")).Once()
	f.memberRepo.EXPECT().FindByUsername(ctx, "4012345678").Return(created, nil).Once()

	member, err := f.resolver.Upsert(ctx, kakaoProfile())
	require.NoError(t, err)
	assert.Equal(t, created.ID, member.ID)
}

func TestFederatedResolver_UpsertRequiresUsername(t *testing.T) {
	f := createTestResolver(t)

	_, err := f.resolver.Upsert(context.Background(), &entity.FederatedProfile{Provider: entity.ProviderGoogle})
	assert.ErrorIs(t, err, domainerrors.ErrProviderAttributeMissing)
}
