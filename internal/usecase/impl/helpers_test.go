package impl

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"studylink/config"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/domain/service"
	"studylink/internal/infra/auth"
	"studylink/internal/infra/cache"
	"studylink/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("access-key-", 4)))
	cfg.SecretKey.Refresh = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("refresh-key-", 4)))
	cfg.TokenExpiration.Access = time.Hour
	cfg.TokenExpiration.Refresh = 7 * 24 * time.Hour
	cfg.Auth = &config.AuthConfig{StoreRetries: 2}
	cfg.OAuth = &config.OAuthConfig{StateTTL: 10 * time.Minute}
	cfg.EmailVerification = &config.EmailVerificationConfig{CodeTTL: 10 * time.Minute, VerifiedTTL: 30 * time.Minute}

	return cfg
}

func newTestCodec(t *testing.T) service.TokenCodec {
	t.Helper()

	codec, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	return codec
}

func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

// memoryMemberRepo is a concurrency-safe MemberRepository keyed by username.
type memoryMemberRepo struct {
	mu      sync.Mutex
	members map[string]entity.Member
	saves   int
}

func newMemoryMemberRepo(members ...*entity.Member) *memoryMemberRepo {
	repo := &memoryMemberRepo{members: make(map[string]entity.Member)}
	for _, member := range members {
		if member.ID == uuid.Nil {
			member.ID = uuid.New()
		}
		repo.members[member.Username] = *member
	}

	return repo
}

func (r *memoryMemberRepo) FindByUsername(_ context.Context, username string) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	member, ok := r.members[username]
	if !ok {
		return nil, repository.ErrMemberNotFound
	}

	return &member, nil
}

func (r *memoryMemberRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.members[username]

	return ok, nil
}

func (r *memoryMemberRepo) Save(_ context.Context, member *entity.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saves++
	if member.ID == uuid.Nil {
		if _, taken := r.members[member.Username]; taken {
			return domainerrors.ErrEmailDuplicate.WrapMessage("username already exists")
		}
		member.ID = uuid.New()
	}
	r.members[member.Username] = *member

	return nil
}

func (r *memoryMemberRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.members)
}

func (r *memoryMemberRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saves
}

// memoryTxManager runs fn directly against the in-memory member repository.
type memoryTxManager struct {
	members *memoryMemberRepo
}

func (m *memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memoryTxManager) MemberRepo() repository.MemberRepository     { return m.members }
func (m *memoryTxManager) CategoryRepo() repository.CategoryRepository { return nil }
func (m *memoryTxManager) RegionRepo() repository.RegionRepository     { return nil }

// authFixture wires the orchestrator with real collaborators over miniredis.
type authFixture struct {
	service usecase.AuthUsecase
	codec   service.TokenCodec
	store   repository.RefreshTokenStore
	members *memoryMemberRepo
	hasher  service.PasswordHasher
	redis   *miniredis.Miniredis
}

func newAuthFixture(t *testing.T, members ...*entity.Member) *authFixture {
	t.Helper()

	return newAuthFixtureWithStore(t, nil, members...)
}

// newAuthFixtureWithStore lets a test wrap the redis-backed store the orchestrator talks to.
func newAuthFixtureWithStore(
	t *testing.T,
	wrap func(repository.RefreshTokenStore) repository.RefreshTokenStore,
	members ...*entity.Member,
) *authFixture {
	t.Helper()

	mr, client := newTestRedis(t)
	codec := newTestCodec(t)
	hasher := newTestHasher()
	store := cache.NewRefreshTokenStore(client)
	orchestratorStore := store
	if wrap != nil {
		orchestratorStore = wrap(store)
	}
	memberRepo := newMemoryMemberRepo(members...)
	logger := newDiscardLogger()

	authenticator := NewCredentialAuthenticator(CredentialAuthenticatorParams{
		MemberRepo: memberRepo,
		Hasher:     hasher,
		Logger:     logger,
	})
	resolver := NewFederatedResolver(FederatedResolverParams{
		TxManager: &memoryTxManager{members: memberRepo},
		Hasher:    hasher,
		Logger:    logger,
	})

	return &authFixture{
		service: NewAuthService(AuthServiceParams{
			Authenticator: authenticator,
			Resolver:      resolver,
			Codec:         codec,
			Store:         orchestratorStore,
			Config:        newTestConfig(),
			Logger:        logger,
		}),
		codec:   codec,
		store:   store,
		members: memberRepo,
		hasher:  hasher,
		redis:   mr,
	}
}

func localMember(t *testing.T, hasher service.PasswordHasher, username, password string) *entity.Member {
	t.Helper()

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	return &entity.Member{
		Username:     username,
		PasswordHash: hash,
		Email:        username,
		Nickname:     "tester",
		Role:         entity.RoleMember,
		Provider:     entity.ProviderNone,
	}
}
