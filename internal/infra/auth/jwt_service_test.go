package auth

import (
	"encoding/base64"
	"strings"
	"sync"
	"testing"
	"time"

	"studylink/config"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAccessSecret  = []byte(strings.Repeat("access-secret-", 4))
	testRefreshSecret = []byte(strings.Repeat("refresh-secret-", 4))
)

// fakeClock is safe to advance while tokens are parsed.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestCodec(t *testing.T) (*jwtService, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	codec, err := newJWTService(
		signingKey{secret: testAccessSecret, ttl: time.Hour},
		signingKey{secret: testRefreshSecret, ttl: 7 * 24 * time.Hour},
		clock.Now,
	)
	require.NoError(t, err)

	return codec, clock
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	codec, _ := newTestCodec(t)
	principal := entity.NewPrincipal("a@x.com", entity.RoleMember)

	for _, kind := range []entity.TokenKind{entity.TokenKindAccess, entity.TokenKindRefresh} {
		t.Run(kind.String(), func(t *testing.T) {
			token, err := codec.Issue(kind, principal)
			require.NoError(t, err)
			assert.True(t, codec.Verify(kind, token))

			got, err := codec.PrincipalOf(kind, token)
			require.NoError(t, err)
			assert.Equal(t, principal, got)
		})
	}
}

func TestJWTService_VerifyFailsAfterExpiry(t *testing.T) {
	codec, clock := newTestCodec(t)
	principal := entity.NewPrincipal("a@x.com", entity.RoleMember)

	access, err := codec.Issue(entity.TokenKindAccess, principal)
	require.NoError(t, err)
	refresh, err := codec.Issue(entity.TokenKindRefresh, principal)
	require.NoError(t, err)

	clock.Advance(time.Hour - time.Second)
	assert.True(t, codec.Verify(entity.TokenKindAccess, access))

	clock.Advance(time.Second)
	assert.False(t, codec.Verify(entity.TokenKindAccess, access))
	assert.True(t, codec.Verify(entity.TokenKindRefresh, refresh))

	clock.Advance(7 * 24 * time.Hour)
	assert.False(t, codec.Verify(entity.TokenKindRefresh, refresh))
}

func TestJWTService_KindsAreNotInterchangeable(t *testing.T) {
	codec, _ := newTestCodec(t)

	principals := []*entity.Principal{
		entity.NewPrincipal("a@x.com", entity.RoleMember),
		entity.NewPrincipal("root@x.com", entity.RoleAdmin),
		entity.NewPrincipal("4012345678", entity.RoleMember),
	}

	for _, principal := range principals {
		access, err := codec.Issue(entity.TokenKindAccess, principal)
		require.NoError(t, err)
		refresh, err := codec.Issue(entity.TokenKindRefresh, principal)
		require.NoError(t, err)

		assert.False(t, codec.Verify(entity.TokenKindRefresh, access), principal.Subject)
		assert.False(t, codec.Verify(entity.TokenKindAccess, refresh), principal.Subject)
	}
}

func TestJWTService_TypeClaimIsEnforced(t *testing.T) {
	codec, clock := newTestCodec(t)

	// Signed with the access key but claiming to be a refresh token.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "a@x.com",
		"exp":   clock.Now().Add(time.Hour).Unix(),
		"type":  "refresh",
		"roles": "ROLE_MEMBER",
	}).SignedString(testAccessSecret)
	require.NoError(t, err)

	assert.False(t, codec.Verify(entity.TokenKindAccess, forged))
}

func TestJWTService_VerifyNeverPanicsOnGarbage(t *testing.T) {
	codec, _ := newTestCodec(t)

	inputs := []string{
		"",
		"   ",
		"not-a-jwt",
		"a.b.c",
		"eyJhbGciOiJub25lIn0.eyJzdWIiOiJhQHguY29tIn0.",
	}

	for _, input := range inputs {
		assert.False(t, codec.Verify(entity.TokenKindAccess, input), input)
		assert.False(t, codec.Verify(entity.TokenKindRefresh, input), input)
	}
}

func TestJWTService_RejectsTamperedSignature(t *testing.T) {
	codec, _ := newTestCodec(t)

	token, err := codec.Issue(entity.TokenKindAccess, entity.NewPrincipal("a@x.com", entity.RoleMember))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"root@x.com","roles":"ROLE_ADMIN","type":"access","exp":9999999999}`))

	assert.False(t, codec.Verify(entity.TokenKindAccess, strings.Join(parts, ".")))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	codec, clock := newTestCodec(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":   "a@x.com",
		"exp":   clock.Now().Add(time.Hour).Unix(),
		"type":  "access",
		"roles": "ROLE_MEMBER",
	}).SignedString(testAccessSecret)
	require.NoError(t, err)

	assert.False(t, codec.Verify(entity.TokenKindAccess, token))
}

func TestJWTService_PrincipalOfUnverifiedTokenIsMalformed(t *testing.T) {
	codec, clock := newTestCodec(t)

	refresh, err := codec.Issue(entity.TokenKindRefresh, entity.NewPrincipal("a@x.com", entity.RoleMember))
	require.NoError(t, err)

	_, err = codec.PrincipalOf(entity.TokenKindAccess, refresh)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))

	_, err = codec.PrincipalOf(entity.TokenKindAccess, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "a@x.com",
		"exp":   clock.Now().Add(time.Hour).Unix(),
		"type":  "access",
		"roles": "SCOPE_read",
	}).SignedString(testAccessSecret)
	require.NoError(t, err)

	_, err = codec.PrincipalOf(entity.TokenKindAccess, noRole)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_RolesClaimIsJoinedAuthorities(t *testing.T) {
	codec, _ := newTestCodec(t)

	token, err := codec.Issue(entity.TokenKindAccess, &entity.Principal{
		Subject:     "root@x.com",
		Role:        entity.RoleAdmin,
		Authorities: entity.Authorities{"ROLE_ADMIN", "ROLE_MEMBER"},
	})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "ROLE_ADMIN, ROLE_MEMBER", claims["roles"])
	assert.Equal(t, "root@x.com", claims["sub"])
}

func TestJWTService_IssuesDistinctTokens(t *testing.T) {
	codec, _ := newTestCodec(t)
	principal := entity.NewPrincipal("a@x.com", entity.RoleMember)

	first, err := codec.Issue(entity.TokenKindRefresh, principal)
	require.NoError(t, err)
	second, err := codec.Issue(entity.TokenKindRefresh, principal)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_TTL(t *testing.T) {
	codec, _ := newTestCodec(t)

	assert.Equal(t, time.Hour, codec.TTL(entity.TokenKindAccess))
	assert.Equal(t, 7*24*time.Hour, codec.TTL(entity.TokenKindRefresh))
}

func TestNewJWTService_Configuration(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = base64.StdEncoding.EncodeToString(testAccessSecret)
	cfg.SecretKey.Refresh = base64.StdEncoding.EncodeToString(testRefreshSecret)
	cfg.TokenExpiration.Access = time.Hour
	cfg.TokenExpiration.Refresh = 24 * time.Hour

	codec, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, codec.TTL(entity.TokenKindRefresh))

	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	cfg.SecretKey.Refresh = ""
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}
