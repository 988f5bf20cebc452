package impl

import (
	"context"
	"net/url"
	"testing"

	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/service"
	"studylink/internal/errors"
	"studylink/internal/infra/cache"
	mockSvc "studylink/internal/mocks/service"
	"studylink/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type oauthFixtures struct {
	service  usecase.OAuthUsecase
	auth     *authFixture
	kakao    *mockSvc.MockOAuthProvider
	verifier *mockSvc.MockIDTokenVerifier
	redis    *miniredis.Miniredis
}

func createTestOAuthService(t *testing.T) oauthFixtures {
	t.Helper()

	authFx := newAuthFixture(t)
	mr, client := newTestRedis(t)

	kakao := mockSvc.NewMockOAuthProvider(t)
	kakao.EXPECT().Provider().Return(entity.ProviderKakao)
	verifier := mockSvc.NewMockIDTokenVerifier(t)

	return oauthFixtures{
		service: NewOAuthService(OAuthServiceParams{
			Providers:  []service.OAuthProvider{kakao},
			Verifier:   verifier,
			StateStore: cache.NewOAuthStateStore(client),
			Auth:       authFx.service,
			Config:     newTestConfig(),
			Logger:     newDiscardLogger(),
		}),
		auth:     authFx,
		kakao:    kakao,
		verifier: verifier,
		redis:    mr,
	}
}

func kakaoAttributes() map[string]any {
	return map[string]any{
		"id":            float64(4012345678),
		"kakao_account": map[string]any{"profile": map[string]any{"nickname": "hong"}},
	}
}

func (f oauthFixtures) startHandshake(t *testing.T) string {
	t.Helper()

	f.kakao.EXPECT().AuthCodeURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string {
			return "https://kauth.kakao.com/oauth/authorize?state=" + url.QueryEscape(state)
		}).Once()

	consentURL, err := f.service.AuthorizationURL(context.Background(), "kakao")
	require.NoError(t, err)

	parsed, err := url.Parse(consentURL)
	require.NoError(t, err)
	state := parsed.Query().Get("state")
	require.NotEmpty(t, state)

	return state
}

func TestOAuthService_HandshakeIssuesTokens(t *testing.T) {
	f := createTestOAuthService(t)
	ctx := context.Background()

	state := f.startHandshake(t)
	assert.True(t, f.redis.Exists("OAUTH2_STATE:"+state))

	f.kakao.EXPECT().FetchAttributes(mock.Anything, "code-1").Return(kakaoAttributes(), nil).Once()

	pair, err := f.service.CompleteLogin(ctx, usecase.OAuthCallbackInput{ProviderID: "kakao", Code: "code-1", State: state})
	require.NoError(t, err)
	assert.True(t, f.auth.codec.Verify(entity.TokenKindAccess, pair.AccessToken))
	assert.False(t, f.redis.Exists("OAUTH2_STATE:"+state))

	// The state is single use.
	_, err = f.service.CompleteLogin(ctx, usecase.OAuthCallbackInput{ProviderID: "kakao", Code: "code-1", State: state})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestOAuthService_CompleteLoginFailures(t *testing.T) {
	f := createTestOAuthService(t)
	ctx := context.Background()

	_, err := f.service.CompleteLogin(ctx, usecase.OAuthCallbackInput{ProviderID: "kakao", Code: "c", State: "forged"})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)

	_, err = f.service.CompleteLogin(ctx, usecase.OAuthCallbackInput{ProviderID: "kakao", Error: "access_denied"})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthLoginFailed)

	_, err = f.service.CompleteLogin(ctx, usecase.OAuthCallbackInput{ProviderID: "naver", Code: "c", State: "s"})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)

	// Google is a known provider but no authorization-code client is registered in this fixture.
	_, err = f.service.AuthorizationURL(ctx, "google")
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)

	state := f.startHandshake(t)
	f.kakao.EXPECT().FetchAttributes(mock.Anything, "stale").Return(nil, errors.New("invalid_grant")).Once()

	_, err = f.service.CompleteLogin(ctx, usecase.OAuthCallbackInput{ProviderID: "kakao", Code: "stale", State: state})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthLoginFailed)
	assert.Zero(t, f.auth.members.count())
}

func TestOAuthService_LoginWithGoogleIDToken(t *testing.T) {
	f := createTestOAuthService(t)
	ctx := context.Background()

	f.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(map[string]any{
		"sub":   "1098765",
		"name":  "Hong",
		"email": "hong@gmail.com",
	}, nil).Once()
	f.verifier.EXPECT().VerifyIDToken(ctx, "forged").Return(nil, errors.New("idtoken: invalid signature")).Once()

	pair, err := f.service.LoginWithGoogleIDToken(ctx, "id-token")
	require.NoError(t, err)

	principal, err := f.auth.codec.PrincipalOf(entity.TokenKindRefresh, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "1098765", principal.Subject)

	member, err := f.auth.members.FindByUsername(ctx, "1098765")
	require.NoError(t, err)
	assert.Equal(t, "hong@gmail.com", member.Email)
	assert.Equal(t, entity.ProviderGoogle, member.Provider)

	_, err = f.service.LoginWithGoogleIDToken(ctx, "forged")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthLoginFailed)
}
