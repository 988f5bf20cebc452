package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"studylink/config"
	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/domain/service"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/fx"
)

const (
	rotateRetryInitialInterval = 50 * time.Millisecond
	rotateRetryMaxElapsed      = time.Second
)

// authService implements the AuthUsecase interface.
type authService struct {
	authenticator usecase.CredentialAuthenticator
	resolver      usecase.FederatedIdentityResolver
	codec         service.TokenCodec
	store         repository.RefreshTokenStore
	rotateRetries uint64
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Authenticator usecase.CredentialAuthenticator
	Resolver      usecase.FederatedIdentityResolver
	Codec         service.TokenCodec
	Store         repository.RefreshTokenStore
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var rotateRetries uint64
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.StoreRetries > 0 {
		rotateRetries = uint64(params.Config.Auth.StoreRetries)
	}

	return &authService{
		authenticator: params.Authenticator,
		resolver:      params.Resolver,
		codec:         params.Codec,
		store:         params.Store,
		rotateRetries: rotateRetries,
		logger:        params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a local member and records the new refresh token,
// overwriting whatever token the subject held before.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.TokenPair, error) {
	principal, err := srv.authenticator.Authenticate(ctx, input.Identity, input.Secret)
	if err != nil {
		return nil, err
	}

	pair, err := srv.issueAndRecord(ctx, principal)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Member logged in", slog.String("subject", principal.Subject))

	return pair, nil
}

// FederatedLogin resolves and upserts the provider profile, then issues a pair the same way Login does.
func (srv *authService) FederatedLogin(ctx context.Context, provider entity.Provider, attributes map[string]any) (*entity.TokenPair, error) {
	profile, err := srv.resolver.Resolve(provider, attributes)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve federated profile", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, err
	}

	member, err := srv.resolver.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	pair, err := srv.issueAndRecord(ctx, member.Principal())
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Federated member logged in",
		slog.String("provider", provider.String()), slog.String("subject", member.Username))

	return pair, nil
}

// Reissue trades a recorded refresh token for a new pair. The presented token is
// replaced atomically, so it can succeed at most once. The pair is minted once and only
// the rotation is retried, always with the same next token.
func (srv *authService) Reissue(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" || !srv.codec.Verify(entity.TokenKindRefresh, refreshToken) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	principal, err := srv.codec.PrincipalOf(entity.TokenKindRefresh, refreshToken)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrRefreshTokenInvalid, err)
	}

	pair, err := srv.issuePair(principal)
	if err != nil {
		return nil, err
	}

	ttl := srv.codec.TTL(entity.TokenKindRefresh)
	rotated, err := srv.rotate(ctx, principal.Subject, refreshToken, pair.RefreshToken, ttl)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			srv.restore(ctx, principal.Subject, refreshToken, pair.RefreshToken, ttl)
		}

		return nil, err
	}
	if !rotated {
		srv.log(ctx).Warn("Refresh token no longer recorded", slog.String("subject", principal.Subject))

		return nil, domainerrors.ErrRefreshTokenRevoked
	}

	return pair, nil
}

// rotate retries STORE_UNAVAILABLE failures of the compare-and-set. A replay with the
// same next token reports success when an earlier attempt already landed.
func (srv *authService) rotate(ctx context.Context, subject, presented, next string, ttl time.Duration) (bool, error) {
	expBackOff := backoff.NewExponentialBackOff()
	expBackOff.InitialInterval = rotateRetryInitialInterval
	expBackOff.MaxInterval = 4 * rotateRetryInitialInterval
	expBackOff.MaxElapsedTime = rotateRetryMaxElapsed

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackOff, srv.rotateRetries), ctx)

	var rotated bool
	err := backoff.Retry(func() error {
		var err error
		rotated, err = srv.store.Rotate(ctx, subject, presented, next, ttl)
		if err == nil || errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return err
		}

		return backoff.Permanent(err)
	}, policy)
	if err != nil && !errors.Is(err, domainerrors.ErrStoreUnavailable) && ctx.Err() != nil {
		return false, errors.Join(domainerrors.ErrStoreUnavailable, err)
	}

	return rotated, err
}

// restore puts the presented token back when a rotation may have landed without its
// reply, so the caller can still retry with the token it holds.
func (srv *authService) restore(ctx context.Context, subject, presented, next string, ttl time.Duration) {
	ctx = context.WithoutCancel(ctx)
	if _, err := srv.store.Rotate(ctx, subject, next, presented, ttl); err != nil {
		srv.log(ctx).Warn("Failed to restore refresh token after store outage",
			slog.String("subject", subject), slog.Any("error", err))
	}
}

// Logout forgets the subject's refresh token when the presented one is still the recorded one.
// Unknown, expired or superseded tokens are ignored.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if !srv.codec.Verify(entity.TokenKindRefresh, refreshToken) {
		return nil
	}

	principal, err := srv.codec.PrincipalOf(entity.TokenKindRefresh, refreshToken)
	if err != nil {
		return nil
	}

	matched, err := srv.store.Matches(ctx, principal.Subject, refreshToken)
	if err != nil {
		return err
	}
	if !matched {
		return nil
	}

	if err := srv.store.Delete(ctx, principal.Subject); err != nil {
		return err
	}

	srv.log(ctx).Info("Member logged out", slog.String("subject", principal.Subject))

	return nil
}

func (srv *authService) issueAndRecord(ctx context.Context, principal *entity.Principal) (*entity.TokenPair, error) {
	pair, err := srv.issuePair(principal)
	if err != nil {
		return nil, err
	}

	if err := srv.store.Put(ctx, principal.Subject, pair.RefreshToken, srv.codec.TTL(entity.TokenKindRefresh)); err != nil {
		return nil, err
	}

	return pair, nil
}

func (srv *authService) issuePair(principal *entity.Principal) (*entity.TokenPair, error) {
	access, err := srv.codec.Issue(entity.TokenKindAccess, principal)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrInternalError, err)
	}

	refresh, err := srv.codec.Issue(entity.TokenKindRefresh, principal)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrInternalError, err)
	}

	return &entity.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
