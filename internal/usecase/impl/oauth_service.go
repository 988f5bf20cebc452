package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"studylink/config"
	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/domain/service"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"go.uber.org/fx"
)

const stateEntropyBytes = 32

type oauthService struct {
	providers  map[entity.Provider]service.OAuthProvider
	verifier   service.IDTokenVerifier
	stateStore repository.OAuthStateStore
	auth       usecase.AuthUsecase
	stateTTL   time.Duration
	logger     *slog.Logger
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Providers  []service.OAuthProvider `group:"oauthProviders"`
	Verifier   service.IDTokenVerifier
	StateStore repository.OAuthStateStore
	Auth       usecase.AuthUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	providers := make(map[entity.Provider]service.OAuthProvider, len(params.Providers))
	for _, provider := range params.Providers {
		providers[provider.Provider()] = provider
	}

	return &oauthService{
		providers:  providers,
		verifier:   params.Verifier,
		stateStore: params.StateStore,
		auth:       params.Auth,
		stateTTL:   params.Config.OAuth.StateTTL,
		logger:     params.Logger,
	}
}

func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *oauthService) client(providerID string) (entity.Provider, service.OAuthProvider, error) {
	provider, err := entity.ParseProvider(providerID)
	if err != nil {
		return "", nil, errors.Join(domainerrors.ErrUnsupportedProvider, err)
	}

	client, ok := srv.providers[provider]
	if !ok {
		return "", nil, domainerrors.ErrUnsupportedProvider.WrapMessage("no client registered for " + provider.String())
	}

	return provider, client, nil
}

// AuthorizationURL starts a handshake. The returned URL carries a fresh single-use state.
func (srv *oauthService) AuthorizationURL(ctx context.Context, providerID string) (string, error) {
	provider, client, err := srv.client(providerID)
	if err != nil {
		return "", err
	}

	state, err := newState()
	if err != nil {
		return "", errors.Join(domainerrors.ErrInternalError, err)
	}

	if err := srv.stateStore.Save(ctx, state, provider, srv.stateTTL); err != nil {
		return "", err
	}

	return client.AuthCodeURL(state), nil
}

// CompleteLogin finishes a handshake started by AuthorizationURL.
func (srv *oauthService) CompleteLogin(ctx context.Context, input usecase.OAuthCallbackInput) (*entity.TokenPair, error) {
	provider, client, err := srv.client(input.ProviderID)
	if err != nil {
		return nil, err
	}

	if input.Error != "" {
		srv.log(ctx).Info("Provider reported an authorization error",
			slog.String("provider", provider.String()), slog.String("error", input.Error))

		return nil, domainerrors.ErrOAuthLoginFailed.WrapMessage(input.Error)
	}

	bound, found, err := srv.stateStore.Consume(ctx, input.State)
	if err != nil {
		return nil, err
	}
	if !found || bound != provider {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	attributes, err := client.FetchAttributes(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch provider attributes", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrOAuthLoginFailed, err)
	}

	return srv.auth.FederatedLogin(ctx, provider, attributes)
}

// LoginWithGoogleIDToken accepts an ID token obtained by a mobile client on its own.
func (srv *oauthService) LoginWithGoogleIDToken(ctx context.Context, idToken string) (*entity.TokenPair, error) {
	claims, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrOAuthLoginFailed, err)
	}

	return srv.auth.FederatedLogin(ctx, entity.ProviderGoogle, claims)
}

func newState() (string, error) {
	buf := make([]byte, stateEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
