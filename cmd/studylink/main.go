package main

import (
	"context"
	"log/slog"
	"os"

	"studylink/config"
	"studylink/internal/delivery"
	"studylink/internal/delivery/api"
	"studylink/internal/delivery/api/middleware"
	"studylink/internal/delivery/api/router/handler"
	"studylink/internal/infra/auth"
	"studylink/internal/infra/auth/oauth"
	"studylink/internal/infra/cache"
	logs "studylink/internal/infra/log"
	"studylink/internal/infra/mail"
	"studylink/internal/infra/persistence/postgres"
	"studylink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMemberRepository,
			postgres.NewCategoryRepository,
			postgres.NewRegionRepository,
			postgres.NewTransactionManager,
			cache.NewRefreshTokenStore,
			cache.NewVerificationCodeStore,
			cache.NewOAuthStateStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			oauth.NewGoogleIDTokenVerifier,
			mail.NewSMTPSender,
			fx.Annotate(
				oauth.NewGoogleProvider,
				fx.ResultTags(`group:"oauthProviders"`),
			),
			fx.Annotate(
				oauth.NewKakaoProvider,
				fx.ResultTags(`group:"oauthProviders"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialAuthenticator,
			impl.NewFederatedResolver,
			impl.NewAuthService,
			impl.NewOAuthService,
			impl.NewMemberService,
			impl.NewEmailService,
			impl.NewCategoryService,
			impl.NewRegionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStoreRetrier,
			handler.NewAuthHandler,
			handler.NewOAuthHandler,
			handler.NewMemberHandler,
			handler.NewCatalogHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
