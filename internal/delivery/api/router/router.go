// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"studylink/internal/delivery/api/middleware"
	"studylink/internal/delivery/api/router/handler"
	"studylink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OAuthHandler   *handler.OAuthHandler
	MemberHandler  *handler.MemberHandler
	CatalogHandler *handler.CatalogHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	oauthHandler   *handler.OAuthHandler
	memberHandler  *handler.MemberHandler
	catalogHandler *handler.CatalogHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		oauthHandler:   params.OAuthHandler,
		memberHandler:  params.MemberHandler,
		catalogHandler: params.CatalogHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every route passes through Authenticate; groups add their own policy on top.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate)

	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/reissue/token", r.authHandler.Reissue)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/oauth2/google/id-token", r.oauthHandler.GoogleIDToken)
	}

	apiV1.POST("/members", r.memberHandler.SignUp)

	emailGroup := apiV1.Group("/emails")
	{
		emailGroup.POST("/authNum/send", r.memberHandler.SendAuthNum)
		emailGroup.POST("/authNum/validate", r.memberHandler.ValidateAuthNum)
	}

	apiV1.GET("/categories", r.catalogHandler.GetCategories)
	apiV1.GET("/regions", r.catalogHandler.SearchRegions)

	// Federated login handshake
	e.GET("/oauth2/authorization/:provider", r.oauthHandler.Authorize)
	e.GET("/login/oauth2/code/:provider", r.oauthHandler.Callback)

	// Routes under /auth require a logged-in member
	memberOnly := e.Group("/auth", r.authMiddleware.RequireAuthenticated)
	{
		memberOnly.GET("/test", r.testHandler.TokenCheck)
	}

	adminV1 := e.Group("/admin/api/v1", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminV1.POST("/categories", r.catalogHandler.RegisterCategory)
		adminV1.PATCH("/categories/:id", r.catalogHandler.UpdateCategory)
		adminV1.DELETE("/categories/:id", r.catalogHandler.DeleteCategory)
		adminV1.POST("/regions", r.catalogHandler.ImportRegions)
	}
}
