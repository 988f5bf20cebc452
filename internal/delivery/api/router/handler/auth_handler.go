// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"studylink/internal/delivery/api/response"
	"studylink/internal/domain/entity"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Retrier *StoreRetrier
	Logger  *slog.Logger
}

// AuthHandler serves local login and the refresh token lifecycle.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	retrier *StoreRetrier
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		retrier: params.Retrier,
		logger:  params.Logger,
	}
}

// LoginRequest represents the request body for local login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var pair *entity.TokenPair
	err := h.retrier.Do(ctx, func() error {
		var err error
		pair, err = h.authUC.Login(ctx, usecase.LoginInput{Identity: req.Email, Secret: req.Password})

		return err
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pair)
}

// Reissue handles GET /api/v1/auth/reissue/token. Not retried here; the usecase retries
// its rotation with the pair it already minted.
func (h *AuthHandler) Reissue(c echo.Context) error {
	pair, err := h.authUC.Reissue(c.Request().Context(), refreshTokenOf(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pair)
}

// Logout handles POST /api/v1/auth/logout. It succeeds for stale tokens too.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := refreshTokenOf(c)

	ctx := c.Request().Context()
	if err := h.retrier.Do(ctx, func() error { return h.authUC.Logout(ctx, token) }); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
