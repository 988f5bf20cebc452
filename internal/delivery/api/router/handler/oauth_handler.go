package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"studylink/config"
	"studylink/internal/delivery/api/response"
	"studylink/internal/domain/entity"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	OAuthUC usecase.OAuthUsecase
	Config  *config.Config
	Retrier *StoreRetrier
	Logger  *slog.Logger
}

// OAuthHandler serves the federated login handshake.
type OAuthHandler struct {
	oauthUC         usecase.OAuthUsecase
	retrier         *StoreRetrier
	successRedirect string
	logger          *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler.
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	h := &OAuthHandler{
		oauthUC: params.OAuthUC,
		retrier: params.Retrier,
		logger:  params.Logger,
	}
	if params.Config.OAuth != nil {
		h.successRedirect = params.Config.OAuth.SuccessRedirectURL
	}

	return h
}

// GoogleIDTokenRequest represents the request body of the mobile google login.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// Authorize handles GET /oauth2/authorization/:provider by redirecting to the consent page.
func (h *OAuthHandler) Authorize(c echo.Context) error {
	ctx := c.Request().Context()

	var consentURL string
	err := h.retrier.Do(ctx, func() error {
		var err error
		consentURL, err = h.oauthUC.AuthorizationURL(ctx, c.Param("provider"))

		return err
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, consentURL)
}

// Callback handles GET /login/oauth2/code/:provider. The state is single use, so the
// handshake is never retried.
func (h *OAuthHandler) Callback(c echo.Context) error {
	pair, err := h.oauthUC.CompleteLogin(c.Request().Context(), usecase.OAuthCallbackInput{
		ProviderID: c.Param("provider"),
		Code:       c.QueryParam("code"),
		State:      c.QueryParam("state"),
		Error:      c.QueryParam("error"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if h.successRedirect == "" {
		return response.Success(c, http.StatusOK, pair)
	}

	return c.Redirect(http.StatusFound, successLocation(h.successRedirect, pair))
}

// GoogleIDToken handles POST /api/v1/auth/oauth2/google/id-token.
func (h *OAuthHandler) GoogleIDToken(c echo.Context) error {
	var req GoogleIDTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var pair *entity.TokenPair
	err := h.retrier.Do(ctx, func() error {
		var err error
		pair, err = h.oauthUC.LoginWithGoogleIDToken(ctx, req.IDToken)

		return err
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pair)
}

// successLocation hands the tokens to the front end in the fragment, which browsers
// never send to servers.
func successLocation(target string, pair *entity.TokenPair) string {
	fragment := url.Values{}
	fragment.Set("accessToken", pair.AccessToken)
	fragment.Set("refreshToken", pair.RefreshToken)

	u, err := url.Parse(target)
	if err != nil {
		return target + "#" + fragment.Encode()
	}
	u.Fragment = ""

	return u.String() + "#" + fragment.Encode()
}
