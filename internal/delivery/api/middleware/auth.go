package middleware

import (
	"strings"

	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware attaches the principal of a valid access token and enforces route policies.
type AuthMiddleware struct {
	codec service.TokenCodec
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(codec service.TokenCodec) *AuthMiddleware {
	return &AuthMiddleware{codec: codec}
}

// Authenticate reads the bearer access token and, when it verifies, attaches its principal.
// Requests without a usable token continue anonymously; policies decide what to reject.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if ok && m.codec.Verify(entity.TokenKindAccess, token) {
			if principal, err := m.codec.PrincipalOf(entity.TokenKindAccess, token); err == nil {
				deliverycontext.SetPrincipal(c, principal)
			}
		}

		return next(c)
	}
}

// RequireAuthenticated rejects anonymous requests with NOT_LOGIN.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetPrincipal(c) == nil {
			return domainerrors.ErrNotLogin
		}

		return next(c)
	}
}

// RequireRole rejects anonymous requests with NOT_LOGIN and principals lacking role with ACCESS_DENIED.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return domainerrors.ErrNotLogin
			}
			if !principal.HasRole(role) {
				return domainerrors.ErrAccessDenied
			}

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
