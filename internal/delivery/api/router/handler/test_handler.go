package handler

import (
	"net/http"

	"studylink/internal/delivery/api/response"
	deliverycontext "studylink/internal/delivery/context"
	domainerrors "studylink/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler serves the token check used by clients after login.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TokenCheck echoes the principal of the access token.
func (h *TestHandler) TokenCheck(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrNotLogin
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"subject":     principal.Subject,
		"role":        principal.Role,
		"authorities": principal.Authorities,
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
