package handler

import (
	"strconv"

	deliverycontext "studylink/internal/delivery/context"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/errors"

	"github.com/labstack/echo/v4"
)

const refreshTokenCookie = "refreshToken"

// HeaderRefreshToken carries the refresh token for clients that cannot hold cookies.
const HeaderRefreshToken = "X-Refresh-Token"

// bindAndValidate decodes the request into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Join(domainerrors.ErrValidationFailed, err)
	}

	return c.Validate(req)
}

// refreshTokenOf reads the refresh token from its cookie, falling back to the header
// used by clients that cannot hold cookies.
func refreshTokenOf(c echo.Context) string {
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return c.Request().Header.Get(HeaderRefreshToken)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}

func subjectOf(c echo.Context) string {
	if principal := deliverycontext.GetPrincipal(c); principal != nil {
		return principal.Subject
	}

	return ""
}
