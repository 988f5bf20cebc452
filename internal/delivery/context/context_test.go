package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"studylink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID_GeneratedOnceWhenMissing(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestSetPrincipal_VisibleToBothContexts(t *testing.T) {
	c := newEchoContext()
	assert.Nil(t, GetPrincipal(c))
	assert.Nil(t, PrincipalFromContext(c.Request().Context()))

	principal := entity.NewPrincipal("a@x.com", entity.RoleMember)
	SetPrincipal(c, principal)

	assert.Same(t, principal, GetPrincipal(c))
	assert.Same(t, principal, PrincipalFromContext(c.Request().Context()))
}
