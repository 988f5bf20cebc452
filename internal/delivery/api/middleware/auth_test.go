package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studylink/config"
	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/service"
	"studylink/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) service.TokenCodec {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("access-key-", 4)))
	cfg.SecretKey.Refresh = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("refresh-key-", 4)))
	cfg.TokenExpiration.Access = time.Hour
	cfg.TokenExpiration.Refresh = 24 * time.Hour

	codec, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return codec
}

// runGate passes a request with the given Authorization header through Authenticate and
// returns the principal seen downstream.
func runGate(t *testing.T, m *AuthMiddleware, authorization string) (*entity.Principal, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		seen = deliverycontext.GetPrincipal(c)
		assert.Equal(t, seen, deliverycontext.PrincipalFromContext(c.Request().Context()))

		return nil
	})(c)
	require.NoError(t, err)

	return seen, rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	codec := newTestCodec(t)
	m := NewAuthMiddleware(codec)

	access, err := codec.Issue(entity.TokenKindAccess, entity.NewPrincipal("a@x.com", entity.RoleMember))
	require.NoError(t, err)
	refresh, err := codec.Issue(entity.TokenKindRefresh, entity.NewPrincipal("a@x.com", entity.RoleMember))
	require.NoError(t, err)

	principal, _ := runGate(t, m, "Bearer "+access)
	require.NotNil(t, principal)
	assert.Equal(t, "a@x.com", principal.Subject)
	assert.Equal(t, entity.RoleMember, principal.Role)

	principal, _ = runGate(t, m, "bearer "+access)
	assert.NotNil(t, principal)

	for name, header := range map[string]string{
		"missing":       "",
		"no scheme":     access,
		"basic":         "Basic " + access,
		"empty bearer":  "Bearer ",
		"refresh token": "Bearer " + refresh,
		"garbage":       "Bearer not-a-jwt",
	} {
		t.Run(name, func(t *testing.T) {
			principal, rec := runGate(t, m, header)
			assert.Nil(t, principal)
			assert.Zero(t, rec.Body.Len())
		})
	}
}

func TestAuthMiddleware_Policies(t *testing.T) {
	m := NewAuthMiddleware(newTestCodec(t))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	tests := []struct {
		name      string
		principal *entity.Principal
		handler   echo.HandlerFunc
		wantErr   error
	}{
		{name: "authenticated anonymous", handler: m.RequireAuthenticated(ok), wantErr: domainerrors.ErrNotLogin},
		{name: "authenticated member", principal: entity.NewPrincipal("a@x.com", entity.RoleMember), handler: m.RequireAuthenticated(ok)},
		{name: "admin anonymous", handler: m.RequireRole(entity.RoleAdmin)(ok), wantErr: domainerrors.ErrNotLogin},
		{
			name:      "admin as member",
			principal: entity.NewPrincipal("a@x.com", entity.RoleMember),
			handler:   m.RequireRole(entity.RoleAdmin)(ok),
			wantErr:   domainerrors.ErrAccessDenied,
		},
		{name: "admin as admin", principal: entity.NewPrincipal("root@x.com", entity.RoleAdmin), handler: m.RequireRole(entity.RoleAdmin)(ok)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if tt.principal != nil {
				deliverycontext.SetPrincipal(c, tt.principal)
			}

			err := tt.handler(c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
