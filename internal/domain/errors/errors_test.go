package errors

import (
	"net/http"
	"testing"

	"studylink/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrRefreshTokenRevoked.WithDetails("superseded")

	assert.True(t, errors.Is(detailed, ErrRefreshTokenRevoked))
	assert.False(t, errors.Is(detailed, ErrRefreshTokenInvalid))
	assert.True(t, errors.Is(ErrStoreUnavailable.WrapMessage("get"), ErrStoreUnavailable))
}

func TestBaseError_AsAppError(t *testing.T) {
	err := ErrAccessDenied.WrapMessage("role check")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "ACCESS_DENIED", appErr.ErrorCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "save member")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "save member", err.Details())
}
