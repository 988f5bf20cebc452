package errors

import (
	"net/http"

	"studylink/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Authentication and token lifecycle errors
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"아이디(로그인 전용 이메일) 또는 비밀번호를 잘못 입력했습니다.",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"리프레시 토큰이 유효하지 않습니다. 다시 로그인 해주세요.",
		"",
	)

	ErrRefreshTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_REVOKED",
		"리프레시 토큰이 유효하지 않습니다. 다시 로그인 해주세요.",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"토큰을 해석할 수 없습니다.",
		"",
	)

	ErrUnsupportedProvider = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PROVIDER",
		"지원하지 않는 SNS 로그인입니다.",
		"",
	)

	ErrProviderAttributeMissing = NewBaseError(
		http.StatusUnauthorized,
		"PROVIDER_ATTRIBUTE_MISSING",
		"SNS 계정 정보를 읽을 수 없습니다.",
		"",
	)

	ErrFederatedAccountConflict = NewBaseError(
		http.StatusConflict,
		"FEDERATED_ACCOUNT_CONFLICT",
		"다른 방식으로 가입된 계정입니다.",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
		"",
	)

	ErrOAuthLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH2_LOGIN_FAIL",
		"SNS 로그인에 실패했습니다.",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH2_STATE_INVALID",
		"SNS 로그인 요청이 만료되었습니다. 다시 시도해주세요.",
		"",
	)

	ErrNotLogin = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGIN",
		"로그인 후 이용해주세요.",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"해당 컨텐츠를 이용할 권한이 없습니다.",
		"",
	)
)

// Member and email verification errors
var (
	ErrEmailDuplicate = NewBaseError(
		http.StatusConflict,
		"EMAIL_DUPLICATE",
		"이미 가입된 아이디(로그인 전용 이메일)입니다.",
		"",
	)

	ErrEmailAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_AUTH_FAIL",
		"이메일 인증에 실패했습니다. 입력하신 내용을 다시 확인해주세요.",
		"",
	)

	ErrEmailSendFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_SEND_FAIL",
		"이메일 전송에 실패했습니다. 다시 한번 시도해주세요.",
		"",
	)

	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"회원을 찾을 수 없습니다.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"비밀번호 처리 중 오류가 발생했습니다.",
		"",
	)
)

// Category and region errors
var (
	ErrCategoryNameDuplicate = NewBaseError(
		http.StatusConflict,
		"CATEGORY_NAME_DUPLICATE",
		"이미 존재하는 카테고리 이름입니다.",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_CATEGORY",
		"카테고리를 찾을 수 없습니다.",
		"",
	)

	ErrRegionFileNotReadable = NewBaseError(
		http.StatusBadRequest,
		"REGION_FILE_NOT_READABLE",
		"지역 파일을 읽을 수 없습니다.",
		"",
	)
)

// General errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력하신 내용을 다시 확인해주세요.",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"데이터베이스 트랜잭션에 실패했습니다.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"예상치 못한 오류가 발생했습니다.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_RESOURCE",
		"요청하신 url을 찾을 수 없습니다.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "데이터베이스 처리 중 오류가 발생했습니다."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
