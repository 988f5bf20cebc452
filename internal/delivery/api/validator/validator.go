// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"studylink/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 16
)

var nicknamePattern = regexp.MustCompile(`^[ㄱ-ㅎ가-힣a-zA-Z0-9_-]{2,20}$`)

// CustomValidator registers the account rules used by request DTOs.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the "password" and "nickname" tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("password", validatePassword)
	_ = v.RegisterValidation("nickname", validateNickname)

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// jsonFieldName reports fields by their wire name.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// validatePassword requires 8 to 16 characters without whitespace, mixing a letter,
// a digit and a symbol.
func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if n := utf8.RuneCountInString(password); n < minPasswordLength || n > maxPasswordLength {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case r != '_' && !unicode.IsLetter(r):
			hasSymbol = true
		}
	}

	return hasLetter && hasDigit && hasSymbol
}

func validateNickname(fl validator.FieldLevel) bool {
	return nicknamePattern.MatchString(fl.Field().String())
}
