package usecase

import (
	"context"

	"studylink/internal/domain/entity"
)

// SignUpInput defines the data required to register a local member.
type SignUpInput struct {
	Email        string
	Password     string
	Nickname     string
	Introduction string
	AuthNum      string
}

// MemberUsecase defines local account registration.
type MemberUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*entity.Member, error)
	CheckUsernameDuplicate(ctx context.Context, username string) error
}

// EmailUsecase defines the email ownership check that precedes sign-up.
type EmailUsecase interface {
	SendAuthCode(ctx context.Context, email string) error
	ValidateAuthCode(ctx context.Context, email, code string) error
}
