package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "studylink/internal/delivery/context"
	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/domain/service"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"go.uber.org/fx"
)

type memberService struct {
	memberRepo repository.MemberRepository
	codeStore  repository.VerificationCodeStore
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	CodeStore  repository.VerificationCodeStore
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		memberRepo: params.MemberRepo,
		codeStore:  params.CodeStore,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a local member whose email passed verification.
// The login identity of a local member is its email.
func (srv *memberService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Member, error) {
	email := strings.TrimSpace(input.Email)

	if err := srv.CheckUsernameDuplicate(ctx, email); err != nil {
		return nil, err
	}

	code, found, err := srv.codeStore.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found || !codesEqual(code, input.AuthNum) {
		return nil, domainerrors.ErrEmailAuthFailed
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrPasswordHashFailed, err)
	}

	member := &entity.Member{
		Username:     email,
		PasswordHash: hash,
		Email:        email,
		Nickname:     input.Nickname,
		Introduction: input.Introduction,
		ProfileImg:   entity.DefaultProfileImage,
		Role:         entity.RoleMember,
		Provider:     entity.ProviderNone,
	}
	if err := srv.memberRepo.Save(ctx, member); err != nil {
		return nil, errors.Wrap(err, "failed to save member")
	}

	if err := srv.codeStore.Delete(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to clear verification code after sign-up", slog.Any("error", err))
	}

	srv.log(ctx).Info("Member signed up", slog.String("memberID", member.ID.String()))

	return member, nil
}

// CheckUsernameDuplicate fails with EMAIL_DUPLICATE when the identity is taken.
func (srv *memberService) CheckUsernameDuplicate(ctx context.Context, username string) error {
	exists, err := srv.memberRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if exists {
		return domainerrors.ErrEmailDuplicate
	}

	return nil
}
