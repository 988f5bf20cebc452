package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"studylink/config"
	deliverycontext "studylink/internal/delivery/context"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/domain/repository"
	"studylink/internal/domain/service"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"go.uber.org/fx"
)

const (
	authCodeDigits = 6
	authMailTitle  = "[studylink] 회원가입 인증번호"
)

var authCodeUpperBound = big.NewInt(1_000_000)

type emailService struct {
	memberRepo  repository.MemberRepository
	codeStore   repository.VerificationCodeStore
	mailer      service.MailSender
	codeTTL     time.Duration
	verifiedTTL time.Duration
	logger      *slog.Logger
}

// EmailServiceParams holds dependencies for EmailService, injected by Fx.
type EmailServiceParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	CodeStore  repository.VerificationCodeStore
	Mailer     service.MailSender
	Config     *config.Config
	Logger     *slog.Logger
}

// NewEmailService is the constructor for emailService.
func NewEmailService(params EmailServiceParams) usecase.EmailUsecase {
	return &emailService{
		memberRepo:  params.MemberRepo,
		codeStore:   params.CodeStore,
		mailer:      params.Mailer,
		codeTTL:     params.Config.EmailVerification.CodeTTL,
		verifiedTTL: params.Config.EmailVerification.VerifiedTTL,
		logger:      params.Logger,
	}
}

func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendAuthCode mails a fresh code to an address that is not registered yet.
// A new code replaces any pending one.
func (srv *emailService) SendAuthCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	exists, err := srv.memberRepo.ExistsByUsername(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if exists {
		return domainerrors.ErrEmailDuplicate
	}

	code, err := newAuthCode()
	if err != nil {
		return errors.Join(domainerrors.ErrInternalError, err)
	}

	if err := srv.codeStore.Save(ctx, email, code, srv.codeTTL); err != nil {
		return err
	}

	if err := srv.mailer.Send(ctx, email, authMailTitle, authMailBody(code, srv.codeTTL)); err != nil {
		srv.log(ctx).Error("Failed to send verification mail", slog.Any("error", err))
		if delErr := srv.codeStore.Delete(ctx, email); delErr != nil {
			srv.log(ctx).Warn("Failed to drop undelivered verification code", slog.Any("error", delErr))
		}

		return errors.Join(domainerrors.ErrEmailSendFailed, err)
	}

	return nil
}

// ValidateAuthCode checks the code and keeps it alive long enough to finish sign-up.
func (srv *emailService) ValidateAuthCode(ctx context.Context, email, code string) error {
	email = strings.TrimSpace(email)

	stored, found, err := srv.codeStore.Get(ctx, email)
	if err != nil {
		return err
	}
	if !found || !codesEqual(stored, code) {
		return domainerrors.ErrEmailAuthFailed
	}

	return srv.codeStore.Extend(ctx, email, srv.verifiedTTL)
}

func newAuthCode() (string, error) {
	n, err := rand.Int(rand.Reader, authCodeUpperBound)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification code")
	}

	return fmt.Sprintf("%0*d", authCodeDigits, n.Int64()), nil
}

func authMailBody(code string, ttl time.Duration) string {
	return fmt.Sprintf("studylink 회원가입 인증번호는 [%s] 입니다.\r\n%d분 안에 입력해주세요.", code, int(ttl.Minutes()))
}

func codesEqual(stored, presented string) bool {
	return presented != "" && subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
