package handler

import (
	"log/slog"
	"net/http"

	"studylink/internal/delivery/api/response"
	"studylink/internal/domain/entity"
	"studylink/internal/errors"
	"studylink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MemberHandlerParams holds dependencies for MemberHandler, injected by Fx.
type MemberHandlerParams struct {
	fx.In

	MemberUC usecase.MemberUsecase
	EmailUC  usecase.EmailUsecase
	Retrier  *StoreRetrier
	Logger   *slog.Logger
}

// MemberHandler serves sign-up and the email verification preceding it.
type MemberHandler struct {
	memberUC usecase.MemberUsecase
	emailUC  usecase.EmailUsecase
	retrier  *StoreRetrier
	logger   *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler.
func NewMemberHandler(params MemberHandlerParams) *MemberHandler {
	return &MemberHandler{
		memberUC: params.MemberUC,
		emailUC:  params.EmailUC,
		retrier:  params.Retrier,
		logger:   params.Logger,
	}
}

// SignUpRequest represents the request body for local registration.
type SignUpRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,password"`
	Nickname     string `json:"nickname" validate:"required,nickname"`
	Introduction string `json:"introduction" validate:"max=255"`
	AuthNum      string `json:"authNum" validate:"required"`
}

// EmailSendRequest represents the request body for sending a verification code.
type EmailSendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// EmailAuthRequest represents the request body for checking a verification code.
type EmailAuthRequest struct {
	Email   string `json:"email" validate:"required,email"`
	AuthNum string `json:"authNum" validate:"required"`
}

// MemberResponse is the public view of a member.
type MemberResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	Introduction string `json:"introduction"`
	ProfileImg   string `json:"profileImg"`
	Role         string `json:"role"`
}

func newMemberResponse(member *entity.Member) *MemberResponse {
	return &MemberResponse{
		ID:           member.ID.String(),
		Email:        member.Email,
		Nickname:     member.Nickname,
		Introduction: member.Introduction,
		ProfileImg:   member.ProfileImg,
		Role:         member.Role.String(),
	}
}

// SignUp handles POST /api/v1/members.
func (h *MemberHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	member, err := h.memberUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:        req.Email,
		Password:     req.Password,
		Nickname:     req.Nickname,
		Introduction: req.Introduction,
		AuthNum:      req.AuthNum,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMemberResponse(member))
}

// SendAuthNum handles POST /api/v1/emails/authNum/send.
func (h *MemberHandler) SendAuthNum(c echo.Context) error {
	var req EmailSendRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.emailUC.SendAuthCode(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// ValidateAuthNum handles POST /api/v1/emails/authNum/validate.
func (h *MemberHandler) ValidateAuthNum(c echo.Context) error {
	var req EmailAuthRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.retrier.Do(ctx, func() error { return h.emailUC.ValidateAuthCode(ctx, req.Email, req.AuthNum) }); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
