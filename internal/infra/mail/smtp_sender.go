// Package mail delivers transactional mail through an SMTP relay.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"studylink/config"
	"studylink/internal/domain/service"
	"studylink/internal/errors"

	"go.uber.org/fx"
)

// sendFunc matches smtp.SendMail so tests can capture outgoing mail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	addr   string
	auth   smtp.Auth
	from   string
	send   sendFunc
	logger *slog.Logger
}

// Params holds dependencies for the SMTP sender, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMTPSender builds the MailSender from the mail section of the configuration.
func NewSMTPSender(params Params) (service.MailSender, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("mail.host must be provided")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &smtpSender{
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth:   auth,
		from:   from,
		send:   smtp.SendMail,
		logger: params.Logger,
	}, nil
}

// Send delivers a UTF-8 plain text message. smtp.SendMail does not honour ctx, so only
// an already cancelled ctx aborts the delivery.
func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if strings.ContainsAny(to, "\r\n") {
		return errors.Errorf("invalid recipient %q", to)
	}

	if err := s.send(s.addr, s.auth, s.from, []string{to}, buildMessage(s.from, to, subject, body)); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", to)
	}

	s.logger.Debug("Mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return []byte(msg.String())
}
