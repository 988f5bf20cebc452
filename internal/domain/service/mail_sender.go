package service

import "context"

// MailSender delivers transactional mail.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
