package repository

import (
	"context"
	"time"
)

// VerificationCodeStore keeps the pending email verification code per address.
type VerificationCodeStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, bool, error)
	// Extend resets the remaining lifetime of an existing code.
	Extend(ctx context.Context, email string, ttl time.Duration) error
	Delete(ctx context.Context, email string) error
}
