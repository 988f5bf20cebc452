package repository

import (
	"context"
	"time"
)

// RefreshTokenStore keeps the single refresh token currently valid for each subject.
// Transport failures are reported as STORE_UNAVAILABLE, never as a missing record.
type RefreshTokenStore interface {
	// Put records token for subject, replacing any previous one.
	Put(ctx context.Context, subject, token string, ttl time.Duration) error

	// Get returns the recorded token and whether one exists.
	Get(ctx context.Context, subject string) (string, bool, error)

	// Matches reports whether token is exactly the recorded one.
	// An absent record and a different record are indistinguishable.
	Matches(ctx context.Context, subject, token string) (bool, error)

	// Rotate replaces presented with next atomically, only if presented is still recorded.
	Rotate(ctx context.Context, subject, presented, next string, ttl time.Duration) (bool, error)

	// Delete removes the record of subject.
	Delete(ctx context.Context, subject string) error
}
