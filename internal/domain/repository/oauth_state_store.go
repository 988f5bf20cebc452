package repository

import (
	"context"
	"time"

	"studylink/internal/domain/entity"
)

// OAuthStateStore holds the anti-forgery state of pending authorization-code handshakes.
type OAuthStateStore interface {
	Save(ctx context.Context, state string, provider entity.Provider, ttl time.Duration) error
	// Consume returns the provider bound to state and deletes it. A state is usable once.
	Consume(ctx context.Context, state string) (entity.Provider, bool, error)
}
