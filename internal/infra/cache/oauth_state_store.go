package cache

import (
	"context"
	"time"

	"studylink/internal/domain/entity"
	"studylink/internal/domain/repository"
	"studylink/internal/errors"

	"github.com/redis/go-redis/v9"
)

const oauthStateKeyPrefix = "OAUTH2_STATE:"

type oauthStateStore struct {
	client redis.UniversalClient
}

// NewOAuthStateStore returns the store of pending authorization-code handshakes.
func NewOAuthStateStore(client *redis.Client) repository.OAuthStateStore {
	return &oauthStateStore{client: client}
}

func (s *oauthStateStore) Save(ctx context.Context, state string, provider entity.Provider, ttl time.Duration) error {
	if err := s.client.Set(ctx, oauthStateKeyPrefix+state, provider.String(), ttl).Err(); err != nil {
		return storeUnavailable("save oauth state", err)
	}

	return nil
}

func (s *oauthStateStore) Consume(ctx context.Context, state string) (entity.Provider, bool, error) {
	value, err := s.client.GetDel(ctx, oauthStateKeyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeUnavailable("consume oauth state", err)
	}

	provider, err := entity.ParseProvider(value)
	if err != nil {
		// A state bound to no known provider was not issued by us.
		return "", false, nil //nolint:nilerr
	}

	return provider, true, nil
}
