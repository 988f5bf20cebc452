package cache

import (
	"context"
	"crypto/subtle"
	"time"

	"studylink/internal/domain/repository"
	"studylink/internal/errors"

	"github.com/redis/go-redis/v9"
)

const refreshTokenKeyPrefix = "REFRESH_TOKEN:"

// rotateRefreshLua swaps the recorded token only when the presented one is still current.
// KEYS[1] = record key
// ARGV[1] = presented token
// ARGV[2] = next token
// ARGV[3] = ttl in milliseconds
//
// Returns 1 when rotated or when the record already holds the next token, so a replay
// after a lost reply is answered the same way. Returns 0 when the record is absent or superseded.
var rotateRefreshLua = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current == ARGV[2] then
  return 1
end
if current ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

type refreshTokenStore struct {
	client redis.UniversalClient
}

// NewRefreshTokenStore returns the single-slot refresh token store.
func NewRefreshTokenStore(client *redis.Client) repository.RefreshTokenStore {
	return newRefreshTokenStore(client)
}

func newRefreshTokenStore(client redis.UniversalClient) *refreshTokenStore {
	return &refreshTokenStore{client: client}
}

func refreshTokenKey(subject string) string {
	return refreshTokenKeyPrefix + subject
}

func (s *refreshTokenStore) Put(ctx context.Context, subject, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.Errorf("refresh token ttl must be positive, got %s", ttl)
	}

	if err := s.client.Set(ctx, refreshTokenKey(subject), token, ttl).Err(); err != nil {
		return storeUnavailable("put refresh token", err)
	}

	return nil
}

func (s *refreshTokenStore) Get(ctx context.Context, subject string) (string, bool, error) {
	token, err := s.client.Get(ctx, refreshTokenKey(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeUnavailable("get refresh token", err)
	}

	return token, true, nil
}

func (s *refreshTokenStore) Matches(ctx context.Context, subject, token string) (bool, error) {
	current, found, err := s.Get(ctx, subject)
	if err != nil || !found {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(current), []byte(token)) == 1, nil
}

func (s *refreshTokenStore) Rotate(ctx context.Context, subject, presented, next string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, errors.Errorf("refresh token ttl must be positive, got %s", ttl)
	}

	rotated, err := rotateRefreshLua.Run(ctx, s.client,
		[]string{refreshTokenKey(subject)},
		presented, next, ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, storeUnavailable("rotate refresh token", err)
	}

	return rotated == 1, nil
}

func (s *refreshTokenStore) Delete(ctx context.Context, subject string) error {
	if err := s.client.Del(ctx, refreshTokenKey(subject)).Err(); err != nil {
		return storeUnavailable("delete refresh token", err)
	}

	return nil
}
