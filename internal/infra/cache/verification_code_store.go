package cache

import (
	"context"
	"time"

	"studylink/internal/domain/repository"
	"studylink/internal/errors"

	"github.com/redis/go-redis/v9"
)

const verificationCodeKeyPrefix = "EMAIL_AUTH:"

type verificationCodeStore struct {
	client redis.UniversalClient
}

// NewVerificationCodeStore returns the email verification code store.
func NewVerificationCodeStore(client *redis.Client) repository.VerificationCodeStore {
	return &verificationCodeStore{client: client}
}

func verificationCodeKey(email string) string {
	return verificationCodeKeyPrefix + email
}

func (s *verificationCodeStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, verificationCodeKey(email), code, ttl).Err(); err != nil {
		return storeUnavailable("save verification code", err)
	}

	return nil
}

func (s *verificationCodeStore) Get(ctx context.Context, email string) (string, bool, error) {
	code, err := s.client.Get(ctx, verificationCodeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeUnavailable("get verification code", err)
	}

	return code, true, nil
}

func (s *verificationCodeStore) Extend(ctx context.Context, email string, ttl time.Duration) error {
	if err := s.client.Expire(ctx, verificationCodeKey(email), ttl).Err(); err != nil {
		return storeUnavailable("extend verification code", err)
	}

	return nil
}

func (s *verificationCodeStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, verificationCodeKey(email)).Err(); err != nil {
		return storeUnavailable("delete verification code", err)
	}

	return nil
}
