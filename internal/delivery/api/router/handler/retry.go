package handler

import (
	"context"
	"time"

	"studylink/config"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

const (
	storeRetryInitialInterval = 50 * time.Millisecond
	storeRetryMaxElapsed      = time.Second
)

// StoreRetrier re-runs operations that failed with STORE_UNAVAILABLE.
// Every other outcome, success included, is final.
type StoreRetrier struct {
	maxRetries uint64
	interval   time.Duration
}

// NewStoreRetrier reads the retry budget from auth.storeRetries.
func NewStoreRetrier(cfg *config.Config) *StoreRetrier {
	retries := 0
	if cfg.Auth != nil && cfg.Auth.StoreRetries > 0 {
		retries = cfg.Auth.StoreRetries
	}

	return newStoreRetrier(uint64(retries), storeRetryInitialInterval)
}

func newStoreRetrier(maxRetries uint64, interval time.Duration) *StoreRetrier {
	return &StoreRetrier{maxRetries: maxRetries, interval: interval}
}

// Do runs op once plus at most maxRetries more times while the store is unavailable.
func (r *StoreRetrier) Do(ctx context.Context, op func() error) error {
	expBackOff := backoff.NewExponentialBackOff()
	expBackOff.InitialInterval = r.interval
	expBackOff.MaxInterval = 4 * r.interval
	expBackOff.MaxElapsedTime = storeRetryMaxElapsed

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackOff, r.maxRetries), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil || errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return err
		}

		return backoff.Permanent(err)
	}, policy)
}
