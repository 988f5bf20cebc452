package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"studylink/internal/domain/entity"
	domainerrors "studylink/internal/domain/errors"
	"studylink/internal/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRefreshTokenStore_PutGetMatches(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRefreshTokenStore(client)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Put(ctx, "a@x.com", "token-1", time.Hour))

	got, found, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "token-1", got)

	raw, err := mr.Get("REFRESH_TOKEN:a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "token-1", raw)
	assert.Equal(t, time.Hour, mr.TTL("REFRESH_TOKEN:a@x.com"))

	ok, err := store.Matches(ctx, "a@x.com", "token-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Matches(ctx, "a@x.com", "token-0")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Matches(ctx, "b@x.com", "token-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRefreshTokenStore_PutOverwrites(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRefreshTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "first", time.Hour))
	require.NoError(t, store.Put(ctx, "a@x.com", "second", time.Hour))

	ok, err := store.Matches(ctx, "a@x.com", "first")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Matches(ctx, "a@x.com", "second")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRefreshTokenStore_Expires(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRefreshTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "token", time.Minute))
	mr.FastForward(time.Minute)

	_, found, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRefreshTokenStore_Rotate(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRefreshTokenStore(client)
	ctx := context.Background()

	rotated, err := store.Rotate(ctx, "a@x.com", "old", "new", time.Hour)
	require.NoError(t, err)
	assert.False(t, rotated, "absent record must not rotate")

	require.NoError(t, store.Put(ctx, "a@x.com", "old", time.Minute))

	rotated, err = store.Rotate(ctx, "a@x.com", "stale", "new", time.Hour)
	require.NoError(t, err)
	assert.False(t, rotated)

	rotated, err = store.Rotate(ctx, "a@x.com", "old", "new", time.Hour)
	require.NoError(t, err)
	assert.True(t, rotated)
	assert.Equal(t, time.Hour, mr.TTL("REFRESH_TOKEN:a@x.com"))

	ok, err := store.Matches(ctx, "a@x.com", "old")
	require.NoError(t, err)
	assert.False(t, ok)

	rotated, err = store.Rotate(ctx, "a@x.com", "old", "newer", time.Hour)
	require.NoError(t, err)
	assert.False(t, rotated)
}

func TestRefreshTokenStore_RotateReplayIsIdempotent(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRefreshTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "old", time.Minute))

	for range 2 {
		rotated, err := store.Rotate(ctx, "a@x.com", "old", "new", time.Hour)
		require.NoError(t, err)
		assert.True(t, rotated)
	}

	token, found, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", token)

	rotated, err := store.Rotate(ctx, "a@x.com", "old", "other", time.Hour)
	require.NoError(t, err)
	assert.False(t, rotated)
}

func TestRefreshTokenStore_RotateConcurrentlyHasOneWinner(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRefreshTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "presented", time.Hour))

	const workers = 16
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rotated, err := store.Rotate(ctx, "a@x.com", "presented", "next-"+string(rune('a'+i)), time.Hour)
			assert.NoError(t, err)
			if rotated {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRefreshTokenStore_Delete(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRefreshTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "token", time.Hour))
	require.NoError(t, store.Delete(ctx, "a@x.com"))
	require.NoError(t, store.Delete(ctx, "a@x.com"))

	_, found, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRefreshTokenStore_TransportFailureIsStoreUnavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRefreshTokenStore(client)
	ctx := context.Background()

	mr.Close()

	_, _, err := store.Get(ctx, "a@x.com")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	_, err = store.Matches(ctx, "a@x.com", "token")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	err = store.Put(ctx, "a@x.com", "token", time.Hour)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	_, err = store.Rotate(ctx, "a@x.com", "a", "b", time.Hour)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestVerificationCodeStore(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewVerificationCodeStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a@x.com", "123456", 10*time.Minute))

	code, found, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "123456", code)

	require.NoError(t, store.Extend(ctx, "a@x.com", 30*time.Minute))
	assert.Equal(t, 30*time.Minute, mr.TTL("EMAIL_AUTH:a@x.com"))

	require.NoError(t, store.Delete(ctx, "a@x.com"))
	_, found, err = store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOAuthStateStore_ConsumeOnce(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewOAuthStateStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "state-1", entity.ProviderKakao, time.Minute))

	provider, found, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entity.ProviderKakao, provider)

	_, found, err = store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "state-2", entity.ProviderGoogle, time.Minute))
	mr.FastForward(time.Minute)
	_, found, err = store.Consume(ctx, "state-2")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, mr.Set("OAUTH2_STATE:forged", "NAVER"))
	_, found, err = store.Consume(ctx, "forged")
	require.NoError(t, err)
	assert.False(t, found)
}
