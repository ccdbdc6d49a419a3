package sessionstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"petgame/internal/domain"
	"petgame/internal/infrastructure/sessionstore"
	"petgame/pkg/errcodes"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestSaveGetDelete(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := sessionstore.NewRedisStore(testClient(t), time.Minute)

	rq.NoError(store.Save(ctx, "tok-1", 42))

	userID, err := store.Get(ctx, "tok-1")
	rq.NoError(err)
	rq.EqualValues(42, userID)

	rq.NoError(store.Delete(ctx, "tok-1"))

	_, err = store.Get(ctx, "tok-1")
	rq.True(domain.IsCode(err, errcodes.SessionInvalid))
}

func TestGetUnknownToken(t *testing.T) {
	rq := require.New(t)

	store := sessionstore.NewRedisStore(testClient(t), time.Minute)

	_, err := store.Get(context.Background(), "never-issued")
	rq.True(domain.IsCode(err, errcodes.SessionInvalid))
}

func TestSessionExpires(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := sessionstore.NewRedisStore(testClient(t), 50*time.Millisecond)

	rq.NoError(store.Save(ctx, "tok-short", 7))

	time.Sleep(100 * time.Millisecond)

	_, err := store.Get(ctx, "tok-short")
	rq.True(domain.IsCode(err, errcodes.SessionInvalid))
}
