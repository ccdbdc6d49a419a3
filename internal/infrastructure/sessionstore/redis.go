package sessionstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"petgame/internal/domain"
	"petgame/pkg/errcodes"
)

const keyPrefix = "session:"

// RedisStore хранит сессии в Redis с TTL; истёкшая сессия исчезает сама.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Save(ctx context.Context, token string, userID int64) error {
	err := s.client.Set(ctx, keyPrefix+token, strconv.FormatInt(userID, 10), s.ttl).Err()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save session")
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (int64, error) {
	value, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.NewError(errcodes.SessionInvalid, "session not found")
		}
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to get session")
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "corrupt session value")
	}

	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete session")
	}

	return nil
}

func (s *RedisStore) TTL() time.Duration {
	return s.ttl
}
