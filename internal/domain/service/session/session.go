package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"petgame/internal/domain"
	"petgame/pkg/errcodes"
)

const (
	tokenBytes = 32

	// Горячий кэш короче TTL сессии: отзыв токена доезжает с задержкой
	// не больше cacheTTL.
	cacheTTL = 5 * time.Minute
)

type Store interface {
	Save(ctx context.Context, token string, userID int64) error
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

// Service выдаёт и проверяет bearer-токены. Проверка идёт через
// in-process кэш, чтобы не ходить в хранилище на каждый запрос.
type Service struct {
	store Store
	hot   *cache.Cache
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		hot:   cache.New(cacheTTL, 2*cacheTTL),
	}
}

// Issue создаёт новую сессию и возвращает токен.
func (s *Service) Issue(ctx context.Context, userID int64) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", domain.WrapError(err, errcodes.InternalServerError, "failed to generate token")
	}

	token := base64.RawURLEncoding.EncodeToString(buf)

	if err := s.store.Save(ctx, token, userID); err != nil {
		return "", fmt.Errorf("store.Save: %w", err)
	}

	s.hot.SetDefault(token, userID)

	return token, nil
}

// Verify возвращает id пользователя, которому принадлежит токен.
func (s *Service) Verify(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, domain.NewError(errcodes.SessionInvalid, "missing bearer token")
	}

	if cached, ok := s.hot.Get(token); ok {
		return cached.(int64), nil
	}

	userID, err := s.store.Get(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("store.Get: %w", err)
	}

	s.hot.SetDefault(token, userID)

	return userID, nil
}

// Revoke снимает сессию (используется в тестах и админскими сценариями).
func (s *Service) Revoke(ctx context.Context, token string) error {
	s.hot.Delete(token)

	if err := s.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}

	return nil
}

// FormatUserID переводит id в строковое представление для contextx.
func FormatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
