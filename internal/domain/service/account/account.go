package account

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/internal/infrastructure/persistence"
	"petgame/pkg/errcodes"
)

type UserRepository interface {
	CreateWithStarter(ctx context.Context, user *entity.User, bundle persistence.StarterBundle) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	Leaderboard(ctx context.Context, limit int) ([]entity.User, error)
}

type Sessions interface {
	Issue(ctx context.Context, userID int64) (string, error)
}

type Service struct {
	users      UserRepository
	sessions   Sessions
	bcryptCost int
}

func NewService(users UserRepository, sessions Sessions) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// WithBcryptCost понижает стоимость хэша в тестах.
func (s *Service) WithBcryptCost(cost int) *Service {
	s.bcryptCost = cost
	return s
}

// Register создаёт пользователя вместе со стартовым набором (питомец,
// ачивки, квесты, предметы) одной транзакцией и выдаёт сессию.
func (s *Service) Register(ctx context.Context, email, password, username string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.NewError(errcodes.ValidationError, "email and password are required")
	}

	if username == "" {
		username = email
		if at := strings.Index(email, "@"); at > 0 {
			username = email[:at]
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", domain.WrapError(err, errcodes.InternalServerError, "failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Username:     username,
	}

	if err := s.users.CreateWithStarter(ctx, user, StarterBundle()); err != nil {
		return nil, "", fmt.Errorf("users.CreateWithStarter: %w", err)
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("sessions.Issue: %w", err)
	}

	return user, token, nil
}

// Login проверяет пару email/пароль и выдаёт новую сессию. Несуществующий
// email и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.NewError(errcodes.ValidationError, "email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsCode(err, errcodes.NotFound) {
			return nil, "", domain.NewError(errcodes.CredentialsMismatch, "invalid email or password")
		}
		return nil, "", fmt.Errorf("users.GetByEmail: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.NewError(errcodes.CredentialsMismatch, "invalid email or password")
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, "", fmt.Errorf("users.UpdateLastLogin: %w", err)
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("sessions.Issue: %w", err)
	}

	return user, token, nil
}

const leaderboardLimit = 10

func (s *Service) Leaderboard(ctx context.Context) ([]entity.User, error) {
	users, err := s.users.Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("users.Leaderboard: %w", err)
	}

	return users, nil
}
