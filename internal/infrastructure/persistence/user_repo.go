package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/pkg/errcodes"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// StarterBundle — всё, что создаётся вместе с новым пользователем
// в одной транзакции.
type StarterBundle struct {
	Pet          entity.Pet
	Achievements []entity.Achievement
	Quests       []entity.Quest
	Items        []entity.InventoryItem
}

// CreateWithStarter атомарно создаёт пользователя и стартовый набор.
// Повторный email откатывает все вставки.
func (r *UserRepository) CreateWithStarter(ctx context.Context, user *entity.User, bundle StarterBundle) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO users (email, password_hash, username)
			VALUES ($1, $2, $3)
			RETURNING id, email, username, level, coins, xp`

		err := tx.GetContext(ctx, user, query, user.Email, user.PasswordHash, user.Username)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return domain.NewError(errcodes.EmailAlreadyInUse, "email already registered")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert user")
		}

		pet := bundle.Pet
		petQuery := `
			INSERT INTO pets (user_id, name, pet_type, level, xp, hunger, happiness, health, energy)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

		if _, err := tx.ExecContext(ctx, petQuery,
			user.ID, pet.Name, pet.Type, pet.Level, pet.XP,
			pet.Hunger, pet.Happiness, pet.Health, pet.Energy,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert pet")
		}

		for _, ach := range bundle.Achievements {
			var completedAt *time.Time
			if ach.Completed {
				now := time.Now()
				completedAt = &now
			}

			achQuery := `
				INSERT INTO user_achievements (user_id, achievement_name, completed, completed_at)
				VALUES ($1, $2, $3, $4)`

			if _, err := tx.ExecContext(ctx, achQuery, user.ID, ach.Name, ach.Completed, completedAt); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to insert achievement")
			}
		}

		for _, quest := range bundle.Quests {
			questQuery := `
				INSERT INTO user_quests (user_id, quest_name, progress, goal, reward)
				VALUES ($1, $2, $3, $4, $5)`

			if _, err := tx.ExecContext(ctx, questQuery,
				user.ID, quest.Name, quest.Progress, quest.Goal, quest.Reward,
			); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to insert quest")
			}
		}

		for _, item := range bundle.Items {
			itemQuery := `
				INSERT INTO inventory (user_id, item_name, item_type, effect, quantity)
				VALUES ($1, $2, $3, $4, $5)`

			if _, err := tx.ExecContext(ctx, itemQuery,
				user.ID, item.Name, item.Type, item.Effect, item.Quantity,
			); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to insert starter item")
			}
		}

		return nil
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, username, level, coins, xp, last_login
		FROM users
		WHERE email = $1`

	var user entity.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.NotFound, "user not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get user")
	}

	return &user, nil
}

func (r *UserRepository) GetStats(ctx context.Context, userID int64) (*entity.User, error) {
	query := `
		SELECT id, email, '' AS password_hash, username, level, coins, xp, last_login
		FROM users
		WHERE id = $1`

	var user entity.User
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.NotFound, "user not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get user stats")
	}

	return &user, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	query := `UPDATE users SET last_login = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, time.Now(), userID); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update last login")
	}

	return nil
}

// PurchaseShopItem атомарно списывает монеты и добавляет предмет
// в инвентарь. Списание условное: при нехватке монет ни одна строка
// не меняется.
func (r *UserRepository) PurchaseShopItem(ctx context.Context, userID int64, item entity.ShopItem) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		debit := `UPDATE users SET coins = coins - $1 WHERE id = $2 AND coins >= $1`

		res, err := tx.ExecContext(ctx, debit, item.Price, userID)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to debit coins")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
		}

		if rows == 0 {
			var exists bool
			_ = tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID)
			if !exists {
				return domain.NewError(errcodes.NotFound, "user not found")
			}
			return domain.NewError(errcodes.InsufficientFunds, "not enough coins")
		}

		return grantItemTx(ctx, tx, userID, item.Name, item.Type, item.Effect)
	})
}

func (r *UserRepository) Leaderboard(ctx context.Context, limit int) ([]entity.User, error) {
	query := `
		SELECT id, email, '' AS password_hash, username, level, coins, xp, last_login
		FROM users
		ORDER BY level DESC, xp DESC
		LIMIT $1`

	var users []entity.User
	if err := r.db.SelectContext(ctx, &users, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list leaderboard")
	}

	return users, nil
}
