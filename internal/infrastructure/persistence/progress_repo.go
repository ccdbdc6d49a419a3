package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/pkg/errcodes"
)

// ProgressRepository читает достижения и квесты и проводит выплату
// квестовых наград.
type ProgressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) ListAchievements(ctx context.Context, userID int64) ([]entity.Achievement, error) {
	query := `
		SELECT user_id, achievement_name, completed, completed_at
		FROM user_achievements
		WHERE user_id = $1
		ORDER BY achievement_name`

	var achievements []entity.Achievement
	if err := r.db.SelectContext(ctx, &achievements, query, userID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list achievements")
	}

	return achievements, nil
}

func (r *ProgressRepository) ListQuests(ctx context.Context, userID int64) ([]entity.Quest, error) {
	query := `
		SELECT user_id, quest_name, progress, goal, reward, completed, reward_paid
		FROM user_quests
		WHERE user_id = $1
		ORDER BY quest_name`

	var quests []entity.Quest
	if err := r.db.SelectContext(ctx, &quests, query, userID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list quests")
	}

	return quests, nil
}

// PayQuestReward идемпотентно выплачивает награду за завершённый квест.
// Повторный вызов не находит строку (reward_paid уже TRUE) и ничего
// не делает.
func (r *ProgressRepository) PayQuestReward(ctx context.Context, userID int64, questName string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		markPaid := `
			UPDATE user_quests
			SET reward_paid = TRUE
			WHERE user_id = $1 AND quest_name = $2 AND completed = TRUE AND reward_paid = FALSE
			RETURNING reward`

		var reward int64

		err := tx.GetContext(ctx, &reward, markPaid, userID, questName)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to mark reward paid")
		}

		credit := `UPDATE users SET coins = coins + $1 WHERE id = $2`

		if _, err := tx.ExecContext(ctx, credit, reward, userID); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to credit reward")
		}

		return nil
	})
}
