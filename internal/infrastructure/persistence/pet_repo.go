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

type PetRepository struct {
	db *sqlx.DB
}

func NewPetRepository(db *sqlx.DB) *PetRepository {
	return &PetRepository{db: db}
}

// StatChange — дельты одного действия. Клампы [0,100] применяются
// в самом UPDATE, чтобы изменение было атомарным.
type StatChange struct {
	Hunger    int
	Happiness int
	Health    int
	Energy    int
	XP        int64

	// QuestName — квест, чей прогресс двигает это действие (пустая
	// строка, если действие квестов не касается).
	QuestName string
}

// ActionResult — состояние после действия и исход квестового апдейта.
type ActionResult struct {
	Pet            entity.Pet
	QuestCompleted bool
	QuestReward    int64
}

func (r *PetRepository) GetByUserID(ctx context.Context, userID int64) (*entity.Pet, error) {
	query := `
		SELECT id, user_id, name, pet_type, level, xp, hunger, happiness, health, energy
		FROM pets
		WHERE user_id = $1`

	var pet entity.Pet
	if err := r.db.GetContext(ctx, &pet, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.PetNotFound, "pet not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get pet")
	}

	return &pet, nil
}

// ApplyAction атомарно применяет дельты к питомцу и, если задан квест,
// двигает его прогресс (с клампом на goal) в той же транзакции.
func (r *PetRepository) ApplyAction(ctx context.Context, userID int64, change StatChange) (ActionResult, error) {
	var result ActionResult

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE pets SET
				hunger = LEAST($1, GREATEST($2, hunger + $3)),
				happiness = LEAST($1, GREATEST($2, happiness + $4)),
				health = LEAST($1, GREATEST($2, health + $5)),
				energy = LEAST($1, GREATEST($2, energy + $6)),
				xp = xp + $7
			WHERE user_id = $8
			RETURNING id, user_id, name, pet_type, level, xp, hunger, happiness, health, energy`

		err := tx.GetContext(ctx, &result.Pet, query,
			entity.StatMax, entity.StatMin,
			change.Hunger, change.Happiness, change.Health, change.Energy,
			change.XP, userID,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewError(errcodes.PetNotFound, "pet not found")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to apply action")
		}

		if change.QuestName == "" {
			return nil
		}

		questQuery := `
			UPDATE user_quests
			SET progress = LEAST(progress + 1, goal),
			    completed = (progress + 1 >= goal)
			WHERE user_id = $1 AND quest_name = $2 AND completed = FALSE
			RETURNING completed, reward`

		var quest struct {
			Completed bool  `db:"completed"`
			Reward    int64 `db:"reward"`
		}

		err = tx.GetContext(ctx, &quest, questQuery, userID, change.QuestName)
		if err != nil {
			// Квест уже завершён или не выдан — действие всё равно успешно.
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to advance quest")
		}

		result.QuestCompleted = quest.Completed
		result.QuestReward = quest.Reward

		return nil
	})
	if err != nil {
		return ActionResult{}, err
	}

	return result, nil
}

// DecayAll применяет плановое угасание характеристик всем питомцам.
// Возвращает число затронутых строк.
func (r *PetRepository) DecayAll(ctx context.Context, hunger, happiness, energy int) (int64, error) {
	query := `
		UPDATE pets SET
			hunger = GREATEST($1, hunger - $2),
			happiness = GREATEST($1, happiness - $3),
			energy = GREATEST($1, energy - $4)`

	res, err := r.db.ExecContext(ctx, query, entity.StatMin, hunger, happiness, energy)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to decay pets")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	return rows, nil
}
