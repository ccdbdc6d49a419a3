package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/pkg/errcodes"
)

type InventoryRepository struct {
	db *sqlx.DB
}

func NewInventoryRepository(db *sqlx.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) ListByUser(ctx context.Context, userID int64) ([]entity.InventoryItem, error) {
	query := `
		SELECT user_id, item_name, item_type, effect, quantity
		FROM inventory
		WHERE user_id = $1
		ORDER BY item_name`

	var items []entity.InventoryItem
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list inventory")
	}

	return items, nil
}

// grantItemTx добавляет единицу предмета в инвентарь в рамках транзакции.
// Существующая запись инкрементируется, новая создаётся с quantity = 1.
func grantItemTx(ctx context.Context, tx *sqlx.Tx, userID int64, name, itemType string, effect int) error {
	query := `
		INSERT INTO inventory (user_id, item_name, item_type, effect, quantity)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (user_id, item_name)
		DO UPDATE SET quantity = inventory.quantity + 1`

	if _, err := tx.ExecContext(ctx, query, userID, name, itemType, effect); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to grant item")
	}

	return nil
}
