package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"petgame/internal/domain"
	"petgame/internal/domain/entity"
	"petgame/pkg/errcodes"
)

type OfferRepository struct {
	db *sqlx.DB
}

func NewOfferRepository(db *sqlx.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// ListActive возвращает свежие активные лоты, кроме лотов самого
// пользователя.
func (r *OfferRepository) ListActive(ctx context.Context, excludeSellerID int64, limit int) ([]entity.TradeOffer, error) {
	query := `
		SELECT t.id, t.seller_id, u.username AS seller_name, t.item_name, t.item_type,
		       t.effect, t.price, t.status, t.buyer_id, t.created_at, t.completed_at
		FROM trade_offers t
		JOIN users u ON t.seller_id = u.id
		WHERE t.status = 'active' AND t.seller_id != $1
		ORDER BY t.created_at DESC
		LIMIT $2`

	var offers []entity.TradeOffer
	if err := r.db.SelectContext(ctx, &offers, query, excludeSellerID, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list offers")
	}

	return offers, nil
}

// CreateEscrowed списывает единицу предмета из инвентаря продавца и
// создаёт активный лот — одной транзакцией. Лот и есть запись об
// эскроу: на момент продажи инвентарь продавца уже не трогается.
func (r *OfferRepository) CreateEscrowed(ctx context.Context, offer *entity.TradeOffer) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		escrow := `
			UPDATE inventory
			SET quantity = quantity - 1
			WHERE user_id = $1 AND item_name = $2 AND quantity >= 1`

		res, err := tx.ExecContext(ctx, escrow, offer.SellerID, offer.ItemName)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to escrow item")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
		}

		if rows == 0 {
			return domain.NewError(errcodes.ItemNotInStock, "item not found in inventory")
		}

		insert := `
			INSERT INTO trade_offers (seller_id, item_name, item_type, effect, price, status)
			VALUES ($1, $2, $3, $4, $5, 'active')
			RETURNING id, created_at`

		if err := tx.QueryRowxContext(ctx, insert,
			offer.SellerID, offer.ItemName, offer.ItemType, offer.Effect, offer.Price,
		).Scan(&offer.ID, &offer.CreatedAt); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert offer")
		}

		offer.Status = entity.OfferStatusActive

		return nil
	})
}

// Purchase атомарно проводит покупку: условный перевод монет, выдача
// предмета покупателю и условный переход лота active -> completed.
// Переход условный, поэтому из двух конкурентных покупок один и тот же
// лот выигрывает ровно одна.
func (r *OfferRepository) Purchase(ctx context.Context, offerID, buyerID int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Блокируем активный лот; отсутствие строки означает, что лота
		// нет, он уже продан или отменён.
		lockQuery := `
			SELECT id, seller_id, '' AS seller_name, item_name, item_type, effect,
			       price, status, buyer_id, created_at, completed_at
			FROM trade_offers
			WHERE id = $1 AND status = 'active'
			FOR UPDATE`

		var offer entity.TradeOffer
		if err := tx.GetContext(ctx, &offer, lockQuery, offerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewError(errcodes.OfferNotFound, "offer not found")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to lock offer")
		}

		debit := `UPDATE users SET coins = coins - $1 WHERE id = $2 AND coins >= $1`

		res, err := tx.ExecContext(ctx, debit, offer.Price, buyerID)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to debit buyer")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
		}

		if rows == 0 {
			return domain.NewError(errcodes.InsufficientFunds, "not enough coins")
		}

		credit := `UPDATE users SET coins = coins + $1 WHERE id = $2`

		if _, err := tx.ExecContext(ctx, credit, offer.Price, offer.SellerID); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to credit seller")
		}

		if err := grantItemTx(ctx, tx, buyerID, offer.ItemName, offer.ItemType, offer.Effect); err != nil {
			return err
		}

		complete := `
			UPDATE trade_offers
			SET status = 'completed', buyer_id = $1, completed_at = $2
			WHERE id = $3 AND status = 'active'`

		return execConditionalTx(ctx, tx, complete, buyerID, time.Now(), offerID)
	})
}

// Cancel возвращает эскроу продавцу и переводит лот в cancelled.
// Отменить лот может только его продавец и только пока он активен.
func (r *OfferRepository) Cancel(ctx context.Context, offerID, sellerID int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		lockQuery := `
			SELECT id, seller_id, '' AS seller_name, item_name, item_type, effect,
			       price, status, buyer_id, created_at, completed_at
			FROM trade_offers
			WHERE id = $1 AND status = 'active'
			FOR UPDATE`

		var offer entity.TradeOffer
		if err := tx.GetContext(ctx, &offer, lockQuery, offerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewError(errcodes.OfferNotFound, "offer not found")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to lock offer")
		}

		if offer.SellerID != sellerID {
			return domain.NewError(errcodes.NotOfferSeller, "you don't own this offer")
		}

		cancel := `
			UPDATE trade_offers
			SET status = 'cancelled', completed_at = $1
			WHERE id = $2 AND status = 'active'`

		if err := execConditionalTx(ctx, tx, cancel, time.Now(), offerID); err != nil {
			return err
		}

		return grantItemTx(ctx, tx, sellerID, offer.ItemName, offer.ItemType, offer.Effect)
	})
}

// execConditionalTx выполняет условный UPDATE и трактует ноль строк
// как пропавший лот.
func execConditionalTx(ctx context.Context, tx *sqlx.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to execute update")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.OfferNotFound, "offer not found")
	}

	return nil
}
