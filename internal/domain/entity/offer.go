package entity

import "time"

type OfferStatus string

const (
	OfferStatusActive    OfferStatus = "active"
	OfferStatusCompleted OfferStatus = "completed"
	OfferStatusCancelled OfferStatus = "cancelled"
)

// TradeOffer — лот на рынке. Предмет эскроуится из инвентаря продавца в
// момент создания лота, поэтому сам лот и есть запись об эскроу.
type TradeOffer struct {
	ID          int64       `json:"id" db:"id"`
	SellerID    int64       `json:"seller_id" db:"seller_id"`
	SellerName  string      `json:"seller_name" db:"seller_name"`
	ItemName    string      `json:"item_name" db:"item_name"`
	ItemType    string      `json:"item_type" db:"item_type"`
	Effect      int         `json:"effect" db:"effect"`
	Price       int64       `json:"price" db:"price"`
	Status      OfferStatus `json:"status" db:"status"`
	BuyerID     *int64      `json:"buyer_id,omitempty" db:"buyer_id"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
}
