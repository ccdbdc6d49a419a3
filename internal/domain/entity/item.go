package entity

type InventoryItem struct {
	UserID   int64  `json:"user_id" db:"user_id"`
	Name     string `json:"name" db:"item_name"`
	Type     string `json:"type" db:"item_type"`
	Effect   int    `json:"effect" db:"effect"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// ShopItem — позиция магазина с фиксированным ассортиментом.
type ShopItem struct {
	Name   string
	Type   string
	Effect int
	Price  int64
}
