// Модели запросов и ответов публичного API. Имена полей зафиксированы
// фронтендом — менять нельзя.
package rest

type AuthRequest struct {
	Action   string `json:"action" validate:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	Coins    int64  `json:"coins"`
	XP       int64  `json:"xp"`
}

type Pet struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Level     int    `json:"level"`
	XP        int64  `json:"xp"`
	Hunger    int    `json:"hunger"`
	Happiness int    `json:"happiness"`
	Health    int    `json:"health"`
	Energy    int    `json:"energy"`
}

type UserStats struct {
	Level int   `json:"level"`
	Coins int64 `json:"coins"`
	XP    int64 `json:"xp"`
}

type InventoryItem struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Effect   int    `json:"effect"`
	Quantity int    `json:"quantity"`
}

type Achievement struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type Quest struct {
	Name      string `json:"name"`
	Progress  int    `json:"progress"`
	Goal      int    `json:"goal"`
	Reward    int64  `json:"reward"`
	Completed bool   `json:"completed"`
}

type PetStateResponse struct {
	Pet          Pet             `json:"pet"`
	User         UserStats       `json:"user"`
	Inventory    []InventoryItem `json:"inventory"`
	Achievements []Achievement   `json:"achievements"`
	Quests       []Quest         `json:"quests"`
}

type PetActionRequest struct {
	Action string `json:"action" validate:"required"`
	UserID int64  `json:"user_id" validate:"required"`
}

// PetActionResponse несёт только затронутые действием поля, остальные
// остаются nil и в тело не попадают.
type PetActionResponse struct {
	Hunger    *int   `json:"hunger,omitempty"`
	Happiness *int   `json:"happiness,omitempty"`
	Health    *int   `json:"health,omitempty"`
	Energy    *int   `json:"energy,omitempty"`
	XP        *int64 `json:"xp,omitempty"`
}

type TradeOffer struct {
	ID         int64  `json:"id"`
	ItemName   string `json:"item_name"`
	ItemType   string `json:"item_type"`
	Effect     int    `json:"effect"`
	Price      int64  `json:"price"`
	Status     string `json:"status"`
	SellerName string `json:"seller_name"`
	SellerID   int64  `json:"seller_id"`
}

type TradeListResponse struct {
	Offers []TradeOffer `json:"offers"`
}

type TradeRequest struct {
	Action   string `json:"action" validate:"required"`
	UserID   int64  `json:"user_id"`
	ItemName string `json:"item_name"`
	ItemType string `json:"item_type"`
	Effect   int    `json:"effect"`
	Price    int64  `json:"price"`
	OfferID  int64  `json:"offer_id"`
}

type CreateOfferResponse struct {
	Success bool  `json:"success"`
	OfferID int64 `json:"offer_id"`
}

type TradeResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LeaderboardPlayer struct {
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int64  `json:"xp"`
}

type LeaderboardResponse struct {
	Players []LeaderboardPlayer `json:"players"`
}

// Error Модель ошибок
type Error struct {
	// Error Сообщение об ошибке (для отображения в UI)
	Error string `json:"error"`

	// Code Код ошибки
	Code string `json:"code"`

	// SupportID Идентификатор для поиска деталей в логах
	SupportID string `json:"supportId"`
}
