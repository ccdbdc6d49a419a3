package entity

// Характеристики питомца держатся в диапазоне [0,100]; клампы применяются
// на уровне SQL (LEAST/GREATEST), сущность им доверяет.
type Pet struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"user_id" db:"user_id"`
	Name      string `json:"name" db:"name"`
	Type      string `json:"type" db:"pet_type"`
	Level     int    `json:"level" db:"level"`
	XP        int64  `json:"xp" db:"xp"`
	Hunger    int    `json:"hunger" db:"hunger"`
	Happiness int    `json:"happiness" db:"happiness"`
	Health    int    `json:"health" db:"health"`
	Energy    int    `json:"energy" db:"energy"`
}

const (
	StatMin = 0
	StatMax = 100
)
