package entity

// Quest — прогресс монотонно растёт и клампится на goal.
type Quest struct {
	UserID     int64  `json:"user_id" db:"user_id"`
	Name       string `json:"name" db:"quest_name"`
	Progress   int    `json:"progress" db:"progress"`
	Goal       int    `json:"goal" db:"goal"`
	Reward     int64  `json:"reward" db:"reward"`
	Completed  bool   `json:"completed" db:"completed"`
	RewardPaid bool   `json:"-" db:"reward_paid"`
}

// Стартовые квесты; имена совпадают с фронтендом и участвуют в механике
// действий feed/play.
const (
	QuestFeedName = "Покорми питомца 3 раза"
	QuestPlayName = "Поиграй 5 раз"
)
