package entity

import "time"

type Achievement struct {
	UserID      int64      `json:"user_id" db:"user_id"`
	Name        string     `json:"name" db:"achievement_name"`
	Completed   bool       `json:"completed" db:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}
