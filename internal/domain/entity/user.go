package entity

import "time"

type User struct {
	ID           int64      `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Username     string     `json:"username" db:"username"`
	Level        int        `json:"level" db:"level"`
	Coins        int64      `json:"coins" db:"coins"`
	XP           int64      `json:"xp" db:"xp"`
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login"`
}
