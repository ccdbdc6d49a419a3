package config

import "time"

type Auth struct {
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}
