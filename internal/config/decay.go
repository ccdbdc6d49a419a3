package config

import "time"

type Decay struct {
	Enabled  bool          `env:"DECAY_ENABLED" envDefault:"true"`
	Interval time.Duration `env:"DECAY_INTERVAL" envDefault:"1h"`
}
