package config

import "time"

type Server struct {
	AppName             string        `env:"APP_NAME" envDefault:"petgame"`
	AppVersion          string        `env:"APP_VERSION" envDefault:"dev"`
	ListenAddress       string        `env:"LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress  string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8091"`
	MetricListenAddress string        `env:"METRIC_LISTEN_ADDRESS" envDefault:":8092"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout   time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	LogFieldMaxLen      int           `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}
