package internal

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Version is reported by /json, /health, /config and /all.
const Version = "1.0.0"

type LogLevel string

const (
	LevelDebug   LogLevel = "DEBUG"
	LevelInfo    LogLevel = "INFO"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
)

// UnmarshalText accepts any casing and rejects unknown levels, so a
// bad LOG_LEVEL fails configuration loading instead of being ignored.
func (l *LogLevel) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "DEBUG":
		*l = LevelDebug
	case "INFO":
		*l = LevelInfo
	case "WARNING":
		*l = LevelWarning
	case "ERROR":
		*l = LevelError
	default:
		return fmt.Errorf("unknown log level %q (want DEBUG, INFO, WARNING or ERROR)", string(text))
	}
	return nil
}

// Config is read from the environment once at startup and never
// mutated afterwards. Handlers receive it by value.
type Config struct {
	Port             int      `env:"PORT" envDefault:"5252"`
	LogLevel         LogLevel `env:"LOG_LEVEL" envDefault:"INFO"`
	AppName          string   `env:"APP_NAME" envDefault:"ip-service"`
	ShowLocalhostIPs bool     `env:"SHOW_LOCALHOST_IPS" envDefault:"false"`
	CORSEnabled      bool     `env:"CORS_ENABLED" envDefault:"true"`
}

// LoadConfig parses the process environment into a Config. Any invalid
// value is returned as an error; callers must treat it as fatal.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT %d is outside 1-65535", cfg.Port)
	}
	return cfg, nil
}
