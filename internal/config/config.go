package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`
	Version     string `env:"VERSION" env-default:"1.0.0"`

	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`

	// SecretKey signs access tokens. There is deliberately no default:
	// the process refuses to start without one.
	SecretKey                string `env:"SECRET_KEY" env-required:"true"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"30"`

	CORSOrigins []string `env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:8080"`

	ReminderIntervalMinutes int `env:"REMINDER_INTERVAL_MINUTES" env-default:"60"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

func (c Config) ReminderInterval() time.Duration {
	return time.Duration(c.ReminderIntervalMinutes) * time.Minute
}
