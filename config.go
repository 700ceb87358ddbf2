// config.go
//
// Process configuration, loaded from the environment (and .env in dev).
// Auth and cookie settings (JWT_SECRET, JWT_EXPIRES_DAYS, COOKIE_NAME,
// CLIENT_ORIGIN, APP_ENV) are read by the HTTP layer directly.

package main

import (
	"github.com/caarlos0/env/v11"
)

// Config carries the settings main needs to boot the server.
type Config struct {
	Port        string `env:"PORT" envDefault:"5175"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath      string `env:"DB_PATH" envDefault:"./data/wordgrid.db"`
	WordbankDir string `env:"WORDBANK_DIR"` // unset = use the embedded word bank
}

// loadConfig parses Config from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
