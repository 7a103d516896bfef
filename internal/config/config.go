// internal/config/config.go
//
// Process configuration, read from the environment.
// A .env file in the working directory is loaded first (development only;
// real environment variables win).
//
// Environment variables:
//   PORT=5175                   listen port
//   LOG_LEVEL=info              zerolog level
//   LOG_PRETTY=false            human-readable console logs
//   WORDS_FILE=/path/words.txt  vocabulary, one word per line (default: embedded)
//   CLIENT_ORIGIN=http://localhost:5173
//   REQUEST_TIMEOUT=10s
//   LEADERBOARD_LIMIT=20        entries returned with each snapshot

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port             string        `env:"PORT" envDefault:"5175"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty        bool          `env:"LOG_PRETTY" envDefault:"false"`
	WordsFile        string        `env:"WORDS_FILE"`
	ClientOrigin     string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	LeaderboardLimit int           `env:"LEADERBOARD_LIMIT" envDefault:"20"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }
