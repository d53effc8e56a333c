package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// WordsFile is the persisted word list, one word per line.
	WordsFile string `env:"HANGMAN_WORDS_FILE" envDefault:"words.txt"`

	// MaxWrong is the attempt budget for new sessions.
	MaxWrong int `env:"HANGMAN_MAX_WRONG" envDefault:"6"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
