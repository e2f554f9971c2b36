package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/roach88/runeword/internal/word"
)

// Config holds defaults read from the environment. Flags set on the
// command line take precedence.
type Config struct {
	Catalog   string `env:"RUNEWORD_CATALOG"`
	Format    string `env:"RUNEWORD_FORMAT" envDefault:"text"`
	MaxWords  int    `env:"RUNEWORD_MAX_WORDS"`
	Symmetric bool   `env:"RUNEWORD_SYMMETRIC"`
	Verbose   bool   `env:"RUNEWORD_VERBOSE"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	cfg := Config{MaxWords: word.DefaultMaxWords}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
