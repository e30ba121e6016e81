package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Port            string `env:"PORT" envDefault:"8080"`
	GinMode         string `env:"GIN_MODE" envDefault:"release"`
	LogLevel        string `env:"DECKANALYZER_LOG_LEVEL" envDefault:"info"`
	LogDevelopment  bool   `env:"DECKANALYZER_LOG_DEVELOPMENT"`
	MaxFiles        int    `env:"DECKANALYZER_MAX_FILES" envDefault:"64"`
	MaxFileBytes    int64  `env:"DECKANALYZER_MAX_FILE_BYTES" envDefault:"1048576"`
	ReadConcurrency int    `env:"DECKANALYZER_READ_CONCURRENCY" envDefault:"4"`
	QRSize          int    `env:"DECKANALYZER_QR_SIZE" envDefault:"512"`
}

// Limits caps what a single upload batch may contain.
type Limits struct {
	MaxFiles        int
	MaxFileBytes    int64
	ReadConcurrency int
	QRSize          int
}

func (c Config) Limits() Limits {
	return Limits{
		MaxFiles:        c.MaxFiles,
		MaxFileBytes:    c.MaxFileBytes,
		ReadConcurrency: c.ReadConcurrency,
		QRSize:          c.QRSize,
	}
}

func (c Config) Addr() string { return ":" + c.Port }

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	if cfg.MaxFiles <= 0 {
		return Config{}, fmt.Errorf("DECKANALYZER_MAX_FILES must be positive, got %d", cfg.MaxFiles)
	}
	if cfg.MaxFileBytes <= 0 {
		return Config{}, fmt.Errorf("DECKANALYZER_MAX_FILE_BYTES must be positive, got %d", cfg.MaxFileBytes)
	}
	return cfg, nil
}
