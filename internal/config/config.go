package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings read from the environment
type Config struct {
	Port           string   `env:"MAIPROFILE_PORT" envDefault:"8080"`
	StoreEngine    string   `env:"MAIPROFILE_STORE_ENGINE" envDefault:"sqlite3"`
	DBPath         string   `env:"MAIPROFILE_DB_PATH" envDefault:"./maiprofile.db"`
	AssetsDir      string   `env:"MAIPROFILE_ASSETS_DIR" envDefault:"./assets"`
	AssetsURL      string   `env:"MAIPROFILE_ASSETS_URL_PREFIX" envDefault:"/assets"`
	ManifestPath   string   `env:"MAIPROFILE_MANIFEST_PATH"`
	TitlesPath     string   `env:"MAIPROFILE_TITLES_PATH" envDefault:"./assets/title.json"`
	AllowedOrigins []string `env:"MAIPROFILE_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:*"`
	LogLevel       string   `env:"MAIPROFILE_LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
