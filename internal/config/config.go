// Package config loads server configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, populated from environment
// variables (a .env file is honored by the entrypoint)
type Config struct {
	Host string `env:"GAMESAPX_HOST" envDefault:""`
	Port int    `env:"GAMESAPX_PORT" envDefault:"8080"`

	// StorageType selects the backend: memory, redis or sqlite
	StorageType string `env:"GAMESAPX_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"GAMESAPX_REDIS_URL" envDefault:"redis://localhost:6379"`
	SQLitePath  string `env:"GAMESAPX_SQLITE_PATH" envDefault:"gamesapx.db"`

	// SecureCookie marks the session cookie Secure; enable behind TLS
	SecureCookie bool `env:"GAMESAPX_SECURE_COOKIE" envDefault:"false"`

	// AdminPassword overrides the stock admin password at seed time
	AdminPassword string `env:"GAMESAPX_ADMIN_PASSWORD" envDefault:"admin123"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
