// Package config loads process configuration from the environment, or from a
// config file when CONFIG_PATH is set.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all process settings.
type Config struct {
	Env      string `yaml:"env" env:"ENV" env-default:"dev"`
	DBPath   string `yaml:"db_path" env:"DB_PATH" env-default:"./data/watchshelf.db"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	// AuthScheme selects how passwords are stored: "plain" (demo default)
	// or "bcrypt".
	AuthScheme string `yaml:"auth_scheme" env:"AUTH_SCHEME" env-default:"plain"`

	// SessionSecret signs the persisted session snapshot.
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-default:"watchshelf-dev-secret"`

	HTTPServer `yaml:"http_server"`
}

// HTTPServer groups the listener settings.
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// MustLoad reads the configuration and exits on failure.
func MustLoad() *Config {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config %s: %s", configPath, err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return &cfg
}
