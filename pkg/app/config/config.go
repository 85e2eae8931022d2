package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime knobs of the service, populated from the
// environment.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	JWTSecret       string        `envconfig:"JWT_SECRET" default:"your-secret-key"`
	TokenTTL        time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	LogJSON         bool          `envconfig:"LOG_JSON" default:"true"`
	SeedData        bool          `envconfig:"SEED_DATA" default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
