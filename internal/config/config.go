package config

import (
	"github.com/caarlos0/env/v11"

	"backoffice/internal/config/configs"
)

// Config aggregates all configuration sections of the console. Every
// section is parsed from environment variables under its own prefix.
type Config struct {
	// Env names the deployment environment (prod, dev). Only logged.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Storage configs.Storage  `envPrefix:"STORAGE_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
	Kafka   configs.Kafka    `envPrefix:"KAFKA_"`
	Session configs.Session  `envPrefix:"SESSION_"`
	Catalog configs.Catalog  `envPrefix:"CATALOG_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Storage.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.Session.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
