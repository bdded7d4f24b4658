package configs

import "time"

// Redis configures the stats cache. An empty Addr disables caching.
type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"30s"`
}

func (r Redis) Enabled() bool { return r.Addr != "" }
