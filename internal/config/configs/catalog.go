package configs

import "time"

// Catalog points at the external REST API serving /api/products and
// /api/categories. An empty BaseURL disables it.
type Catalog struct {
	BaseURL string        `env:"BASE_URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

func (c Catalog) Enabled() bool { return c.BaseURL != "" }
