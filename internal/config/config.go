// Package config loads per-binary configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Gateway configures the purchase-order gateway binary.
type Gateway struct {
	Addr       string `env:"GATEWAY_ADDR" envDefault:":8080"`
	BackendURL string `env:"BACKEND_URL" envDefault:"http://localhost:3000"`

	// RedisAddr empty selects the in-process cache; useful for dev and tests.
	RedisAddr string `env:"REDIS_ADDR"`

	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"2m"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Mockstore configures the development backend binary.
type Mockstore struct {
	Addr   string `env:"MOCKSTORE_ADDR" envDefault:":3000"`
	DBPath string `env:"MOCKSTORE_DB" envDefault:"mockstore.db"`
	Seed   bool   `env:"MOCKSTORE_SEED" envDefault:"true"`
}

func ParseGateway() (*Gateway, error) {
	cfg := &Gateway{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse gateway env: %w", err)
	}
	return cfg, nil
}

func ParseMockstore() (*Mockstore, error) {
	cfg := &Mockstore{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse mockstore env: %w", err)
	}
	return cfg, nil
}
