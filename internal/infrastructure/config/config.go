package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	JWTSecret   string        `env:"JWT_SECRET"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=24h"`
	BcryptCost  int           `env:"BCRYPT_COST,  default=10"`
	HashWorkers int           `env:"HASH_WORKERS, default=0"` // 0 = CPU count

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/records?sslmode=disable"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	DB       int           `env:"REDIS_DB,        default=0"`
	CacheTTL time.Duration `env:"AGENT_CACHE_TTL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
