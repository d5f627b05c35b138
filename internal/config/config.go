package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DatabaseURL is the single connection-string variable configuring the
	// store location and credentials.
	DatabaseURL string `env:"DATABASE_URL, required"`

	// SlowQueryDelay simulates the loading-state delay on the revenue and
	// latest-invoices reads. Zero disables it.
	SlowQueryDelay time.Duration `env:"SLOW_QUERY_DELAY, default=0s"`

	Redis RedisConfig
	Minio MinioConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type MinioConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT,   default=localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY, default=minioadmin"`
	SecretKey string `env:"MINIO_SECRET_KEY, default=minioadmin"`
	UseSSL    bool   `env:"MINIO_USE_SSL,    default=false"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
