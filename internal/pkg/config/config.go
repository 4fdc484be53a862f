package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=12h"`

	// BootstrapAdminEmail is the well-known account that may create itself as
	// the first Admin on a failed sign-in. Empty disables the flow.
	BootstrapAdminEmail string `env:"BOOTSTRAP_ADMIN_EMAIL"`

	// CacheVersion namespaces the GET response cache; keys from any other
	// version are purged on startup.
	CacheVersion string `env:"CACHE_VERSION, default=v1"`

	// WriteWorkers is the number of shards draining non-blocking writes.
	WriteWorkers int `env:"WRITE_WORKERS, default=4"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Advisor AdvisorConfig
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,  default=hotel_pms"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=50"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=20"`
}

type SessionConfig struct {
	IdleTimeout     time.Duration `env:"SESSION_IDLE_TIMEOUT,     default=5m"`
	HiddenThreshold time.Duration `env:"SESSION_HIDDEN_THRESHOLD, default=3s"`
}

type AdvisorConfig struct {
	URL     string        `env:"ADVISOR_URL, default=http://localhost:9090"`
	APIKey  string        `env:"ADVISOR_API_KEY"`
	Timeout time.Duration `env:"ADVISOR_TIMEOUT, default=30s"`
}

// IsDevelopment reports whether the service runs with developer defaults
// (pretty logs, verbose errors).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory, when present, is applied first and
// never overrides variables that are already set.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
