package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. It is a weak placeholder kept for
// local development; deployments must override it.
const DefaultJWTSecret = "secret"

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	DBHost         string `env:"DB_HOST,default=localhost"`
	DBPort         string `env:"DB_PORT,default=5432"`
	DBUser         string `env:"DB_USER,default=postgres"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBName         string `env:"DB_NAME,default=reviews"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS,default=20"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS,default=5"`
	StoreDriver    string `env:"STORE_DRIVER,default=postgres"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,default=24h"`

	GRPCAddr           string `env:"GRPC_ADDR,default=:50055"`
	HTTPAddr           string `env:"HTTP_ADDR,default=:8080"`
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS,default=*"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	OTelEndpoint  string `env:"OTEL_EXPORTER_ENDPOINT"`

	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	SeedDemoData bool `env:"SEED_DEMO_DATA,default=false"`
}

// Load reads .env (when present) and the process environment. It is called once
// at startup and the result is passed to constructors.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.JWTSecret == "" {
		c.JWTSecret = DefaultJWTSecret
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = 24 * time.Hour
	}
	if c.StoreDriver == "" {
		c.StoreDriver = StoreDriverPostgres
	}
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// UsesDefaultSecret reports whether tokens are signed with the placeholder secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBPassword)
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
