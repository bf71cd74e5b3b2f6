// Package config loads the process configuration from the environment once at startup.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration. Nothing reads the environment after Load.
type Config struct {
	AppEnv      string `env:"APP_ENV"       envDefault:"development"`
	Port        int    `env:"PORT"          envDefault:"5000"`
	APIBasePath string `env:"API_BASE_PATH" envDefault:"/api/users"`

	// DatabaseURL selects the store by scheme: postgres, mongodb, mongodb+srv or sqlite.
	DatabaseURL      string        `env:"DATABASE_URL,required,notEmpty"`
	MongoDatabase    string        `env:"MONGO_DATABASE"     envDefault:"social"`
	RunMigrations    bool          `env:"RUN_MIGRATIONS"     envDefault:"true"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"60s"`

	AccessTokenSecret string        `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	JWTExpiration     time.Duration `env:"JWT_EXPIRATION_TIME" envDefault:"15m"`

	// RedisAddr is optional; post listings are not cached when it is empty.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"  envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"1m"`

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel           string        `env:"LOG_LEVEL"            envDefault:"info"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"15s"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.APIBasePath = normalizeBasePath(cfg.APIBasePath)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.JWTExpiration <= 0 {
		errs = append(errs, fmt.Errorf("JWT_EXPIRATION_TIME must be positive: %s", c.JWTExpiration))
	}
	if c.DBConnectTimeout <= 0 {
		errs = append(errs, fmt.Errorf("DB_CONNECT_TIMEOUT must be positive: %s", c.DBConnectTimeout))
	}
	return errors.Join(errs...)
}

// HTTPAddress is the listen address for the HTTP server.
func (c Config) HTTPAddress() string {
	return ":" + strconv.Itoa(c.Port)
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// normalizeBasePath ensures a leading slash and no trailing slash. The root path becomes "".
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
