// Package db opens the gorm connection used by the SQL store adapters.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// retryInterval is the pause between connection attempts.
const retryInterval = 3 * time.Second

// Driver names a SQL backend reachable through gorm.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// ErrUnsupportedScheme is returned for a DATABASE_URL that no SQL driver handles.
var ErrUnsupportedScheme = errors.New("unsupported database url scheme")

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// Config describes one SQL connection.
type Config struct {
	Driver         Driver
	DSN            string
	ConnectTimeout time.Duration
	Debug          bool
}

// ParseURL maps a DATABASE_URL to a driver and the DSN that driver expects.
// postgres:// and postgresql:// URLs are checked with pgx and passed through; sqlite://path becomes path.
func ParseURL(raw string) (Config, error) {
	// sqlite DSNs such as file::memory: are not valid URL hosts, so the scheme is split by hand
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, raw)
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		// catches bad ports and options before the retry loop starts
		if _, err := pgx.ParseConfig(raw); err != nil {
			return Config{}, fmt.Errorf("parse postgres url: %w", err)
		}
		return Config{Driver: DriverPostgres, DSN: raw}, nil
	case "sqlite", "sqlite3":
		if rest == "" {
			rest = ":memory:"
		}
		return Config{Driver: DriverSQLite, DSN: rest}, nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// slowQueryThreshold is the duration above which gorm logs a query as slow.
const slowQueryThreshold = 200 * time.Millisecond

// gormConfig translates driver errors into gorm sentinels such as gorm.ErrDuplicatedKey.
func gormConfig(debug bool) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn), debug),
	}
}

// newGormLogger writes through w. Lookup misses are not logged and bound
// values are left out of the SQL, so emails and password hashes never reach the logs.
func newGormLogger(w gormlogger.Writer, debug bool) gormlogger.Interface {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
		Colorful:                  false,
	})
}

// OpenerFor returns the Opener for driver.
func OpenerFor(driver Driver, debug bool) (Opener, error) {
	switch driver {
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormConfig(debug))
		}, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gormConfig(debug))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, driver)
	}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open connects with retry and, when migrate is set, creates or updates the tables for models.
func Open(cfg Config, migrate bool, models ...any) (*gorm.DB, error) {
	opener, err := OpenerFor(cfg.Driver, cfg.Debug)
	if err != nil {
		return nil, err
	}

	gdb, err := ConnectWithRetry(cfg.DSN, cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}

	// Each SQLite connection to :memory: would get its own database.
	if cfg.Driver == DriverSQLite {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if migrate && len(models) > 0 {
		if err := gdb.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return gdb, nil
}

// Ping checks the underlying connection pool.
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
