package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/blackteam/notas/internal/config"
)

// ErrStorageUnavailable wraps every failure to open or initialise the store.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Idle connections are closed so a long desktop session does not keep the
// store file open between operations.
const connMaxIdleTime = 5 * time.Minute

func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.Environment)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := Migrate(database); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	log.Info().
		Str("driver", cfg.DB.Driver).
		Str("path", storeLocation(cfg.DB)).
		Msg("store ready")
	return database, nil
}

// OpenSQLite opens (and initialises) a SQLite store at path with a single
// connection. Used by tools and tests that do not load the full config.
func OpenSQLite(path string) (*gorm.DB, error) {
	cfg := &config.Config{
		Environment: "test",
		DB: config.DBConfig{
			Driver:       config.DriverSQLite,
			Path:         path,
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}
	return New(cfg, zerolog.Nop())
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(cfg.Path), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func storeLocation(cfg config.DBConfig) string {
	if cfg.Driver == config.DriverPostgres {
		return "postgres"
	}
	return cfg.Path
}

func gormLogLevel(environment string) gormlogger.LogLevel {
	switch environment {
	case "development":
		return gormlogger.Warn
	default:
		return gormlogger.Silent
	}
}
