// Package database opens the gorm connection backing the SQL record store.
package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/texnokross/texnokross/internal/shared/config"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Open connects to the database selected by storage.Driver.
func Open(storage *config.StorageConfig, db *config.DatabaseConfig) (*gorm.DB, error) {
	switch storage.Driver {
	case DriverMySQL:
		return OpenMySQL(db)
	case DriverSQLite:
		return OpenSQLite(storage.SQLitePath)
	default:
		return nil, fmt.Errorf("storage driver %q is not a SQL driver", storage.Driver)
	}
}

func OpenMySQL(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	conn, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       cfg.GetDSN(),
		SkipInitializeWithVersion: true,
	}), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	logger.Info("database connection established", "driver", DriverMySQL, "database", cfg.Database)
	return conn, nil
}

// OpenSQLite opens a sqlite file, or a private in-memory database for ":memory:".
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	conn, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// Each sqlite connection to :memory: is a separate database, and file
	// databases only allow one writer anyway.
	sqlDB.SetMaxOpenConns(1)

	logger.Info("database connection established", "driver", DriverSQLite, "path", path)
	return conn, nil
}

func Close(conn *gorm.DB) error {
	if conn == nil {
		return nil
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(&filteredLogger{}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// filteredLogger routes gorm output into slog and drops version probes.
type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "select version()"):
		return
	case strings.Contains(lower, "error"):
		logger.Error("database error", "details", msg)
	case strings.Contains(lower, "slow sql"):
		logger.Warn("slow query", "details", msg)
	default:
		logger.Info("database", "details", msg)
	}
}
