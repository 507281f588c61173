// Package migration applies the embedded goose scripts for the SQL record store.
package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/texnokross/texnokross/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// goose keeps dialect and base FS in package globals.
var gooseMu sync.Mutex

// Migrator runs goose migrations for one storage driver.
type Migrator struct {
	dialect string
	dir     string
	logger  logger.Interface
}

// NewMigrator returns a migrator for "mysql" or "sqlite".
func NewMigrator(driver string, log logger.Interface) (*Migrator, error) {
	m := &Migrator{logger: log.With("component", "migration.goose")}
	switch driver {
	case "mysql":
		m.dialect, m.dir = "mysql", "scripts/mysql"
	case "sqlite":
		m.dialect, m.dir = "sqlite3", "scripts/sqlite"
	default:
		return nil, fmt.Errorf("no migrations for storage driver %q", driver)
	}
	return m, nil
}

func (m *Migrator) Up(db *gorm.DB) error {
	return m.run(db, func(sqlDB *sql.DB) error {
		from, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		if err := goose.Up(sqlDB, m.dir); err != nil {
			m.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		to, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}
		m.logger.Infow("migration completed", "from_version", from, "to_version", to)
		return nil
	})
}

func (m *Migrator) Down(db *gorm.DB, steps int) error {
	return m.run(db, func(sqlDB *sql.DB) error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, m.dir); err != nil {
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		m.logger.Infow("down migration completed", "steps", steps)
		return nil
	})
}

func (m *Migrator) Status(db *gorm.DB) error {
	return m.run(db, func(sqlDB *sql.DB) error {
		if err := goose.Status(sqlDB, m.dir); err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return nil
	})
}

func (m *Migrator) Version(db *gorm.DB) (int64, error) {
	var version int64
	err := m.run(db, func(sqlDB *sql.DB) error {
		v, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

func (m *Migrator) run(db *gorm.DB, fn func(*sql.DB) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return fn(sqlDB)
}
