// Package storage opens the record store selected by configuration and
// owns the connections behind it.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"gorm.io/gorm"

	"github.com/texnokross/texnokross/internal/infrastructure/database"
	"github.com/texnokross/texnokross/internal/infrastructure/migration"
	"github.com/texnokross/texnokross/internal/infrastructure/recordstore"
	"github.com/texnokross/texnokross/internal/shared/config"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = database.DriverSQLite
	DriverMySQL  = database.DriverMySQL
	DriverRedis  = "redis"
)

const redisPingTimeout = 5 * time.Second

type Options struct {
	Storage  config.StorageConfig
	Database config.DatabaseConfig
	Redis    config.RedisConfig
	// Fs backs the file driver. Defaults to the OS filesystem.
	Fs afero.Fs
}

// Backend is an open record store plus whatever must be closed with it.
type Backend struct {
	Store  recordstore.Store
	Driver string
	DB     *gorm.DB
	Redis  *redis.Client

	closers []func() error
}

// Open connects the configured driver. SQL drivers are migrated to the
// latest schema before the store is returned.
func Open(ctx context.Context, opts Options, log logger.Interface) (*Backend, error) {
	b := &Backend{Driver: opts.Storage.Driver}

	switch opts.Storage.Driver {
	case DriverMemory:
		b.Store = recordstore.NewMemoryStore()

	case DriverFile:
		fs := opts.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		store, err := recordstore.NewFileStore(fs, opts.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		b.Store = store

	case DriverSQLite, DriverMySQL:
		db, err := database.Open(&opts.Storage, &opts.Database)
		if err != nil {
			return nil, err
		}
		b.DB = db
		b.closers = append(b.closers, func() error { return database.Close(db) })

		m, err := migration.NewMigrator(opts.Storage.Driver, log)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		if err := m.Up(db); err != nil {
			_ = b.Close()
			return nil, err
		}
		b.Store = recordstore.NewSQLStore(db)

	case DriverRedis:
		client, err := OpenRedis(ctx, &opts.Redis)
		if err != nil {
			return nil, err
		}
		b.Redis = client
		b.closers = append(b.closers, client.Close)
		b.Store = recordstore.NewRedisStore(client, opts.Redis.KeyPrefix)

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", opts.Storage.Driver)
	}

	log.Infow("record store opened", "driver", b.Driver)
	return b, nil
}

// OpenRedis connects and pings the configured Redis server.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
