package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/newsletter/pkg/config"
	"github.com/dmitrymomot/newsletter/pkg/httpserver"
	"github.com/dmitrymomot/newsletter/pkg/logger"
	"github.com/dmitrymomot/newsletter/pkg/mongo"
	"github.com/dmitrymomot/newsletter/pkg/pg"
	"github.com/dmitrymomot/newsletter/pkg/redis"
	"github.com/dmitrymomot/newsletter/svc/subscriber"
	"github.com/dmitrymomot/newsletter/svc/subscriber/mongostore"
	"github.com/dmitrymomot/newsletter/svc/subscriber/pgstore"
	"github.com/dmitrymomot/newsletter/svc/subscriber/redisstore"
)

type storageDriver string

const (
	driverMemory   storageDriver = "memory"
	driverMongo    storageDriver = "mongo"
	driverPostgres storageDriver = "postgres"
	driverRedis    storageDriver = "redis"
)

var (
	errUnknownDriver      = errors.New("unknown storage driver")
	errMemoryInProduction = errors.New("memory storage loses subscribers on restart, set STORAGE_DRIVER in production")
)

func parseStorageDriver(name string) (storageDriver, error) {
	switch d := storageDriver(strings.ToLower(strings.TrimSpace(name))); d {
	case "":
		return driverMemory, nil
	case "mongodb":
		return driverMongo, nil
	case "pg", "postgresql":
		return driverPostgres, nil
	case driverMemory, driverMongo, driverPostgres, driverRedis:
		return d, nil
	default:
		return "", fmt.Errorf("%w %q: use memory, mongo, postgres or redis", errUnknownDriver, name)
	}
}

// storage is an opened engine together with its readiness check, schema
// setup and cleanup.
type storage struct {
	subscriber.Storage
	check   httpserver.CheckFunc
	migrate func(context.Context) error
	close   func(context.Context) error
}

func openStorage(ctx context.Context, driver storageDriver, log *slog.Logger) (*storage, error) {
	log = log.With(logger.Component("storage"), slog.String("driver", string(driver)))

	switch driver {
	case driverMemory:
		log.WarnContext(ctx, "using in-memory storage, subscribers are lost on restart")
		store := subscriber.NewMemoryStorage()
		return &storage{
			Storage: store,
			check:   store.Healthcheck,
			migrate: noop,
			close:   noop,
		}, nil

	case driverMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := mongo.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store := mongostore.New(client.Database(cfg.Database))
		return &storage{
			Storage: store,
			check:   store.Healthcheck,
			migrate: store.EnsureIndexes,
			close:   client.Disconnect,
		}, nil

	case driverPostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := pg.OpenDB(pool)
		store := pgstore.New(db)
		return &storage{
			Storage: store,
			check:   store.Healthcheck,
			migrate: func(ctx context.Context) error {
				return pgstore.Migrate(ctx, db, cfg, log)
			},
			close: func(context.Context) error {
				err := db.Close()
				pool.Close()
				return err
			},
		}, nil

	case driverRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store := redisstore.New(client, cfg.KeyPrefix)
		return &storage{
			Storage: store,
			check:   store.Healthcheck,
			migrate: noop,
			close:   func(context.Context) error { return client.Close() },
		}, nil
	}

	return nil, fmt.Errorf("%w %q", errUnknownDriver, driver)
}

func noop(context.Context) error { return nil }
