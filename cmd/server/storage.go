package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/evgeniy-krivenko/rest-notes/internal/config"
	"github.com/evgeniy-krivenko/rest-notes/internal/repository"
	"github.com/evgeniy-krivenko/rest-notes/internal/repository/memory"
	"github.com/evgeniy-krivenko/rest-notes/internal/repository/migrations"
	"github.com/evgeniy-krivenko/rest-notes/internal/repository/mysqlrepo"
	"github.com/evgeniy-krivenko/rest-notes/internal/usecase/notes"
	"github.com/evgeniy-krivenko/rest-notes/pkg/database"
	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
)

// newUsecase opens the configured store and builds the notes usecase on top of it.
// The returned func releases the store.
func newUsecase(ctx context.Context, cfg config.DatabaseConfig) (*notes.Usecase, func(), error) {
	slogx.Info(ctx, "open storage", slog.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverMemory:
		repo := memory.New()
		uc, err := notes.New(notes.NewOptions(repo, repo))
		return uc, func() {}, err

	case config.DriverPostgres:
		pool, err := database.NewPGX(ctx, dbOptions(cfg))
		if err != nil {
			return nil, nil, err
		}
		db := database.NewDatabase(pool)

		if cfg.Migrate {
			stdDB := db.StdDB()
			err := migrations.Up(ctx, stdDB, goose.DialectPostgres)
			stdDB.Close()
			if err != nil {
				db.Close()
				return nil, nil, err
			}
		}

		uc, err := notes.New(notes.NewOptions(repository.New(db), db))
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return uc, db.Close, nil

	case config.DriverMySQL:
		sqlDB, err := database.NewMySQL(ctx, dbOptions(cfg))
		if err != nil {
			return nil, nil, err
		}

		if cfg.Migrate {
			if err := migrations.Up(ctx, sqlDB, goose.DialectMySQL); err != nil {
				sqlDB.Close()
				return nil, nil, err
			}
		}

		db := database.NewSQLDatabase(sqlDB)
		uc, err := notes.New(notes.NewOptions(mysqlrepo.New(db), db))
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return uc, func() { sqlDB.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func dbOptions(cfg config.DatabaseConfig) database.Options {
	return database.NewOptions(
		cfg.Addr(),
		cfg.User,
		cfg.Password,
		cfg.Name,
		database.WithRetryAttempts(cfg.RetryAttempts),
		database.WithMaxOpenConns(cfg.MaxConns),
		database.WithLogger(slogx.Default()),
	)
}
