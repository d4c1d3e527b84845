package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// NewMySQL opens a database/sql pool for MySQL using the same Options as NewPGX.
func NewMySQL(ctx context.Context, opts Options) (*sql.DB, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options for mysql: %v", err)
	}

	if opts.logger == nil {
		opts.logger = noopLogger{}
	}

	cfg := mysql.NewConfig()
	cfg.User = opts.username
	cfg.Passwd = opts.password
	cfg.Net = "tcp"
	cfg.Addr = opts.address
	cfg.DBName = opts.database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("new mysql connector: %v", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(int(opts.maxOpenConns))
	db.SetMaxIdleConns(int(opts.maxOpenConns))
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := ping(ctx, opts, db.PingContext); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
