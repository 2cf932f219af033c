package store

import (
	"context"
	"fmt"

	"github.com/idmhub/scim-bridge/internal/config"
	"github.com/idmhub/scim-bridge/internal/logger"
)

// Repositories groups the data-access implementations handed to the service
// layer.
type Repositories struct {
	ServiceProviders ServiceProviderRepository
}

// NewConnect opens the database backend selected by cfg.Driver and runs the
// embedded migrations.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var db *DB
	var err error

	switch cfg.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return db, nil
}

// NewRepositories wires all repositories over the shared database handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		ServiceProviders: NewServiceProviderRepository(db, log),
	}
}
