package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/models"
)

// serviceProviderRepository is the SQL-backed implementation of
// [ServiceProviderRepository]. It reads the "scim_service_provider" table,
// one row per realm.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type serviceProviderRepository struct {
	logger      *logger.Logger
	db          *DB
	placeholder sq.PlaceholderFormat
}

// NewServiceProviderRepository constructs a [ServiceProviderRepository]
// backed by the provided database connection and logger. The SQL placeholder
// style follows the connected driver.
func NewServiceProviderRepository(db *DB, logger *logger.Logger) ServiceProviderRepository {
	logger.Debug().Msg("creating service provider repository")

	placeholder := sq.PlaceholderFormat(sq.Dollar)
	if db.driver == "sqlite3" {
		placeholder = sq.Question
	}

	return &serviceProviderRepository{
		db:          db,
		logger:      logger,
		placeholder: placeholder,
	}
}

// FindByRealm returns the service-provider record of one realm.
//
// Error handling:
//   - No row for the realm → [ErrServiceProviderNotFound].
//   - Query construction failure → wrapped [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *serviceProviderRepository) FindByRealm(ctx context.Context, realmID string) (models.ServiceProvider, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("realm_id", "enabled", "created_at", "last_modified").
		From("scim_service_provider").
		Where(sq.Eq{"realm_id": realmID}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*serviceProviderRepository.FindByRealm").Msg("error building query")
		return models.ServiceProvider{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sp models.ServiceProvider
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found record from db
	if err := row.Scan(&sp.RealmID, &sp.Enabled, &sp.CreatedAt, &sp.LastModified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ServiceProvider{}, ErrServiceProviderNotFound
		}

		log.Err(err).Str("func", "*serviceProviderRepository.FindByRealm").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UndefinedTable:
			return models.ServiceProvider{}, fmt.Errorf("%w: scim_service_provider table missing, migrations not applied: %w", ErrExecutingQuery, err)
		default:
			return models.ServiceProvider{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return sp, nil
}
