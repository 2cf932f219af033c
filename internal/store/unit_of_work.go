package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/idmhub/scim-bridge/internal/bridge"
	"github.com/idmhub/scim-bridge/internal/logger"
)

// unitOfWork is the SQL transaction backing one request's transactional
// boundary. It implements [bridge.UnitOfWork]: the finalizer commits it or
// marks it rollback-only, and the HTTP layer closes it when the request
// finishes. Exactly one of commit or rollback reaches the database.
type unitOfWork struct {
	tx           *sql.Tx
	db           *DB
	logger       *logger.Logger
	committed    bool
	rollbackOnly bool
}

// Commit makes the transaction durable. Committing a unit of work already
// marked rollback-only is a contract violation and fails with
// [ErrRollbackOnlyTransaction] without touching the transaction.
func (u *unitOfWork) Commit() error {
	if u.rollbackOnly {
		return ErrRollbackOnlyTransaction
	}

	if err := u.tx.Commit(); err != nil {
		u.logger.Err(err).
			Stringer("classification", u.db.classify(err)).
			Str("func", "*unitOfWork.Commit").
			Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	u.committed = true
	return nil
}

// SetRollbackOnly marks the transaction so Close discards it.
func (u *unitOfWork) SetRollbackOnly() {
	u.rollbackOnly = true
}

// Close rolls the transaction back unless it was committed. It is safe to
// call after a successful commit; the redundant rollback is suppressed.
func (u *unitOfWork) Close() error {
	if u.committed {
		return nil
	}

	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		u.logger.Err(err).Str("func", "*unitOfWork.Close").Msg("error rolling back transaction")
		return err
	}

	return nil
}

// unitOfWorkFactory opens one transaction per request over the shared
// database handle.
type unitOfWorkFactory struct {
	db     *DB
	logger *logger.Logger
}

// NewUnitOfWorkFactory returns the [bridge.UnitOfWorkFactory] used by the
// HTTP layer to open the transactional boundary of each request.
func NewUnitOfWorkFactory(db *DB, logger *logger.Logger) bridge.UnitOfWorkFactory {
	logger.Debug().Msg("creating unit of work factory")
	return &unitOfWorkFactory{
		db:     db,
		logger: logger,
	}
}

// Begin implements [bridge.UnitOfWorkFactory].
func (f *unitOfWorkFactory) Begin(ctx context.Context) (bridge.UnitOfWork, error) {
	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Stringer("classification", f.db.classify(err)).
			Str("func", "*unitOfWorkFactory.Begin").
			Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &unitOfWork{tx: tx, db: f.db, logger: f.logger}, nil
}
