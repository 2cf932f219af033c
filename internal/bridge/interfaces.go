package bridge

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_mock.go -package=mock

// TransactionManager is the host-provided handle over the transactional
// boundary of one request. The coordinator calls exactly one of its methods
// per request.
type TransactionManager interface {
	// Commit makes the unit of work's effects durable.
	Commit() error

	// SetRollbackOnly marks the unit of work so the host discards its
	// effects when the request finishes. It never fails; the actual
	// rollback happens when the unit of work is closed.
	SetRollbackOnly()
}

// UnitOfWork extends [TransactionManager] with the host-side close hook.
// Close rolls the transaction back unless Commit already succeeded and must
// always be called when the request finishes.
type UnitOfWork interface {
	TransactionManager

	Close() error
}

// UnitOfWorkFactory opens the transactional boundary for one request. A unit
// of work is never shared between requests and never reused after its
// finalize call.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
