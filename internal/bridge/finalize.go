package bridge

import (
	"github.com/idmhub/scim-bridge/models"
)

// CommitError reports a failure while committing the unit of work. Its
// message is exactly the underlying cause's message, mirroring what the
// caller of the endpoint observes as an internal error.
type CommitError struct {
	cause error
}

func (e *CommitError) Error() string {
	return e.cause.Error()
}

func (e *CommitError) Unwrap() error {
	return e.cause
}

// Finalizer is the per-request commit-or-rollback command. It is constructed
// once per request around the request's transaction manager and captures no
// shared state, so it can be handed to the engine without risk of reuse
// across requests.
//
// Finalize is latched: the first call decides the outcome and every later
// call is a no-op. The host environment never invokes it concurrently.
type Finalizer struct {
	tm         TransactionManager
	done       bool
	rolledBack bool
}

// NewFinalizer returns a Finalizer bound to the given transaction manager.
func NewFinalizer(tm TransactionManager) *Finalizer {
	return &Finalizer{tm: tm}
}

// Finalize closes the unit of work for one request.
//
// When isError is true the unit of work is marked rollback-only and nil is
// returned. Otherwise the unit of work is committed; if the commit attempt
// itself fails, Finalize returns a [*CommitError] carrying the underlying
// failure's message.
func (f *Finalizer) Finalize(_ models.EngineResponse, isError bool) error {
	if f.done {
		return nil
	}
	f.done = true

	if isError {
		f.tm.SetRollbackOnly()
		f.rolledBack = true
		return nil
	}

	if err := f.tm.Commit(); err != nil {
		return &CommitError{cause: err}
	}

	return nil
}

// Finalized reports whether the commit-or-rollback decision has been made.
func (f *Finalizer) Finalized() bool {
	return f.done
}

// RolledBack reports whether the decision marked the unit of work
// rollback-only. It is meaningful only after Finalized returns true.
func (f *Finalizer) RolledBack() bool {
	return f.rolledBack
}
