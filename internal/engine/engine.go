// Package engine declares the contract of the protocol-processing engine:
// the external collaborator that interprets and executes SCIM operations
// (resource CRUD, search, patch semantics).
//
// The bridge itself never parses request bodies or SCIM filters; it hands
// the engine one canonical request per inbound HTTP request together with
// the finalize callback that closes the enclosing unit of work.
package engine

import (
	"context"

	"github.com/idmhub/scim-bridge/models"
)

//go:generate mockgen -source=engine.go -destination=../mock/engine_mock.go -package=mock

// FinalizeFunc closes the unit of work surrounding one request. When isError
// is true the unit of work is marked rollback-only; otherwise it is
// committed. A commit failure is reported through the returned error.
//
// The callback must be invoked exactly once per request. An engine that
// produces an error response but still returns it as a structured response
// invokes the callback itself with isError=true; otherwise the dispatcher
// invokes it after the engine returns.
type FinalizeFunc func(response models.EngineResponse, isError bool) error

// Engine is the single entry point of the protocol-processing engine.
type Engine interface {
	// HandleRequest executes one SCIM operation described by request and
	// returns the structured response to emit. The engine either invokes
	// finalize itself or leaves it to the caller; an error return means the
	// operation failed before a structured response could be produced.
	HandleRequest(ctx context.Context, request models.CanonicalRequest, finalize FinalizeFunc) (models.EngineResponse, error)
}
