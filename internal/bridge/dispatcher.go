package bridge

import (
	"context"

	"github.com/idmhub/scim-bridge/internal/engine"
	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/models"
)

// Dispatcher performs the single call into the protocol engine for one
// canonical request. It does not retry, does not translate engine failures,
// and does not touch the request body.
type Dispatcher struct {
	engine engine.Engine
	logger *logger.Logger
}

// NewDispatcher constructs a Dispatcher around the given engine.
func NewDispatcher(eng engine.Engine, logger *logger.Logger) *Dispatcher {
	logger.Debug().Msg("creating dispatcher")
	return &Dispatcher{
		engine: eng,
		logger: logger,
	}
}

// Dispatch invokes the engine exactly once with the canonical request and
// the request's finalizer, and returns the engine's structured response.
//
// The finalize invariant is guaranteed here rather than trusted to the
// engine: if the engine returns an error the unit of work is marked for
// rollback before the error propagates, and if the engine returns without
// having invoked the callback the response is committed on its behalf. Both
// backstops rely on the finalizer's first-call-wins latch, so a conforming
// engine that already finalized sees no second effect.
//
// A commit failure raised by the backstop finalize surfaces as the
// dispatcher's error alongside the engine's response.
func (d *Dispatcher) Dispatch(ctx context.Context, request models.CanonicalRequest, finalizer *Finalizer) (models.EngineResponse, error) {
	log := logger.FromContext(ctx)

	response, err := d.engine.HandleRequest(ctx, request, finalizer.Finalize)
	if err != nil {
		log.Err(err).Str("url", request.URL).Str("method", string(request.Method)).Msg("engine failure during dispatch")
		// engine failures must still roll the unit of work back
		_ = finalizer.Finalize(models.EngineResponse{}, true)
		return models.EngineResponse{}, err
	}

	if err := finalizer.Finalize(response, false); err != nil {
		log.Err(err).Str("url", request.URL).Msg("commit failed after engine call")
		return response, err
	}

	return response, nil
}
