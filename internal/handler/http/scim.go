package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/idmhub/scim-bridge/internal/bridge"
	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/internal/metrics"
	"github.com/idmhub/scim-bridge/models"
)

// handleScimRequest bridges one inbound HTTP request to the protocol
// engine. The availability gate and authentication already ran as
// middleware by the time this handler is reached.
//
// Per-request control flow: canonicalization (method, absolute URL with
// canonical query, normalized headers, raw body, caller context), one unit
// of work, one engine dispatch, commit-or-rollback via the finalizer,
// lossless emission of the engine's response. A commit failure answers 500
// carrying the cause's exact message.
func (h *Handler) handleScimRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		scimError(w, http.StatusBadRequest, "unreadable request body")
		return
	}

	request := models.CanonicalRequest{
		URL:           requestBaseURL(r) + bridge.CanonicalQuery(r.URL.Query()),
		Method:        models.MethodFromHTTP(r.Method),
		Body:          string(body),
		Headers:       bridge.NormalizeHeaders(bridge.ExtractHeaders(r.Header)),
		Authorization: authorizationFromContext(ctx),
	}

	uow, err := h.uowFactory.Begin(ctx)
	if err != nil {
		log.Err(err).Msg("error beginning unit of work")
		scimError(w, statusFromError(err), http.StatusText(http.StatusInternalServerError))
		return
	}
	defer func() {
		if err := uow.Close(); err != nil {
			log.Err(err).Msg("error closing unit of work")
		}
	}()

	finalizer := bridge.NewFinalizer(uow)

	response, err := h.dispatcher.Dispatch(ctx, request, finalizer)
	if err != nil {
		var commitErr *bridge.CommitError
		if errors.As(err, &commitErr) {
			h.metrics.ObserveTransaction(metrics.OutcomeCommitFailed)
			scimError(w, http.StatusInternalServerError, commitErr.Error())
			return
		}

		h.metrics.ObserveTransaction(metrics.OutcomeRolledBack)
		scimError(w, statusFromError(err), err.Error())
		return
	}

	if finalizer.RolledBack() {
		h.metrics.ObserveTransaction(metrics.OutcomeRolledBack)
	} else {
		h.metrics.ObserveTransaction(metrics.OutcomeCommitted)
	}

	writeEngineResponse(w, response)
}

// requestBaseURL reconstructs the absolute URL of the targeted resource
// path, without the query string; the canonical query is appended by the
// caller.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host + r.URL.EscapedPath()
}
