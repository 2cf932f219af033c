package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/idmhub/scim-bridge/internal/logger"
)

// availability is the service availability gate. It runs first on the SCIM
// route, before authentication: a realm whose endpoint is disabled answers
// 404 for every caller, authenticated or not, and no unit of work or engine
// call ever happens for it. A realm without a record is active by default.
func (h *Handler) availability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		realm := chi.URLParam(r, "realm")

		active, err := h.services.ServiceProviderService.Active(ctx, realm)
		if err != nil {
			log.Err(err).Str("realm", realm).Msg("availability check failed")
			scimError(w, statusFromError(err), http.StatusText(http.StatusInternalServerError))
			return
		}
		if !active {
			log.Info().Str("realm", realm).Msg("scim endpoint disabled for realm")
			scimError(w, http.StatusNotFound, "resource not found")
			return
		}

		next.ServeHTTP(w, r)
	})
}
