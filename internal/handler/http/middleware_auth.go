package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/internal/service"
	"github.com/idmhub/scim-bridge/models"
)

type contextKey string

// authorizationContextKey stores the caller context produced by the auth
// middleware for the request's lifetime.
const authorizationContextKey contextKey = "authorization"

// auth is the HTTP middleware enforcing bearer-token authentication on the
// SCIM endpoint.
//
// It hands the raw "Authorization" header to [service.AuthService], which
// verifies the token and produces the caller context carried on the
// canonical request. On success the caller context is stored in the request
// context; on any failure the request is rejected with 401 and a SCIM error
// body. Per-resource authorization decisions stay with the protocol engine.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		realm := chi.URLParam(r, "realm")

		authorization, err := h.services.AuthService.Authorize(ctx, realm, r.Header.Get("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				scimError(w, http.StatusUnauthorized, service.ErrTokenIsExpired.Error())
			case errors.Is(err, service.ErrEmptyAuthorizationHeader),
				errors.Is(err, service.ErrInvalidAuthorizationHeader):
				log.Err(err).Send()
				scimError(w, http.StatusUnauthorized, err.Error())
			default:
				log.Err(err).Msg("error occurred during token validation")
				scimError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			}
			return
		}

		ctx = context.WithValue(ctx, authorizationContextKey, authorization)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorizationFromContext returns the caller context stored by the auth
// middleware, or the zero value when none was stored.
func authorizationFromContext(ctx context.Context) models.Authorization {
	authorization, _ := ctx.Value(authorizationContextKey).(models.Authorization)
	return authorization
}
