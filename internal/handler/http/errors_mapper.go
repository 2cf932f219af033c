package http

import (
	"errors"
	"net/http"

	"github.com/idmhub/scim-bridge/internal/service"
	"github.com/idmhub/scim-bridge/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	service.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	service.ErrTokenIsExpired:             http.StatusUnauthorized,
	service.ErrInvalidToken:               http.StatusUnauthorized,

	store.ErrServiceProviderNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:        http.StatusInternalServerError,
	store.ErrExecutingQuery:          http.StatusInternalServerError,
	store.ErrScanningRow:             http.StatusInternalServerError,
	store.ErrBeginningTransaction:    http.StatusInternalServerError,
	store.ErrCommitingTransaction:    http.StatusInternalServerError,
	store.ErrRollbackOnlyTransaction: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
