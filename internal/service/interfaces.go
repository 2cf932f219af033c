package service

import (
	"context"

	"github.com/idmhub/scim-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ServiceProviderService implements the availability gate over the per-realm
// service-provider records.
type ServiceProviderService interface {
	// Active reports whether the SCIM endpoint is active for the realm.
	// A realm without a record is active by default; a record with
	// enabled=false deactivates the endpoint.
	Active(ctx context.Context, realmID string) (bool, error)

	// Get returns the realm's record, or [store.ErrServiceProviderNotFound].
	Get(ctx context.Context, realmID string) (models.ServiceProvider, error)
}

// AuthService establishes the caller context from transport-level
// credentials. The bridge consumes it as a collaborator; authorization
// decisions per resource stay with the protocol engine.
type AuthService interface {
	// Authorize verifies the bearer token from the Authorization header and
	// returns the caller context threaded into the canonical request.
	Authorize(ctx context.Context, realmID, authorizationHeader string) (models.Authorization, error)
}
