package store

import (
	"context"

	"github.com/idmhub/scim-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ServiceProviderRepository reads the per-realm service-provider records
// that gate the SCIM endpoint. The bridge never writes them.
type ServiceProviderRepository interface {
	// FindByRealm returns the record for the given realm, or
	// [ErrServiceProviderNotFound] if the realm has no record.
	FindByRealm(ctx context.Context, realmID string) (models.ServiceProvider, error)
}
