package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/internal/store"
	"github.com/idmhub/scim-bridge/models"
)

// serviceProviderService is the concrete implementation of
// [ServiceProviderService]. It loads the realm's service-provider record on
// every request; the record is read-only from the bridge's perspective.
type serviceProviderService struct {
	// repository is the data-access layer for service-provider records.
	repository store.ServiceProviderRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewServiceProviderService constructs a [ServiceProviderService] wired to
// the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewServiceProviderService(repository store.ServiceProviderRepository, logger *logger.Logger) ServiceProviderService {
	return &serviceProviderService{
		repository: repository,
		logger:     logger,
	}
}

// Active implements the availability gate. A missing record means the
// endpoint is active (default-permit); a present record decides through its
// enabled flag. Storage failures propagate so they are not mistaken for a
// disabled deployment.
func (s *serviceProviderService) Active(ctx context.Context, realmID string) (bool, error) {
	log := logger.FromContext(ctx)

	sp, err := s.repository.FindByRealm(ctx, realmID)
	if err != nil {
		if errors.Is(err, store.ErrServiceProviderNotFound) {
			return true, nil
		}

		log.Err(err).Str("realm", realmID).Msg("error loading service provider record")
		return false, fmt.Errorf("error loading service provider record: %w", err)
	}

	return sp.Enabled, nil
}

// Get returns the realm's service-provider record unchanged.
func (s *serviceProviderService) Get(ctx context.Context, realmID string) (models.ServiceProvider, error) {
	sp, err := s.repository.FindByRealm(ctx, realmID)
	if err != nil {
		return models.ServiceProvider{}, err
	}

	return sp, nil
}
