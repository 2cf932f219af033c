package service

import (
	"github.com/idmhub/scim-bridge/internal/config"
	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/internal/store"
)

type Services struct {
	AuthService            AuthService
	ServiceProviderService ServiceProviderService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:            NewAuthService(cfg.App, logger),
		ServiceProviderService: NewServiceProviderService(repositories.ServiceProviders, logger),
	}
}
