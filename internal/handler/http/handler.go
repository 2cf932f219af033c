package http

import (
	"github.com/idmhub/scim-bridge/internal/bridge"
	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/internal/metrics"
	"github.com/idmhub/scim-bridge/internal/service"
)

type Handler struct {
	services   *service.Services
	dispatcher *bridge.Dispatcher
	uowFactory bridge.UnitOfWorkFactory
	metrics    *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, dispatcher *bridge.Dispatcher, uowFactory bridge.UnitOfWorkFactory, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		dispatcher: dispatcher,
		uowFactory: uowFactory,
		metrics:    metrics,
		logger:     logger,
	}
}
