package http

import (
	"time"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *httpMetrics

	requireAuth    bool
	corsOrigins    []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("require_auth", cfg.App.RequireAuth).Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		metrics:        newHTTPMetrics(),
		requireAuth:    cfg.App.RequireAuth,
		corsOrigins:    cfg.App.CORSOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
