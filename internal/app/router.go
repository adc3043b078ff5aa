// Package app provides router configuration.
package app

import (
	"github.com/jmakori/safari-quote-service/config"
	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/http"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService

	catalogOpts := []service.CatalogOption{
		service.WithSnapshotTTL(cfg.Cache.SnapshotTTL),
		service.WithSeedCatalog(model.Catalog{
			Constants: model.Constants{
				ConcessionFee:      cfg.Pricing.ConcessionFee,
				ChildConcessionFee: cfg.Pricing.ChildConcessionFee,
				VehicleCapacity:    cfg.Pricing.VehicleCapacity,
			},
		}),
		// Catalog edits change prices, so cached quotes must go.
		service.WithCatalogInvalidation(services.Calculator.InvalidateCache),
	}

	var catalogService service.CatalogService
	var itineraryService service.ItineraryService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		catalogService = service.NewCatalogService(dbComponents.CatalogRepo, catalogOpts...)
		itineraryService = service.NewItineraryService(dbComponents.ItinerariesRepo)
	} else {
		catalogService = service.NewCatalogService(nil, catalogOpts...)
		itineraryService = service.NewItineraryService(nil)
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		CatalogService:    catalogService,
		ItineraryService:  itineraryService,
		Calculator:        services.Calculator,
		Allocator:         services.Allocator,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
