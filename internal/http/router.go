package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jmakori/safari-quote-service/internal/metrics"
	"github.com/jmakori/safari-quote-service/internal/middleware"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// RouterConfig wires services and transport settings into the router. Nil
// services leave their routes unregistered, which is how the app runs in
// catalog-only or quote-only configurations.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	CatalogService    service.CatalogService
	ItineraryService  service.ItineraryService
	Calculator        service.QuoteCalculator
	Allocator         service.RoomAllocator
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter builds the Gin engine: global middleware, infrastructure
// endpoints, then the /api group.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	registerAPIRoutes(api, &cfg)

	return router
}

func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "X-CSRF-Token", "accept", "Cache-Control", "X-Requested-With", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	// Audit-log helpers pull the logging service out of the context.
	router.Use(func(c *gin.Context) {
		c.Set("logging_service", cfg.LoggingService)
		c.Next()
	})

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func registerAPIRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	var groups []PublicRouteGroup

	if cfg.Calculator != nil && cfg.Allocator != nil && cfg.CatalogService != nil {
		groups = append(groups, NewQuoteRoutes(cfg.Calculator, cfg.Allocator, cfg.CatalogService))
	}
	if cfg.CatalogService != nil {
		groups = append(groups, NewCatalogRoutes(cfg.CatalogService))
	}
	if cfg.ItineraryService != nil && cfg.Calculator != nil && cfg.CatalogService != nil {
		groups = append(groups, NewItineraryRoutes(cfg.ItineraryService, cfg.Calculator, cfg.CatalogService))
	}

	for _, g := range groups {
		g.RegisterPublicRoutes(api)
	}
}
