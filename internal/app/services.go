// Package app provides service initialization.
package app

import (
	"github.com/jmakori/safari-quote-service/config"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.QuoteCalculator
	Allocator  service.RoomAllocator
}

// InitializeServices initializes the pricing engine services.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	var opts []service.QuoteOption

	if cfg.Size > 0 {
		opts = append(opts, service.WithQuoteCache(cfg.Size, cfg.TTL))
	}

	return &ServiceComponents{
		Calculator: service.NewQuoteCalculatorService(opts...),
		Allocator:  service.NewRoomAllocatorService(),
	}
}
