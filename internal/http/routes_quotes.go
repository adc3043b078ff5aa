package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// QuoteRoutes handles pricing-related route registration.
type QuoteRoutes struct {
	quoteHandler *QuoteHandler
	roomsHandler *RoomsHandler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(calculator service.QuoteCalculator, allocator service.RoomAllocator, catalog service.CatalogService) *QuoteRoutes {
	return &QuoteRoutes{
		quoteHandler: NewQuoteHandler(calculator, catalog),
		roomsHandler: NewRoomsHandler(allocator, catalog),
	}
}

// RegisterPublicRoutes registers the pricing routes.
func (r *QuoteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/quote", r.quoteHandler.CalculateTrip)
	rg.POST("/quote/day", r.quoteHandler.CalculateDay)
	rg.POST("/rooms/suggest", r.roomsHandler.SuggestRooms)
}

// GetQuoteHandler returns the underlying quote handler.
func (r *QuoteRoutes) GetQuoteHandler() *QuoteHandler {
	return r.quoteHandler
}
