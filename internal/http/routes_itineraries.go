package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// ItineraryRoutes handles saved-itinerary route registration.
type ItineraryRoutes struct {
	handler *ItineraryHandler
}

// NewItineraryRoutes creates a new ItineraryRoutes instance.
func NewItineraryRoutes(itineraries service.ItineraryService, calculator service.QuoteCalculator, catalog service.CatalogService) *ItineraryRoutes {
	return &ItineraryRoutes{handler: NewItineraryHandler(itineraries, calculator, catalog)}
}

// RegisterPublicRoutes registers the itinerary persistence and export routes.
func (r *ItineraryRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/itineraries", r.handler.ListItineraries)
	rg.POST("/itineraries", r.handler.SaveItinerary)
	rg.POST("/itineraries/export", r.handler.ExportItinerary)
	rg.GET("/itineraries/:id", r.handler.GetItinerary)
	rg.DELETE("/itineraries/:id", r.handler.DeleteItinerary)
}
