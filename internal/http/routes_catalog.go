package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// CatalogRoutes handles catalog route registration.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(catalog service.CatalogService) *CatalogRoutes {
	return &CatalogRoutes{handler: NewCatalogHandler(catalog)}
}

// RegisterPublicRoutes registers the snapshot and admin catalog routes.
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/safari-data", r.handler.GetSafariData)

	rg.GET("/places", r.handler.GetPlaces)
	rg.PUT("/places", r.handler.SavePlace)
	rg.DELETE("/places/:id", r.handler.DeletePlace)

	rg.GET("/accommodations", r.handler.GetAccommodations)
	rg.PUT("/accommodations", r.handler.SaveAccommodation)
	rg.DELETE("/accommodations/:id", r.handler.DeleteAccommodation)

	rg.GET("/constants", r.handler.GetConstants)
	rg.PUT("/constants", r.handler.SaveConstants)
}
