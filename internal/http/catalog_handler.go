package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/domain/dto"
	"github.com/jmakori/safari-quote-service/internal/i18n"
	"github.com/jmakori/safari-quote-service/internal/middleware"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// CatalogHandler provides HTTP handlers for the catalog endpoints: the
// combined snapshot read by planning clients, and the admin CRUD for places,
// accommodations and pricing constants.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetSafariData handles GET /api/safari-data requests.
//
// @Summary      Get the combined catalog snapshot
// @Description  Returns places with their activities, accommodations with their room types, and the pricing constants in one payload.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Catalog snapshot"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/safari-data [get]
func (h *CatalogHandler) GetSafariData(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(snapshot)
}

// GetPlaces handles GET /api/places requests.
//
// @Summary      List places
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Places with their activities"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/places [get]
func (h *CatalogHandler) GetPlaces(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(snapshot.Places)
}

// SavePlace handles PUT /api/places requests.
//
// @Summary      Upsert a place
// @Description  Creates or replaces a place and its activities. The place id is the caller-chosen document key.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.SavePlaceRequest true "Place with activities"
// @Success      200 {object} dto.SuccessResponse "Saved place"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Router       /api/places [put]
func (h *CatalogHandler) SavePlace(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SavePlaceRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCatalog, err)
		return
	}

	if err := h.catalog.SavePlace(c.Request.Context(), req.Place); err != nil {
		h.storageError(builder, err)
		return
	}

	h.audit(c, "save_place", "Place saved", map[string]interface{}{"place_id": req.ID})
	builder.SuccessOK(req.Place)
}

// DeletePlace handles DELETE /api/places/:id requests.
//
// @Summary      Delete a place
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Place id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Router       /api/places/{id} [delete]
func (h *CatalogHandler) DeletePlace(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.catalog.DeletePlace(c.Request.Context(), id); err != nil {
		h.storageError(builder, err)
		return
	}

	h.audit(c, "delete_place", "Place deleted", map[string]interface{}{"place_id": id})
	builder.SuccessOK(gin.H{"deleted": id})
}

// GetAccommodations handles GET /api/accommodations requests.
//
// @Summary      List accommodations
// @Tags         Catalog
// @Produce     json
// @Success      200 {object} dto.SuccessResponse "Accommodations with their room types"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/accommodations [get]
func (h *CatalogHandler) GetAccommodations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(snapshot.Accommodations)
}

// SaveAccommodation handles PUT /api/accommodations requests.
//
// @Summary      Upsert an accommodation
// @Description  Creates or replaces an accommodation and its room types.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveAccommodationRequest true "Accommodation with room types"
// @Success      200 {object} dto.SuccessResponse "Saved accommodation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Router       /api/accommodations [put]
func (h *CatalogHandler) SaveAccommodation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SaveAccommodationRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCatalog, err)
		return
	}

	if err := h.catalog.SaveAccommodation(c.Request.Context(), req.Accommodation); err != nil {
		h.storageError(builder, err)
		return
	}

	h.audit(c, "save_accommodation", "Accommodation saved", map[string]interface{}{"accommodation_id": req.ID})
	builder.SuccessOK(req.Accommodation)
}

// DeleteAccommodation handles DELETE /api/accommodations/:id requests.
//
// @Summary      Delete an accommodation
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Accommodation id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Router       /api/accommodations/{id} [delete]
func (h *CatalogHandler) DeleteAccommodation(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.catalog.DeleteAccommodation(c.Request.Context(), id); err != nil {
		h.storageError(builder, err)
		return
	}

	h.audit(c, "delete_accommodation", "Accommodation deleted", map[string]interface{}{"accommodation_id": id})
	builder.SuccessOK(gin.H{"deleted": id})
}

// GetConstants handles GET /api/constants requests.
//
// @Summary      Get the pricing constants
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Pricing constants"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/constants [get]
func (h *CatalogHandler) GetConstants(c *gin.Context) {
	builder := NewResponseBuilder(c)

	constants, err := h.catalog.Constants(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(constants)
}

// SaveConstants handles PUT /api/constants requests.
//
// @Summary      Replace the pricing constants
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveConstantsRequest true "Fee and fleet constants"
// @Success      200 {object} dto.SuccessResponse "Saved constants"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Router       /api/constants [put]
func (h *CatalogHandler) SaveConstants(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SaveConstantsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCatalog, err)
		return
	}

	if err := h.catalog.SaveConstants(c.Request.Context(), req.Constants); err != nil {
		h.storageError(builder, err)
		return
	}

	h.audit(c, "save_constants", "Pricing constants updated", map[string]interface{}{
		"concession_fee":   req.ConcessionFee,
		"vehicle_capacity": req.VehicleCapacity,
	})
	builder.SuccessOK(req.Constants)
}

// storageError maps catalog write failures to a response.
func (h *CatalogHandler) storageError(builder *ResponseBuilder, err error) {
	if errors.Is(err, service.ErrRepositoryNotConfigured) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStorageUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// audit records a catalog mutation when a logging service is wired.
func (h *CatalogHandler) audit(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}
