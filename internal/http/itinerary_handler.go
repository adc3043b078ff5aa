package http

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/domain/dto"
	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/i18n"
	"github.com/jmakori/safari-quote-service/internal/middleware"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// ItineraryHandler provides HTTP handlers for saved trip itineraries.
type ItineraryHandler struct {
	itineraries service.ItineraryService
	calculator  service.QuoteCalculator
	catalog     service.CatalogService
}

// NewItineraryHandler creates a new ItineraryHandler instance.
func NewItineraryHandler(itineraries service.ItineraryService, calculator service.QuoteCalculator, catalog service.CatalogService) *ItineraryHandler {
	return &ItineraryHandler{
		itineraries: itineraries,
		calculator:  calculator,
		catalog:     catalog,
	}
}

// ListItineraries handles GET /api/itineraries requests.
//
// @Summary      List saved itineraries
// @Description  Returns saved trips sorted by most recently updated.
// @Tags         Itineraries
// @Produce      json
// @Param        limit query int false "Maximum number of itineraries to return"
// @Success      200 {object} dto.SuccessResponse "Saved itineraries"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/itineraries [get]
func (h *ItineraryHandler) ListItineraries(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		limit = parsed
	}

	itineraries, err := h.itineraries.List(c.Request.Context(), limit)
	if err != nil {
		h.storageError(builder, err)
		return
	}

	builder.SuccessOK(itineraries)
}

// SaveItinerary handles POST /api/itineraries requests.
//
// @Summary      Save a trip itinerary
// @Description  Persists a named trip. When an id is present the document is replaced, otherwise an id is generated. The day list is normalized to the declared day count before saving.
// @Tags         Itineraries
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveItineraryRequest true "Trip to save"
// @Success      201 {object} dto.SuccessResponse "Saved itinerary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/itineraries [post]
func (h *ItineraryHandler) SaveItinerary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SaveItineraryRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItinerary, err)
		return
	}

	saved, err := h.itineraries.Save(c.Request.Context(), req.Model())
	if err != nil {
		h.storageError(builder, err)
		return
	}

	h.audit(c, "save_itinerary", "Itinerary saved", map[string]interface{}{
		"itinerary_id": saved.ID,
		"name":         saved.Name,
		"days":         saved.Days,
	})
	builder.SuccessCreated(saved)
}

// GetItinerary handles GET /api/itineraries/:id requests.
//
// @Summary      Get a saved itinerary
// @Tags         Itineraries
// @Produce      json
// @Param        id path string true "Itinerary id"
// @Success      200 {object} dto.SuccessResponse "Saved itinerary"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/itineraries/{id} [get]
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	itinerary, err := h.itineraries.Get(c.Request.Context(), id)
	if err != nil {
		h.storageError(builder, err)
		return
	}
	if itinerary == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(itinerary)
}

// DeleteItinerary handles DELETE /api/itineraries/:id requests.
//
// @Summary      Delete a saved itinerary
// @Tags         Itineraries
// @Produce      json
// @Param        id path string true "Itinerary id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/itineraries/{id} [delete]
func (h *ItineraryHandler) DeleteItinerary(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.itineraries.Delete(c.Request.Context(), id); err != nil {
		h.storageError(builder, err)
		return
	}

	h.audit(c, "delete_itinerary", "Itinerary deleted", map[string]interface{}{"itinerary_id": id})
	builder.SuccessOK(gin.H{"deleted": id})
}

// ExportItinerary handles POST /api/itineraries/export requests.
//
// @Summary      Export a trip as CSV
// @Description  Prices the itinerary against the current catalog and returns a CSV with one row per day plus subtotal, profit, total and per-share rows.
// @Tags         Itineraries
// @Accept       json
// @Produce      text/csv
// @Param        request body dto.ExportItineraryRequest true "Trip to export"
// @Success      200 {string} string "CSV document"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/itineraries/export [post]
func (h *ItineraryHandler) ExportItinerary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ExportItineraryRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItinerary, err)
		return
	}

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	pricing := req.PricingContext(snapshot.Constants)
	totals := h.calculator.CalculateTotals(req.Itinerary, pricing, snapshot)

	data, err := renderTripCSV(req.Name, totals)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	name := req.Name
	if name == "" {
		name = "itinerary"
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// renderTripCSV writes one row per day followed by the trip summary rows.
func renderTripCSV(name string, totals model.TripTotals) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Trip", name},
		{},
		{"Day", "Accommodation", "Adult activities", "Child activities", "Concession fees", "Transportation", "Day total"},
	}
	for _, day := range totals.Days {
		rows = append(rows, []string{
			strconv.Itoa(day.Day),
			money(day.AccommodationCost),
			money(day.AdultActivitiesCost),
			money(day.ChildActivitiesCost),
			money(day.TotalConcessionFee),
			money(day.TransportationCost),
			money(day.TotalCost),
		})
	}
	rows = append(rows,
		[]string{},
		[]string{"Subtotal", money(totals.Subtotal)},
		[]string{"Profit", money(totals.Profit)},
		[]string{"Total", money(totals.Total)},
		[]string{"Per adult", money(totals.PerAdult)},
		[]string{"Per child", money(totals.PerChild)},
		[]string{"Vehicles", strconv.Itoa(totals.VehicleCount)},
	)

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// money formats a USD amount with two decimals for export.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// storageError maps persistence failures to a response.
func (h *ItineraryHandler) storageError(builder *ResponseBuilder, err error) {
	if errors.Is(err, service.ErrRepositoryNotConfigured) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStorageUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// audit records an itinerary mutation when a logging service is wired.
func (h *ItineraryHandler) audit(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}
