package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/domain/dto"
	"github.com/jmakori/safari-quote-service/internal/i18n"
	"github.com/jmakori/safari-quote-service/internal/metrics"
	"github.com/jmakori/safari-quote-service/internal/middleware"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// QuoteHandler provides HTTP handlers for trip pricing routes.
type QuoteHandler struct {
	calculator service.QuoteCalculator
	catalog    service.CatalogService
}

// NewQuoteHandler creates a new QuoteHandler instance.
func NewQuoteHandler(calculator service.QuoteCalculator, catalog service.CatalogService) *QuoteHandler {
	return &QuoteHandler{
		calculator: calculator,
		catalog:    catalog,
	}
}

// CalculateTrip handles POST /api/quote requests.
//
// @Summary      Calculate trip totals
// @Description  Prices a whole itinerary against the current catalog and returns per-day breakdowns, the trip subtotal, the grand total with profit, and the weighted per-adult and per-child split. Supports idempotency via Idempotency-Key header.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.QuoteRequest true "Party, pricing switches and itinerary"
// @Success      200 {object} dto.SuccessResponse "Trip totals"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *QuoteHandler) CalculateTrip(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordQuoteCalculation(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuote, err)
		return
	}

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		metrics.RecordQuoteCalculation(0, "catalog_error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "quote", "Trip quote requested", map[string]interface{}{
				"days":     len(req.Itinerary),
				"adults":   req.Adults,
				"children": req.Children,
			})
		}
	}

	start := time.Now()
	pricing := req.PricingContext(snapshot.Constants)
	totals := h.calculator.CalculateTotals(req.Itinerary, pricing, snapshot)
	duration := time.Since(start)

	metrics.RecordQuoteCalculation(duration, "success")
	builder.SuccessOK(totals)
}

// CalculateDay handles POST /api/quote/day requests.
//
// @Summary      Calculate a single day's costs
// @Description  Prices one trip day against the current catalog and returns the accommodation, activity, concession and transport components plus the day total.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.DayQuoteRequest true "Party, pricing switches and the day to price"
// @Success      200 {object} dto.SuccessResponse "Day cost breakdown"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote/day [post]
func (h *QuoteHandler) CalculateDay(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.DayQuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordQuoteCalculation(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuote, err)
		return
	}

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		metrics.RecordQuoteCalculation(0, "catalog_error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	start := time.Now()
	pricing := req.PricingContext(snapshot.Constants)
	breakdown := h.calculator.CalculateDayCosts(req.Day, pricing, snapshot)
	duration := time.Since(start)

	metrics.RecordQuoteCalculation(duration, "success")
	builder.SuccessOK(breakdown)
}
