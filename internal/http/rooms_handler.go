package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/domain/dto"
	"github.com/jmakori/safari-quote-service/internal/i18n"
	"github.com/jmakori/safari-quote-service/internal/metrics"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// RoomsHandler provides the room allocation suggestion endpoint.
type RoomsHandler struct {
	allocator service.RoomAllocator
	catalog   service.CatalogService
}

// NewRoomsHandler creates a new RoomsHandler instance.
func NewRoomsHandler(allocator service.RoomAllocator, catalog service.CatalogService) *RoomsHandler {
	return &RoomsHandler{
		allocator: allocator,
		catalog:   catalog,
	}
}

// SuggestRooms handles POST /api/rooms/suggest requests.
//
// @Summary      Suggest a room allocation
// @Description  Proposes room-type quantities at the given accommodation that sleep the whole party, preferring larger rooms and breaking ties on cheaper cost per person. Unknown accommodations and non-positive parties return an empty allocation.
// @Tags         Rooms
// @Accept       json
// @Produce      json
// @Param        request body dto.SuggestRoomsRequest true "Accommodation and party size"
// @Success      200 {object} dto.SuccessResponse "Suggested allocation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rooms/suggest [post]
func (h *RoomsHandler) SuggestRooms(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SuggestRoomsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordRoomSuggestion("validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationRooms, err)
		return
	}

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		metrics.RecordRoomSuggestion("catalog_error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	allocation := h.allocator.Suggest(req.AccommodationID, req.PartySize, req.IsHighSeason, snapshot)

	metrics.RecordRoomSuggestion("success")
	builder.SuccessOK(allocation)
}
