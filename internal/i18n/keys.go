// Package i18n provides internationalization support for the quote service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationQuote indicates an invalid quote request.
	ErrKeyValidationQuote = "error.validation.quote"
	// ErrKeyValidationRooms indicates an invalid room suggestion request.
	ErrKeyValidationRooms = "error.validation.rooms"
	// ErrKeyValidationCatalog indicates an invalid catalog mutation.
	ErrKeyValidationCatalog = "error.validation.catalog"
	// ErrKeyValidationItinerary indicates an invalid itinerary payload.
	ErrKeyValidationItinerary = "error.validation.itinerary"
	// ErrKeyStorageUnavailable indicates the catalog store cannot accept writes.
	ErrKeyStorageUnavailable = "error.storage_unavailable"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyQuoteCalculated indicates a successful trip quote.
	SuccessKeyQuoteCalculated = "success.quote_calculated"
)
