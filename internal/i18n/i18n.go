// Package i18n provides internationalization support for the quote service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.validation.quote":     "Quote request is invalid: check party, profit and vehicle fields",
			"error.validation.rooms":     "Room suggestion request is invalid: accommodation and party size are required",
			"error.validation.catalog":   "Catalog entry is invalid: id and name are required",
			"error.validation.itinerary": "Itinerary is invalid: name is required and counts must not be negative",
			"error.storage_unavailable":  "Catalog storage is unavailable, changes were not saved",
			"error.timeout":              "Request timed out",

			// Success messages
			"success.quote_calculated": "Trip quote calculated successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.conflict":             "Conflito",
			"error.validation.quote":     "Requisição de orçamento inválida: verifique o grupo, lucro e veículos",
			"error.validation.rooms":     "Requisição de quartos inválida: hospedagem e tamanho do grupo são obrigatórios",
			"error.validation.catalog":   "Entrada de catálogo inválida: id e nome são obrigatórios",
			"error.validation.itinerary": "Itinerário inválido: nome é obrigatório e contagens não podem ser negativas",
			"error.storage_unavailable":  "Armazenamento do catálogo indisponível, alterações não foram salvas",
			"error.timeout":              "Tempo limite da requisição excedido",

			// Success messages
			"success.quote_calculated": "Orçamento da viagem calculado com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":      "Ongeldig verzoek",
			"error.invalid_request_body": "Ongeldige aanvraag body",
			"error.internal_error":       "Er is een onverwachte fout opgetreden",
			"error.not_found":            "Niet gevonden",
			"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":             "Conflict",
			"error.validation.quote":     "Offerteverzoek is ongeldig: controleer groep, marge en voertuigen",
			"error.validation.rooms":     "Kamerverzoek is ongeldig: accommodatie en groepsgrootte zijn verplicht",
			"error.validation.catalog":   "Catalogusitem is ongeldig: id en naam zijn verplicht",
			"error.validation.itinerary": "Reisschema is ongeldig: naam is verplicht en aantallen mogen niet negatief zijn",
			"error.storage_unavailable":  "Catalogusopslag is niet beschikbaar, wijzigingen zijn niet opgeslagen",
			"error.timeout":              "Verzoek time-out",

			// Success messages
			"success.quote_calculated": "Reisofferte succesvol berekend",
		},
	}
}
