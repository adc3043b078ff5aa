// Package main is the entry point for the safari-quote-service application.
//
// @title           Safari Quote Service API
// @version         1.0.0
// @description     API for pricing safari trip itineraries and suggesting room allocations.
//
//	The service prices multi-day itineraries against a catalog of places,
//	activities and accommodations, and proposes room allocations that sleep
//	the whole party.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/jmakori/safari-quote-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Quotes
// @tag.description Trip and day pricing operations
//
// @tag.name        Rooms
// @tag.description Room allocation suggestions
//
// @tag.name        Catalog
// @tag.description Places, accommodations and pricing constants
//
// @tag.name        Itineraries
// @tag.description Saved trip persistence and export
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/jmakori/safari-quote-service/docs" // swagger docs

	"github.com/jmakori/safari-quote-service/config"
	"github.com/jmakori/safari-quote-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
