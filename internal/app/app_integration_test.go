//go:build integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmakori/safari-quote-service/config"
)

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	t.Run("with MongoDB", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:       "8080",
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			Cache: config.CacheConfig{
				Size:        1000,
				TTL:         5 * time.Minute,
				SnapshotTTL: 30 * time.Second,
			},
			Database: testDatabaseConfig(t),
		}

		assert.NotNil(t, InitializeApp(cfg))
	})

	t.Run("without MongoDB the app still serves quotes", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Server:   config.ServerConfig{Port: "8080"},
			Database: config.DatabaseConfig{Enabled: false},
		}

		assert.NotNil(t, InitializeApp(cfg))
	})

	t.Run("pricing overrides are accepted", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Server: config.ServerConfig{Port: "8080"},
			Pricing: config.PricingConfig{
				ConcessionFee:      70,
				ChildConcessionFee: 35,
				VehicleCapacity:    6,
			},
			Database: testDatabaseConfig(t),
		}

		assert.NotNil(t, InitializeApp(cfg))
	})
}
