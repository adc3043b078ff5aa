package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// fakeItinerariesRepo is an in-memory itinerary store for handler tests.
type fakeItinerariesRepo struct {
	itineraries map[string]model.SavedItinerary
}

func newFakeItinerariesRepo() *fakeItinerariesRepo {
	return &fakeItinerariesRepo{itineraries: make(map[string]model.SavedItinerary)}
}

func (f *fakeItinerariesRepo) Save(_ context.Context, itinerary *model.SavedItinerary) error {
	f.itineraries[itinerary.ID] = *itinerary
	return nil
}

func (f *fakeItinerariesRepo) Get(_ context.Context, id string) (*model.SavedItinerary, error) {
	itinerary, ok := f.itineraries[id]
	if !ok {
		return nil, nil
	}
	return &itinerary, nil
}

func (f *fakeItinerariesRepo) List(_ context.Context, limit int) ([]model.SavedItinerary, error) {
	out := make([]model.SavedItinerary, 0, len(f.itineraries))
	for _, itinerary := range f.itineraries {
		out = append(out, itinerary)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeItinerariesRepo) Delete(_ context.Context, id string) error {
	delete(f.itineraries, id)
	return nil
}

func setupItineraryRouter(repo *fakeItinerariesRepo) *gin.Engine {
	cfg := testRouterConfig()
	cfg.ItineraryService = service.NewItineraryService(repo)
	return NewRouter(NewHealthHandler(), cfg)
}

func TestSaveItinerary(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, model.SavedItinerary)
	}{
		{
			name:           "generates an id and normalizes the day list",
			body:           `{"name": "Serengeti classic", "days": 3, "adults": 2}`,
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, saved model.SavedItinerary) {
				assert.NotEmpty(t, saved.ID)
				assert.Equal(t, "Serengeti classic", saved.Name)
				assert.Len(t, saved.Itinerary, 3)
				assert.False(t, saved.CreatedAt.IsZero())
				assert.False(t, saved.UpdatedAt.IsZero())
			},
		},
		{
			name:           "keeps a caller-chosen id",
			body:           `{"id": "trip-1", "name": "Custom", "days": 1}`,
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, saved model.SavedItinerary) {
				assert.Equal(t, "trip-1", saved.ID)
			},
		},
		{
			name:           "missing name",
			body:           `{"days": 3}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative adults",
			body:           `{"name": "Trip", "adults": -1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupItineraryRouter(newFakeItinerariesRepo())

			w := doJSON(router, http.MethodPost, "/api/itineraries", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, decodeData[model.SavedItinerary](t, w))
			}
		})
	}
}

func TestGetItinerary(t *testing.T) {
	repo := newFakeItinerariesRepo()
	repo.itineraries["trip-1"] = model.SavedItinerary{ID: "trip-1", Name: "Saved trip"}
	router := setupItineraryRouter(repo)

	t.Run("found", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/itineraries/trip-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		itinerary := decodeData[model.SavedItinerary](t, w)
		assert.Equal(t, "Saved trip", itinerary.Name)
	})

	t.Run("missing", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/itineraries/trip-404", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListItineraries(t *testing.T) {
	repo := newFakeItinerariesRepo()
	repo.itineraries["trip-1"] = model.SavedItinerary{ID: "trip-1", Name: "First"}
	repo.itineraries["trip-2"] = model.SavedItinerary{ID: "trip-2", Name: "Second"}
	router := setupItineraryRouter(repo)

	t.Run("lists saved trips", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/itineraries", "")

		require.Equal(t, http.StatusOK, w.Code)
		itineraries := decodeData[[]model.SavedItinerary](t, w)
		assert.Len(t, itineraries, 2)
	})

	t.Run("applies the limit", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/itineraries?limit=1", "")

		require.Equal(t, http.StatusOK, w.Code)
		itineraries := decodeData[[]model.SavedItinerary](t, w)
		assert.Len(t, itineraries, 1)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/itineraries?limit=many", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/itineraries?limit=-1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteItinerary(t *testing.T) {
	repo := newFakeItinerariesRepo()
	repo.itineraries["trip-1"] = model.SavedItinerary{ID: "trip-1", Name: "Doomed"}
	router := setupItineraryRouter(repo)

	w := doJSON(router, http.MethodDelete, "/api/itineraries/trip-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/itineraries/trip-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItinerariesWithoutRepository(t *testing.T) {
	// No itinerary service wired at all.
	router := setupRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"save", http.MethodPost, "/api/itineraries", `{"name": "Trip"}`},
		{"list", http.MethodGet, "/api/itineraries", ""},
		{"get", http.MethodGet, "/api/itineraries/trip-1", ""},
		{"delete", http.MethodDelete, "/api/itineraries/trip-1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestExportItinerary(t *testing.T) {
	router := setupItineraryRouter(newFakeItinerariesRepo())

	t.Run("renders day and summary rows", func(t *testing.T) {
		body := `{
			"name": "Tarangire getaway",
			"adults": 2,
			"itinerary": [{
				"id": 1,
				"selectedAccommodation": "lodge-a",
				"roomAllocation": [{"roomTypeId": "double", "quantity": 1}],
				"places": [{"placeId": "tarangire", "selectedActivities": ["walking-safari"]}],
				"transportationCost": 30
			}]
		}`

		w := doJSON(router, http.MethodPost, "/api/itineraries/export", body)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Tarangire getaway.csv"`, w.Header().Get("Content-Disposition"))

		csv := w.Body.String()
		assert.Contains(t, csv, "Trip,Tarangire getaway\n")
		assert.Contains(t, csv, "Day,Accommodation,Adult activities,Child activities,Concession fees,Transportation,Day total\n")
		assert.Contains(t, csv, "1,200.00,100.00,0.00,0.00,30.00,330.00\n")
		assert.Contains(t, csv, "Subtotal,330.00\n")
		assert.Contains(t, csv, "Profit,0.00\n")
		assert.Contains(t, csv, "Total,330.00\n")
		assert.Contains(t, csv, "Per adult,165.00\n")
		assert.Contains(t, csv, "Per child,0.00\n")
		assert.Contains(t, csv, "Vehicles,1\n")
	})

	t.Run("defaults the filename when unnamed", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/itineraries/export", `{"adults": 1, "itinerary": [{"id": 1}]}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="itinerary.csv"`, w.Header().Get("Content-Disposition"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "Trip,\n"))
	})

	t.Run("rejects an empty itinerary", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/itineraries/export", `{"name": "Trip", "itinerary": []}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/itineraries/export", `{`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
