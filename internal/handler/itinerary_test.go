package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumsingh11/travelmate/internal/domain"
)

func TestAddFlight_201(t *testing.T) {
	h := newAPIHandler(serverMocks{itinerary: &mockItineraryServicer{
		addFlight: func(_ context.Context, f domain.Flight) (domain.Flight, error) {
			f.ID = uuid.New()
			return f, nil
		},
	}})

	body := jsonBody(t, map[string]any{
		"departure": "JFK", "arrival": "CDG", "type": "Round-Trip", "cost": 800,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/flights", body)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Flight
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "JFK", resp.Departure)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestUpdateStay_422_BadID(t *testing.T) {
	h := newAPIHandler(serverMocks{})

	body := jsonBody(t, map[string]any{"name": "Hotel", "location": "Paris", "nights": 2, "cost": 100})
	req := httptest.NewRequest(http.MethodPut, "/api/stays/not-a-uuid", body)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestToggleTodo_200(t *testing.T) {
	id := uuid.New()
	h := newAPIHandler(serverMocks{itinerary: &mockItineraryServicer{
		toggleTodo: func(_ context.Context, gotID uuid.UUID) (domain.TodoItem, error) {
			assert.Equal(t, id, gotID)
			return domain.TodoItem{ID: gotID, Title: "Renew passport", Done: true}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodPut, "/api/todos/"+id.String()+"/toggle", nil)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TodoItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Done)
}

func TestListExpenses_200(t *testing.T) {
	h := newAPIHandler(serverMocks{itinerary: &mockItineraryServicer{
		listExpenses: func(context.Context) ([]domain.Expense, error) {
			return []domain.Expense{{ID: uuid.New(), Title: "Metro passes", Cost: 40}}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Expense
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Metro passes", resp[0].Title)
}

func TestExportTrip_200(t *testing.T) {
	h := newAPIHandler(serverMocks{export: &mockExportServicer{
		export: func(context.Context) (domain.TripExport, error) {
			return domain.TripExport{
				TripDetails: domain.Trip{Destination: "Paris", Days: 3, Travelers: 2},
				SelectedDay: 1,
			}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/trip/export", nil)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// The export document uses the storage key names at its top level.
	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	assert.Contains(t, raw, "tripDetails")
	assert.Contains(t, raw, "selectedDay")
}

func TestImportTrip_422_Invalid(t *testing.T) {
	h := newAPIHandler(serverMocks{export: &mockExportServicer{
		imp: func(_ context.Context, doc domain.TripExport) error {
			return domain.ErrValidation
		},
	}})

	body := jsonBody(t, map[string]any{"tripDetails": map[string]any{"days": 3}})
	req := httptest.NewRequest(http.MethodPost, "/api/trip/import", body)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
