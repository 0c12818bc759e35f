package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/handler"
	"github.com/sumsingh11/travelmate/internal/schedule"
)

func TestGetDaySchedule_200_GridShape(t *testing.T) {
	booking := domain.Booking{
		ActivityID: uuid.New(),
		Title:      "Louvre Tour",
		StartTime:  domain.TimeOfDay(9 * 60),
		EndTime:    domain.TimeOfDay(11 * 60),
		Cost:       50,
	}
	grid, err := schedule.Layout([]domain.Booking{booking})
	require.NoError(t, err)

	h := newAPIHandler(serverMocks{planner: &mockPlannerServicer{
		schedule: func(_ context.Context, day int) (schedule.Grid, error) {
			assert.Equal(t, 1, day)
			return grid, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/days/1/schedule", nil)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ScheduleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Tracks)
	require.Len(t, resp.Rows, schedule.HoursPerDay)

	assert.Equal(t, "9:00 AM", resp.Rows[9].Hour)
	require.Len(t, resp.Rows[9].Cells, 1)
	nine := resp.Rows[9].Cells[0]
	assert.Equal(t, "start", nine.Kind)
	assert.Equal(t, 2, nine.RowSpan)
	require.NotNil(t, nine.Booking)
	assert.Equal(t, "Louvre Tour", nine.Booking.Title)

	ten := resp.Rows[10].Cells[0]
	assert.Equal(t, "covered", ten.Kind)
	assert.Nil(t, ten.Booking)

	assert.Equal(t, "empty", resp.Rows[8].Cells[0].Kind)
}

func TestGetDayPlan_422_BadDayParam(t *testing.T) {
	h := newAPIHandler(serverMocks{})

	req := httptest.NewRequest(http.MethodGet, "/api/days/nope", nil)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddBooking_201(t *testing.T) {
	activityID := uuid.New()
	h := newAPIHandler(serverMocks{planner: &mockPlannerServicer{
		addBooking: func(_ context.Context, day int, b domain.Booking) (domain.Booking, error) {
			assert.Equal(t, 2, day)
			assert.Equal(t, activityID, b.ActivityID)
			b.Title = "Louvre Tour"
			b.Cost = 50
			return b, nil
		},
	}})

	body := jsonBody(t, map[string]any{
		"activity_id": activityID,
		"start_time":  "10:00",
		"end_time":    "12:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/days/2/bookings", body)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Booking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Louvre Tour", resp.Title)
	assert.Equal(t, domain.TimeOfDay(10*60), resp.StartTime)
}

func TestAddBooking_409_Duplicate(t *testing.T) {
	h := newAPIHandler(serverMocks{planner: &mockPlannerServicer{
		addBooking: func(context.Context, int, domain.Booking) (domain.Booking, error) {
			return domain.Booking{}, fmt.Errorf("%w: activity already scheduled on this day", domain.ErrConflict)
		},
	}})

	body := jsonBody(t, map[string]any{
		"activity_id": uuid.New(), "start_time": "10:00", "end_time": "12:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/days/1/bookings", body)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "conflict", resp.Error.Code)
}

func TestRemoveBooking_204(t *testing.T) {
	activityID := uuid.New()
	h := newAPIHandler(serverMocks{planner: &mockPlannerServicer{
		removeBooking: func(_ context.Context, day int, got uuid.UUID) error {
			assert.Equal(t, 1, day)
			assert.Equal(t, activityID, got)
			return nil
		},
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/days/1/bookings/"+activityID.String(), nil)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetAvailableActivities_200(t *testing.T) {
	h := newAPIHandler(serverMocks{planner: &mockPlannerServicer{
		available: func(context.Context, int) ([]domain.Activity, error) {
			return []domain.Activity{{ID: uuid.New(), Title: "Seine Cruise", CostPerPerson: 30}}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/days/1/available", nil)
	req.Header.Set("Authorization", bearer(t, domain.RoleTraveller))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Seine Cruise", resp[0].Title)
}
