package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/service"
)

func TestBudgetService_NoActiveTrip(t *testing.T) {
	svc := service.NewBudgetService(newTripStore())

	_, err := svc.Totals(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBudgetService_SumsAllSources(t *testing.T) {
	ts := newTripStore()
	ctx := context.Background()

	_, err := service.NewTripService(ts).Create(ctx, validTrip()) // 2 travelers
	require.NoError(t, err)

	itinerary := service.NewItineraryService(ts)
	_, err = itinerary.AddFlight(ctx, domain.Flight{Departure: "JFK", Arrival: "CDG", Type: "Round-Trip", Cost: 800})
	require.NoError(t, err)
	_, err = itinerary.AddStay(ctx, domain.Stay{Name: "Hotel Lutetia", Location: "Paris", Nights: 3, Cost: 450})
	require.NoError(t, err)
	_, err = itinerary.AddExpense(ctx, domain.Expense{Title: "Metro passes", Cost: 40})
	require.NoError(t, err)

	activity, err := service.NewActivityService(ts).Create(ctx, domain.Activity{Title: "Louvre", CostPerPerson: 50})
	require.NoError(t, err)
	_, err = service.NewPlannerService(ts).AddBooking(ctx, 1, domain.Booking{
		ActivityID: activity.ID,
		StartTime:  mustTime(t, "10:00"),
		EndTime:    mustTime(t, "12:00"),
	})
	require.NoError(t, err)

	totals, err := service.NewBudgetService(ts).Totals(ctx)

	require.NoError(t, err)
	// 800 + 450 + (50 × 2 travelers) + 40.
	assert.Equal(t, 1390.0, totals.TotalCostAllTravelers)
	assert.Equal(t, 695.0, totals.TotalCostPerPerson)
}

func TestBudgetService_Idempotent(t *testing.T) {
	ts := newTripStore()
	ctx := context.Background()

	_, err := service.NewTripService(ts).Create(ctx, validTrip())
	require.NoError(t, err)
	_, err = service.NewTripService(ts).SetBudget(ctx, 500)
	require.NoError(t, err)
	_, err = service.NewItineraryService(ts).AddExpense(ctx, domain.Expense{Title: "Museum pass", Cost: 120})
	require.NoError(t, err)

	svc := service.NewBudgetService(ts)

	first, err := svc.Totals(ctx)
	require.NoError(t, err)
	second, err := svc.Totals(ctx)
	require.NoError(t, err)

	// The derived totals written by the first run must not feed back into
	// the second — no double counting.
	assert.Equal(t, first, second)
}

func TestBudgetService_BudgetScalesByTravelers(t *testing.T) {
	ts := newTripStore()
	ctx := context.Background()

	_, err := service.NewTripService(ts).Create(ctx, validTrip()) // 2 travelers
	require.NoError(t, err)
	_, err = service.NewTripService(ts).SetBudget(ctx, 500)
	require.NoError(t, err)

	totals, err := service.NewBudgetService(ts).Totals(ctx)

	require.NoError(t, err)
	assert.Equal(t, 500.0, totals.BudgetPerPerson)
	assert.Equal(t, 1000.0, totals.TotalBudgetAllTravelers)
}

// TestBudgetService_EndToEnd walks the full planning flow: create a trip,
// add an activity, schedule it, and verify the aggregator's totals.
func TestBudgetService_EndToEnd(t *testing.T) {
	ts := newTripStore()
	ctx := context.Background()

	_, err := service.NewTripService(ts).Create(ctx, domain.Trip{
		Destination: "Paris", Days: 3, Travelers: 2,
	})
	require.NoError(t, err)

	activity, err := service.NewActivityService(ts).Create(ctx, domain.Activity{
		Title: "Seine Cruise", CostPerPerson: 50,
	})
	require.NoError(t, err)

	planner := service.NewPlannerService(ts)
	_, err = planner.AddBooking(ctx, 1, domain.Booking{
		ActivityID: activity.ID,
		StartTime:  mustTime(t, "10:00"),
		EndTime:    mustTime(t, "12:00"),
	})
	require.NoError(t, err)

	plan, err := planner.DayPlan(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, plan.TotalCost, "day-1 total: 50.00 × 2 travelers")

	totals, err := service.NewBudgetService(ts).Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, totals.TotalCostAllTravelers, "trip total includes day 1")
}
