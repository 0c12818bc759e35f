package service

import (
	"context"
	"fmt"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/store"
)

// BudgetService is the cost aggregator. It recomputes the trip's totals from
// current stored state on demand and persists the derived values back onto
// the trip. It holds no state of its own: the computation is a pure function
// of the store, so running it twice on unchanged inputs yields identical
// totals and never double-counts.
type BudgetService struct {
	store *store.TripStore
}

// NewBudgetService constructs a BudgetService backed by the provided trip store.
func NewBudgetService(s *store.TripStore) *BudgetService {
	return &BudgetService{store: s}
}

// Totals recomputes and persists the trip's cost and budget totals:
//
//	total cost = flights + stays + Σ(day activity costs × travelers) + expenses
//	total budget = per-person budget × travelers
//
// Flight, stay, and expense costs are whole-party figures; only activity
// costs are per person and scaled by traveler count.
func (s *BudgetService) Totals(ctx context.Context) (domain.BudgetTotals, error) {
	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return domain.BudgetTotals{}, fmt.Errorf("service.BudgetService.Totals: %w", err)
	}

	flights, err := s.store.LoadFlights(ctx)
	if err != nil {
		return domain.BudgetTotals{}, fmt.Errorf("service.BudgetService.Totals: %w", err)
	}
	stays, err := s.store.LoadStays(ctx)
	if err != nil {
		return domain.BudgetTotals{}, fmt.Errorf("service.BudgetService.Totals: %w", err)
	}
	expenses, err := s.store.LoadExpenses(ctx)
	if err != nil {
		return domain.BudgetTotals{}, fmt.Errorf("service.BudgetService.Totals: %w", err)
	}

	travelers := trip.Travelers
	if travelers < 1 {
		travelers = 1
	}

	var total float64
	for _, f := range flights {
		total += f.Cost
	}
	for _, st := range stays {
		total += st.Cost
	}
	for day, plan := range trip.DayPlans {
		dayTotal := dayCost(plan) * float64(travelers)
		plan.TotalCost = dayTotal
		trip.DayPlans[day] = plan
		total += dayTotal
	}
	for _, e := range expenses {
		total += e.Cost
	}

	totals := domain.BudgetTotals{
		TotalCostAllTravelers:   total,
		TotalCostPerPerson:      total / float64(travelers),
		BudgetPerPerson:         trip.BudgetPerPerson,
		TotalBudgetAllTravelers: trip.BudgetPerPerson * float64(travelers),
	}

	// Persist the derived values back onto the trip. They are a cache, and
	// writing them does not feed back into the computation above, so repeated
	// runs are idempotent.
	trip.TotalCostAllTravelers = totals.TotalCostAllTravelers
	trip.TotalCostPerPerson = totals.TotalCostPerPerson
	trip.TotalBudgetAllTravelers = totals.TotalBudgetAllTravelers
	if err := s.store.SaveTrip(ctx, trip); err != nil {
		return domain.BudgetTotals{}, fmt.Errorf("service.BudgetService.Totals: %w", err)
	}

	return totals, nil
}
