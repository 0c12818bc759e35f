// Package service contains the business logic for the TravelMate API.
// Services validate inputs, enforce business rules, and orchestrate store and
// repo calls. No serialization and no SQL live here — services depend on the
// typed trip store and on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/store"
)

// TripService implements business logic for the trip aggregate: creation,
// budget, and planner day selection.
type TripService struct {
	store *store.TripStore
}

// NewTripService constructs a TripService backed by the provided trip store.
func NewTripService(s *store.TripStore) *TripService {
	return &TripService{store: s}
}

// Create validates and persists a new trip, replacing the current one.
// Existing planner collections (activities, flights, ...) are left in place,
// matching the original behavior of starting a new trip without wiping
// everything.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.Destination) == "" {
		return domain.Trip{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.Days < 1 {
		return domain.Trip{}, fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	}
	if trip.Travelers < 1 {
		return domain.Trip{}, fmt.Errorf("%w: travelers must be at least 1", domain.ErrValidation)
	}
	if trip.BudgetPerPerson < 0 {
		return domain.Trip{}, fmt.Errorf("%w: budget cannot be negative", domain.ErrValidation)
	}

	trip.Destination = strings.TrimSpace(trip.Destination)
	if trip.DayPlans == nil {
		trip.DayPlans = make(map[int]domain.DayPlan)
	}

	if err := s.store.SaveTrip(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// Get returns the current trip.
// Returns domain.ErrNotFound when no trip has been created yet — callers
// redirect to trip creation on that condition.
func (s *TripService) Get(ctx context.Context) (domain.Trip, error) {
	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	return trip, nil
}

// SetBudget updates the per-person budget on the current trip.
func (s *TripService) SetBudget(ctx context.Context, budget float64) (domain.Trip, error) {
	if budget < 0 {
		return domain.Trip{}, fmt.Errorf("%w: budget cannot be negative", domain.ErrValidation)
	}

	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetBudget: %w", err)
	}

	trip.BudgetPerPerson = budget
	trip.TotalBudgetAllTravelers = budget * float64(trip.Travelers)

	if err := s.store.SaveTrip(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetBudget: %w", err)
	}
	return trip, nil
}

// SelectDay marks the given day as the planner's focus.
// The day must be within 1..trip.Days.
func (s *TripService) SelectDay(ctx context.Context, day int) error {
	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return fmt.Errorf("service.TripService.SelectDay: %w", err)
	}
	if day < 1 || day > trip.Days {
		return fmt.Errorf("%w: day %d is outside 1..%d", domain.ErrValidation, day, trip.Days)
	}
	if err := s.store.SaveSelectedDay(ctx, day); err != nil {
		return fmt.Errorf("service.TripService.SelectDay: %w", err)
	}
	return nil
}

// SelectedDay returns the planner's currently selected day.
// Returns domain.ErrNotFound when no day has been selected.
func (s *TripService) SelectedDay(ctx context.Context) (int, error) {
	day, err := s.store.LoadSelectedDay(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.SelectedDay: %w", err)
	}
	return day, nil
}
