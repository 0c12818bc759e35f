package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/schedule"
	"github.com/sumsingh11/travelmate/internal/store"
)

// PlannerService implements business logic for day schedules: adding,
// editing, and removing bookings, and computing the layout grid.
//
// It also receives activity-change notifications (wired in main via
// TripStore.Subscribe) and patches the denormalized title/cost carried by
// existing bookings.
type PlannerService struct {
	store *store.TripStore
}

// NewPlannerService constructs a PlannerService backed by the provided trip store.
func NewPlannerService(s *store.TripStore) *PlannerService {
	return &PlannerService{store: s}
}

// DayPlan returns the plan for the given day with its per-person activity
// total refreshed. A day with nothing scheduled yields an empty plan, not an
// error.
func (s *PlannerService) DayPlan(ctx context.Context, day int) (domain.DayPlan, error) {
	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.PlannerService.DayPlan: %w", err)
	}
	if day < 1 || day > trip.Days {
		return domain.DayPlan{}, fmt.Errorf("%w: day %d is outside 1..%d", domain.ErrValidation, day, trip.Days)
	}

	plan := trip.DayPlans[day]
	if plan.Bookings == nil {
		plan.Bookings = []domain.Booking{}
	}
	plan.TotalCost = dayCost(plan) * float64(trip.Travelers)
	return plan, nil
}

// Schedule computes the hour-grid layout for the given day.
func (s *PlannerService) Schedule(ctx context.Context, day int) (schedule.Grid, error) {
	plan, err := s.DayPlan(ctx, day)
	if err != nil {
		return schedule.Grid{}, err
	}
	grid, err := schedule.Layout(plan.Bookings)
	if err != nil {
		return schedule.Grid{}, fmt.Errorf("service.PlannerService.Schedule: %w", err)
	}
	return grid, nil
}

// AddBooking validates and places a booking on the given day.
// The referenced activity must exist in the pool; its title and cost are
// denormalized onto the booking at placement time. The same activity cannot
// be scheduled twice on one day.
func (s *PlannerService) AddBooking(ctx context.Context, day int, booking domain.Booking) (domain.Booking, error) {
	if err := validateBookingTimes(booking); err != nil {
		return domain.Booking{}, err
	}

	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.PlannerService.AddBooking: %w", err)
	}
	if day < 1 || day > trip.Days {
		return domain.Booking{}, fmt.Errorf("%w: day %d is outside 1..%d", domain.ErrValidation, day, trip.Days)
	}

	activity, err := s.findActivity(ctx, booking.ActivityID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.PlannerService.AddBooking: %w", err)
	}
	booking.Title = activity.Title
	booking.Cost = activity.CostPerPerson

	plan := trip.DayPlans[day]
	for _, b := range plan.Bookings {
		if b.ActivityID == booking.ActivityID {
			return domain.Booking{}, fmt.Errorf("%w: activity %q is already scheduled on day %d", domain.ErrConflict, activity.Title, day)
		}
	}
	plan.Bookings = append(plan.Bookings, booking)

	if err := s.saveDayPlan(ctx, trip, day, plan); err != nil {
		return domain.Booking{}, fmt.Errorf("service.PlannerService.AddBooking: %w", err)
	}
	return booking, nil
}

// UpdateBooking replaces the times and color of an existing booking,
// identified by day and activity ID. Title and cost stay denormalized from
// the pool and cannot be edited here.
// Returns domain.ErrNotFound if the activity is not scheduled on that day.
func (s *PlannerService) UpdateBooking(ctx context.Context, day int, booking domain.Booking) (domain.Booking, error) {
	if err := validateBookingTimes(booking); err != nil {
		return domain.Booking{}, err
	}

	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.PlannerService.UpdateBooking: %w", err)
	}
	if day < 1 || day > trip.Days {
		return domain.Booking{}, fmt.Errorf("%w: day %d is outside 1..%d", domain.ErrValidation, day, trip.Days)
	}

	plan := trip.DayPlans[day]
	for i := range plan.Bookings {
		if plan.Bookings[i].ActivityID != booking.ActivityID {
			continue
		}
		plan.Bookings[i].StartTime = booking.StartTime
		plan.Bookings[i].EndTime = booking.EndTime
		if booking.Color != "" {
			plan.Bookings[i].Color = booking.Color
		}
		updated := plan.Bookings[i]
		if err := s.saveDayPlan(ctx, trip, day, plan); err != nil {
			return domain.Booking{}, fmt.Errorf("service.PlannerService.UpdateBooking: %w", err)
		}
		return updated, nil
	}
	return domain.Booking{}, fmt.Errorf("service.PlannerService.UpdateBooking: %w", domain.ErrNotFound)
}

// RemoveBooking takes an activity off the given day's schedule. The activity
// itself stays in the pool and becomes available for scheduling again —
// availability is derived from the day plans, never stored.
// Returns domain.ErrNotFound if the activity is not scheduled on that day.
func (s *PlannerService) RemoveBooking(ctx context.Context, day int, activityID uuid.UUID) error {
	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return fmt.Errorf("service.PlannerService.RemoveBooking: %w", err)
	}
	if day < 1 || day > trip.Days {
		return fmt.Errorf("%w: day %d is outside 1..%d", domain.ErrValidation, day, trip.Days)
	}

	plan := trip.DayPlans[day]
	kept := plan.Bookings[:0]
	found := false
	for _, b := range plan.Bookings {
		if b.ActivityID == activityID {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return fmt.Errorf("service.PlannerService.RemoveBooking: %w", domain.ErrNotFound)
	}
	plan.Bookings = kept

	if err := s.saveDayPlan(ctx, trip, day, plan); err != nil {
		return fmt.Errorf("service.PlannerService.RemoveBooking: %w", err)
	}
	return nil
}

// AvailableActivities returns the pool entries not yet scheduled on the
// given day — the list the planner offers for drag-and-drop.
func (s *PlannerService) AvailableActivities(ctx context.Context, day int) ([]domain.Activity, error) {
	plan, err := s.DayPlan(ctx, day)
	if err != nil {
		return nil, err
	}
	activities, err := s.store.LoadActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.AvailableActivities: %w", err)
	}

	scheduled := make(map[uuid.UUID]bool, len(plan.Bookings))
	for _, b := range plan.Bookings {
		scheduled[b.ActivityID] = true
	}

	available := []domain.Activity{}
	for _, a := range activities {
		if !scheduled[a.ID] {
			available = append(available, a)
		}
	}
	return available, nil
}

// ApplyActivityChange patches the denormalized title and cost of every
// booking referencing the changed activity, across all day plans.
// Registered as a store subscriber in main.
func (s *PlannerService) ApplyActivityChange(ctx context.Context, change domain.ActivityChange) error {
	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		// No trip means no bookings to patch.
		return nil
	}

	changed := false
	for day, plan := range trip.DayPlans {
		for i := range plan.Bookings {
			if plan.Bookings[i].ActivityID != change.ID {
				continue
			}
			plan.Bookings[i].Title = change.Title
			plan.Bookings[i].Cost = change.CostPerPerson
			changed = true
		}
		trip.DayPlans[day] = plan
	}
	if !changed {
		return nil
	}

	if err := s.store.SaveTrip(ctx, trip); err != nil {
		return fmt.Errorf("service.PlannerService.ApplyActivityChange: %w", err)
	}
	return nil
}

// findActivity looks up a pool entry by ID.
func (s *PlannerService) findActivity(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	activities, err := s.store.LoadActivities(ctx)
	if err != nil {
		return domain.Activity{}, err
	}
	for _, a := range activities {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Activity{}, fmt.Errorf("activity: %w", domain.ErrNotFound)
}

// saveDayPlan writes one day's plan back onto the trip with its cost cache
// refreshed.
func (s *PlannerService) saveDayPlan(ctx context.Context, trip domain.Trip, day int, plan domain.DayPlan) error {
	plan.TotalCost = dayCost(plan) * float64(trip.Travelers)
	if trip.DayPlans == nil {
		trip.DayPlans = make(map[int]domain.DayPlan)
	}
	trip.DayPlans[day] = plan
	return s.store.SaveTrip(ctx, trip)
}

// dayCost sums the per-person cost of a day's bookings.
func dayCost(plan domain.DayPlan) float64 {
	var sum float64
	for _, b := range plan.Bookings {
		sum += b.Cost
	}
	return sum
}

// validateBookingTimes enforces the time invariant shared by Add and Update.
// The layout engine re-checks this, but the planner rejects bad input before
// it is ever persisted.
func validateBookingTimes(b domain.Booking) error {
	if b.EndTime <= b.StartTime {
		return fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}
	return nil
}
