package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/store"
)

// ActivityService implements business logic for the activity pool.
// Edits flow through the trip store, which notifies subscribers (the planner
// patches denormalized booking fields) — this service never reaches into the
// day plans itself.
type ActivityService struct {
	store *store.TripStore
}

// NewActivityService constructs an ActivityService backed by the provided trip store.
func NewActivityService(s *store.TripStore) *ActivityService {
	return &ActivityService{store: s}
}

// List returns the full activity pool. Always returns a non-nil slice.
func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.store.LoadActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}
	return activities, nil
}

// Create validates and appends a new activity to the pool.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, err
	}

	activity.ID = uuid.New()
	activity.Title = strings.TrimSpace(activity.Title)
	activity.Description = strings.TrimSpace(activity.Description)

	activities, err := s.store.LoadActivities(ctx)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	activities = append(activities, activity)

	if err := s.store.SaveActivities(ctx, activities); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return activity, nil
}

// Update validates and replaces an existing pool entry. The store's change
// notification propagates the new title/cost into any bookings.
// Returns domain.ErrNotFound if no activity with that ID exists.
func (s *ActivityService) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, err
	}
	activity.Title = strings.TrimSpace(activity.Title)
	activity.Description = strings.TrimSpace(activity.Description)

	activities, err := s.store.LoadActivities(ctx)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}

	found := false
	for i := range activities {
		if activities[i].ID == activity.ID {
			activities[i] = activity
			found = true
			break
		}
	}
	if !found {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", domain.ErrNotFound)
	}

	if err := s.store.SaveActivities(ctx, activities); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return activity, nil
}

// Delete removes an activity from the pool. Bookings referencing it are left
// in place — synchronization on delete is best-effort, not transactional.
// Returns domain.ErrNotFound if no activity with that ID exists.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	activities, err := s.store.LoadActivities(ctx)
	if err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}

	kept := activities[:0]
	found := false
	for _, a := range activities {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return fmt.Errorf("service.ActivityService.Delete: %w", domain.ErrNotFound)
	}

	if err := s.store.SaveActivities(ctx, kept); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// validateActivity enforces pool entry rules common to Create and Update.
func validateActivity(a domain.Activity) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if a.CostPerPerson < 0 {
		return fmt.Errorf("%w: cost cannot be negative", domain.ErrValidation)
	}
	return nil
}
