package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/store"
)

// ExportService assembles the single-document trip snapshot and restores it.
type ExportService struct {
	store *store.TripStore
}

// NewExportService constructs an ExportService backed by the provided trip store.
func NewExportService(s *store.TripStore) *ExportService {
	return &ExportService{store: s}
}

// Export returns the full planner state as one document. Requires an active
// trip; every other collection defaults to empty when unset.
func (s *ExportService) Export(ctx context.Context) (domain.TripExport, error) {
	trip, err := s.store.LoadTrip(ctx)
	if err != nil {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	doc := domain.TripExport{TripDetails: trip}

	if doc.Activities, err = s.store.LoadActivities(ctx); err != nil {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	if doc.Flights, err = s.store.LoadFlights(ctx); err != nil {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	if doc.Stays, err = s.store.LoadStays(ctx); err != nil {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	if doc.AdditionalExpenses, err = s.store.LoadExpenses(ctx); err != nil {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	if doc.TodoList, err = s.store.LoadTodos(ctx); err != nil {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	if day, err := s.store.LoadSelectedDay(ctx); err == nil {
		doc.SelectedDay = day
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.TripExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	return doc, nil
}

// Import validates the snapshot and replaces all existing local state with
// it, wholesale. Validation checks only the fields a trip cannot exist
// without: destination, day count, and traveler count. There is no merging
// and no partial import; a document that fails validation changes nothing.
func (s *ExportService) Import(ctx context.Context, doc domain.TripExport) error {
	if strings.TrimSpace(doc.TripDetails.Destination) == "" {
		return fmt.Errorf("%w: imported trip is missing a destination", domain.ErrValidation)
	}
	if doc.TripDetails.Days < 1 {
		return fmt.Errorf("%w: imported trip is missing a day count", domain.ErrValidation)
	}
	if doc.TripDetails.Travelers < 1 {
		return fmt.Errorf("%w: imported trip is missing a traveler count", domain.ErrValidation)
	}

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("service.ExportService.Import: %w", err)
	}

	if err := s.store.SaveTrip(ctx, doc.TripDetails); err != nil {
		return fmt.Errorf("service.ExportService.Import: %w", err)
	}
	if err := s.store.SaveActivities(ctx, emptyIfNil(doc.Activities)); err != nil {
		return fmt.Errorf("service.ExportService.Import: %w", err)
	}
	if err := s.store.SaveFlights(ctx, emptyIfNil(doc.Flights)); err != nil {
		return fmt.Errorf("service.ExportService.Import: %w", err)
	}
	if err := s.store.SaveStays(ctx, emptyIfNil(doc.Stays)); err != nil {
		return fmt.Errorf("service.ExportService.Import: %w", err)
	}
	if err := s.store.SaveExpenses(ctx, emptyIfNil(doc.AdditionalExpenses)); err != nil {
		return fmt.Errorf("service.ExportService.Import: %w", err)
	}
	if err := s.store.SaveTodos(ctx, emptyIfNil(doc.TodoList)); err != nil {
		return fmt.Errorf("service.ExportService.Import: %w", err)
	}
	if doc.SelectedDay >= 1 && doc.SelectedDay <= doc.TripDetails.Days {
		if err := s.store.SaveSelectedDay(ctx, doc.SelectedDay); err != nil {
			return fmt.Errorf("service.ExportService.Import: %w", err)
		}
	}
	return nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
