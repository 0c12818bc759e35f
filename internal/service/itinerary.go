package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/store"
)

// ItineraryService implements the list-backed trip-overview collections:
// flights, stays, ad-hoc expenses, and the to-do list. Each is a validated
// append/replace/remove over its store key with no cross-entity invariants.
type ItineraryService struct {
	store *store.TripStore
}

// NewItineraryService constructs an ItineraryService backed by the provided trip store.
func NewItineraryService(s *store.TripStore) *ItineraryService {
	return &ItineraryService{store: s}
}

// --- flights ----------------------------------------------------------------

// ListFlights returns all flights. Always returns a non-nil slice.
func (s *ItineraryService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	flights, err := s.store.LoadFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListFlights: %w", err)
	}
	return flights, nil
}

// AddFlight validates and appends a flight.
func (s *ItineraryService) AddFlight(ctx context.Context, f domain.Flight) (domain.Flight, error) {
	if err := validateFlight(f); err != nil {
		return domain.Flight{}, err
	}
	f.ID = uuid.New()

	flights, err := s.store.LoadFlights(ctx)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("service.ItineraryService.AddFlight: %w", err)
	}
	flights = append(flights, f)
	if err := s.store.SaveFlights(ctx, flights); err != nil {
		return domain.Flight{}, fmt.Errorf("service.ItineraryService.AddFlight: %w", err)
	}
	return f, nil
}

// UpdateFlight validates and replaces an existing flight.
// Returns domain.ErrNotFound if no flight with that ID exists.
func (s *ItineraryService) UpdateFlight(ctx context.Context, f domain.Flight) (domain.Flight, error) {
	if err := validateFlight(f); err != nil {
		return domain.Flight{}, err
	}

	flights, err := s.store.LoadFlights(ctx)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("service.ItineraryService.UpdateFlight: %w", err)
	}
	for i := range flights {
		if flights[i].ID == f.ID {
			flights[i] = f
			if err := s.store.SaveFlights(ctx, flights); err != nil {
				return domain.Flight{}, fmt.Errorf("service.ItineraryService.UpdateFlight: %w", err)
			}
			return f, nil
		}
	}
	return domain.Flight{}, fmt.Errorf("service.ItineraryService.UpdateFlight: %w", domain.ErrNotFound)
}

// RemoveFlight deletes a flight by ID.
// Returns domain.ErrNotFound if no flight with that ID exists.
func (s *ItineraryService) RemoveFlight(ctx context.Context, id uuid.UUID) error {
	flights, err := s.store.LoadFlights(ctx)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveFlight: %w", err)
	}
	kept, found := removeByID(flights, func(f domain.Flight) uuid.UUID { return f.ID }, id)
	if !found {
		return fmt.Errorf("service.ItineraryService.RemoveFlight: %w", domain.ErrNotFound)
	}
	if err := s.store.SaveFlights(ctx, kept); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveFlight: %w", err)
	}
	return nil
}

// --- stays ------------------------------------------------------------------

// ListStays returns all stays. Always returns a non-nil slice.
func (s *ItineraryService) ListStays(ctx context.Context) ([]domain.Stay, error) {
	stays, err := s.store.LoadStays(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListStays: %w", err)
	}
	return stays, nil
}

// AddStay validates and appends a stay.
func (s *ItineraryService) AddStay(ctx context.Context, st domain.Stay) (domain.Stay, error) {
	if err := validateStay(st); err != nil {
		return domain.Stay{}, err
	}
	st.ID = uuid.New()

	stays, err := s.store.LoadStays(ctx)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("service.ItineraryService.AddStay: %w", err)
	}
	stays = append(stays, st)
	if err := s.store.SaveStays(ctx, stays); err != nil {
		return domain.Stay{}, fmt.Errorf("service.ItineraryService.AddStay: %w", err)
	}
	return st, nil
}

// UpdateStay validates and replaces an existing stay.
// Returns domain.ErrNotFound if no stay with that ID exists.
func (s *ItineraryService) UpdateStay(ctx context.Context, st domain.Stay) (domain.Stay, error) {
	if err := validateStay(st); err != nil {
		return domain.Stay{}, err
	}

	stays, err := s.store.LoadStays(ctx)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("service.ItineraryService.UpdateStay: %w", err)
	}
	for i := range stays {
		if stays[i].ID == st.ID {
			stays[i] = st
			if err := s.store.SaveStays(ctx, stays); err != nil {
				return domain.Stay{}, fmt.Errorf("service.ItineraryService.UpdateStay: %w", err)
			}
			return st, nil
		}
	}
	return domain.Stay{}, fmt.Errorf("service.ItineraryService.UpdateStay: %w", domain.ErrNotFound)
}

// RemoveStay deletes a stay by ID.
// Returns domain.ErrNotFound if no stay with that ID exists.
func (s *ItineraryService) RemoveStay(ctx context.Context, id uuid.UUID) error {
	stays, err := s.store.LoadStays(ctx)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveStay: %w", err)
	}
	kept, found := removeByID(stays, func(st domain.Stay) uuid.UUID { return st.ID }, id)
	if !found {
		return fmt.Errorf("service.ItineraryService.RemoveStay: %w", domain.ErrNotFound)
	}
	if err := s.store.SaveStays(ctx, kept); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveStay: %w", err)
	}
	return nil
}

// --- expenses ---------------------------------------------------------------

// ListExpenses returns all ad-hoc expenses. Always returns a non-nil slice.
func (s *ItineraryService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.store.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListExpenses: %w", err)
	}
	return expenses, nil
}

// AddExpense validates and appends an expense.
func (s *ItineraryService) AddExpense(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if err := validateExpense(e); err != nil {
		return domain.Expense{}, err
	}
	e.ID = uuid.New()

	expenses, err := s.store.LoadExpenses(ctx)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.AddExpense: %w", err)
	}
	expenses = append(expenses, e)
	if err := s.store.SaveExpenses(ctx, expenses); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.AddExpense: %w", err)
	}
	return e, nil
}

// UpdateExpense validates and replaces an existing expense.
// Returns domain.ErrNotFound if no expense with that ID exists.
func (s *ItineraryService) UpdateExpense(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if err := validateExpense(e); err != nil {
		return domain.Expense{}, err
	}

	expenses, err := s.store.LoadExpenses(ctx)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ItineraryService.UpdateExpense: %w", err)
	}
	for i := range expenses {
		if expenses[i].ID == e.ID {
			expenses[i] = e
			if err := s.store.SaveExpenses(ctx, expenses); err != nil {
				return domain.Expense{}, fmt.Errorf("service.ItineraryService.UpdateExpense: %w", err)
			}
			return e, nil
		}
	}
	return domain.Expense{}, fmt.Errorf("service.ItineraryService.UpdateExpense: %w", domain.ErrNotFound)
}

// RemoveExpense deletes an expense by ID.
// Returns domain.ErrNotFound if no expense with that ID exists.
func (s *ItineraryService) RemoveExpense(ctx context.Context, id uuid.UUID) error {
	expenses, err := s.store.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveExpense: %w", err)
	}
	kept, found := removeByID(expenses, func(e domain.Expense) uuid.UUID { return e.ID }, id)
	if !found {
		return fmt.Errorf("service.ItineraryService.RemoveExpense: %w", domain.ErrNotFound)
	}
	if err := s.store.SaveExpenses(ctx, kept); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveExpense: %w", err)
	}
	return nil
}

// --- to-do list -------------------------------------------------------------

// ListTodos returns the to-do list. Always returns a non-nil slice.
func (s *ItineraryService) ListTodos(ctx context.Context) ([]domain.TodoItem, error) {
	todos, err := s.store.LoadTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListTodos: %w", err)
	}
	return todos, nil
}

// AddTodo validates and appends a to-do entry.
func (s *ItineraryService) AddTodo(ctx context.Context, item domain.TodoItem) (domain.TodoItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return domain.TodoItem{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	item.ID = uuid.New()
	item.Title = strings.TrimSpace(item.Title)
	item.Done = false

	todos, err := s.store.LoadTodos(ctx)
	if err != nil {
		return domain.TodoItem{}, fmt.Errorf("service.ItineraryService.AddTodo: %w", err)
	}
	todos = append(todos, item)
	if err := s.store.SaveTodos(ctx, todos); err != nil {
		return domain.TodoItem{}, fmt.Errorf("service.ItineraryService.AddTodo: %w", err)
	}
	return item, nil
}

// UpdateTodo retitles an existing entry.
// Returns domain.ErrNotFound if no entry with that ID exists.
func (s *ItineraryService) UpdateTodo(ctx context.Context, item domain.TodoItem) (domain.TodoItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return domain.TodoItem{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	todos, err := s.store.LoadTodos(ctx)
	if err != nil {
		return domain.TodoItem{}, fmt.Errorf("service.ItineraryService.UpdateTodo: %w", err)
	}
	for i := range todos {
		if todos[i].ID == item.ID {
			todos[i].Title = strings.TrimSpace(item.Title)
			updated := todos[i]
			if err := s.store.SaveTodos(ctx, todos); err != nil {
				return domain.TodoItem{}, fmt.Errorf("service.ItineraryService.UpdateTodo: %w", err)
			}
			return updated, nil
		}
	}
	return domain.TodoItem{}, fmt.Errorf("service.ItineraryService.UpdateTodo: %w", domain.ErrNotFound)
}

// ToggleTodo flips an entry's done state and returns the updated entry.
// Returns domain.ErrNotFound if no entry with that ID exists.
func (s *ItineraryService) ToggleTodo(ctx context.Context, id uuid.UUID) (domain.TodoItem, error) {
	todos, err := s.store.LoadTodos(ctx)
	if err != nil {
		return domain.TodoItem{}, fmt.Errorf("service.ItineraryService.ToggleTodo: %w", err)
	}
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Done = !todos[i].Done
			updated := todos[i]
			if err := s.store.SaveTodos(ctx, todos); err != nil {
				return domain.TodoItem{}, fmt.Errorf("service.ItineraryService.ToggleTodo: %w", err)
			}
			return updated, nil
		}
	}
	return domain.TodoItem{}, fmt.Errorf("service.ItineraryService.ToggleTodo: %w", domain.ErrNotFound)
}

// RemoveTodo deletes an entry by ID.
// Returns domain.ErrNotFound if no entry with that ID exists.
func (s *ItineraryService) RemoveTodo(ctx context.Context, id uuid.UUID) error {
	todos, err := s.store.LoadTodos(ctx)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveTodo: %w", err)
	}
	kept, found := removeByID(todos, func(item domain.TodoItem) uuid.UUID { return item.ID }, id)
	if !found {
		return fmt.Errorf("service.ItineraryService.RemoveTodo: %w", domain.ErrNotFound)
	}
	if err := s.store.SaveTodos(ctx, kept); err != nil {
		return fmt.Errorf("service.ItineraryService.RemoveTodo: %w", err)
	}
	return nil
}

// --- validation -------------------------------------------------------------

func validateFlight(f domain.Flight) error {
	if strings.TrimSpace(f.Departure) == "" {
		return fmt.Errorf("%w: departure location is required", domain.ErrValidation)
	}
	if strings.TrimSpace(f.Arrival) == "" {
		return fmt.Errorf("%w: arrival location is required", domain.ErrValidation)
	}
	if f.Cost < 0 {
		return fmt.Errorf("%w: cost cannot be negative", domain.ErrValidation)
	}
	return nil
}

func validateStay(st domain.Stay) error {
	if strings.TrimSpace(st.Name) == "" {
		return fmt.Errorf("%w: stay name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(st.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if st.Nights <= 0 {
		return fmt.Errorf("%w: number of nights must be positive", domain.ErrValidation)
	}
	if st.Cost < 0 {
		return fmt.Errorf("%w: cost cannot be negative", domain.ErrValidation)
	}
	return nil
}

func validateExpense(e domain.Expense) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if e.Cost < 0 {
		return fmt.Errorf("%w: cost cannot be negative", domain.ErrValidation)
	}
	return nil
}

// removeByID filters out the element with the given ID, reporting whether it
// was present.
func removeByID[T any](items []T, id func(T) uuid.UUID, target uuid.UUID) ([]T, bool) {
	kept := items[:0]
	found := false
	for _, item := range items {
		if id(item) == target {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	return kept, found
}
