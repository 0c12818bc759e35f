package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// Well-known store keys. One key per planner collection, mirroring the
// export document's top-level fields.
const (
	keyTrip        = "tripDetails"
	keyActivities  = "activities"
	keyFlights     = "flights"
	keyStays       = "stays"
	keyExpenses    = "additionalExpenses"
	keyTodos       = "todoList"
	keySelectedDay = "selectedDay"
)

// allKeys lists every key the trip store owns, used by Clear during import.
var allKeys = []string{
	keyTrip, keyActivities, keyFlights, keyStays, keyExpenses, keyTodos, keySelectedDay,
}

// ActivityListener receives a notification whenever the activity pool is
// saved with changed entries. Services that denormalize activity fields
// (day plans) subscribe so edits propagate without reaching into each
// other's keys.
type ActivityListener func(ctx context.Context, change domain.ActivityChange)

// TripStore is the typed repository over a KV for all trip-planning state.
// It owns JSON encoding, key names, and activity-change notifications.
// It carries no state of its own beyond the subscriber list.
type TripStore struct {
	kv KV

	mu        sync.RWMutex
	listeners []ActivityListener
}

// NewTripStore constructs a TripStore over the given KV backend.
func NewTripStore(kv KV) *TripStore {
	return &TripStore{kv: kv}
}

// Subscribe registers a listener for activity-pool changes. Listeners are
// called synchronously, in registration order, from SaveActivities.
func (s *TripStore) Subscribe(l ActivityListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// --- trip -------------------------------------------------------------------

// LoadTrip returns the current trip.
// Returns domain.ErrNotFound when no trip has been created.
func (s *TripStore) LoadTrip(ctx context.Context) (domain.Trip, error) {
	var t domain.Trip
	if err := s.load(ctx, keyTrip, &t); err != nil {
		return domain.Trip{}, err
	}
	return t, nil
}

// SaveTrip persists the trip, replacing any previous one.
func (s *TripStore) SaveTrip(ctx context.Context, t domain.Trip) error {
	return s.save(ctx, keyTrip, t)
}

// --- activity pool ----------------------------------------------------------

// LoadActivities returns the activity pool. An unset key yields an empty
// slice, not an error — a fresh trip simply has no activities yet.
func (s *TripStore) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	return loadList[domain.Activity](ctx, s, keyActivities)
}

// SaveActivities persists the pool and notifies subscribers of every entry
// whose title or cost differs from the previously stored pool. Listeners run
// synchronously; a change is fully propagated by the time SaveActivities
// returns.
func (s *TripStore) SaveActivities(ctx context.Context, activities []domain.Activity) error {
	previous, err := s.LoadActivities(ctx)
	if err != nil {
		return err
	}
	if err := s.save(ctx, keyActivities, activities); err != nil {
		return err
	}

	prevByID := make(map[string]domain.Activity, len(previous))
	for _, a := range previous {
		prevByID[a.ID.String()] = a
	}

	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()

	for _, a := range activities {
		old, ok := prevByID[a.ID.String()]
		if !ok || (old.Title == a.Title && old.CostPerPerson == a.CostPerPerson) {
			continue
		}
		change := domain.ActivityChange{ID: a.ID, Title: a.Title, CostPerPerson: a.CostPerPerson}
		for _, l := range listeners {
			l(ctx, change)
		}
	}
	return nil
}

// --- itinerary collections --------------------------------------------------

func (s *TripStore) LoadFlights(ctx context.Context) ([]domain.Flight, error) {
	return loadList[domain.Flight](ctx, s, keyFlights)
}

func (s *TripStore) SaveFlights(ctx context.Context, flights []domain.Flight) error {
	return s.save(ctx, keyFlights, flights)
}

func (s *TripStore) LoadStays(ctx context.Context) ([]domain.Stay, error) {
	return loadList[domain.Stay](ctx, s, keyStays)
}

func (s *TripStore) SaveStays(ctx context.Context, stays []domain.Stay) error {
	return s.save(ctx, keyStays, stays)
}

func (s *TripStore) LoadExpenses(ctx context.Context) ([]domain.Expense, error) {
	return loadList[domain.Expense](ctx, s, keyExpenses)
}

func (s *TripStore) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	return s.save(ctx, keyExpenses, expenses)
}

func (s *TripStore) LoadTodos(ctx context.Context) ([]domain.TodoItem, error) {
	return loadList[domain.TodoItem](ctx, s, keyTodos)
}

func (s *TripStore) SaveTodos(ctx context.Context, todos []domain.TodoItem) error {
	return s.save(ctx, keyTodos, todos)
}

// --- selected day -----------------------------------------------------------

// LoadSelectedDay returns the day number the planner is focused on.
// Returns domain.ErrNotFound when no day has been selected.
func (s *TripStore) LoadSelectedDay(ctx context.Context) (int, error) {
	raw, err := s.kv.Get(ctx, keySelectedDay)
	if err != nil {
		return 0, err
	}
	day, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("store.TripStore.LoadSelectedDay: %w", err)
	}
	return day, nil
}

// SaveSelectedDay persists the planner's selected day.
func (s *TripStore) SaveSelectedDay(ctx context.Context, day int) error {
	return s.kv.Set(ctx, keySelectedDay, []byte(strconv.Itoa(day)))
}

// --- wholesale replacement --------------------------------------------------

// Clear deletes every key the trip store owns. Used by import before loading
// a new snapshot.
func (s *TripStore) Clear(ctx context.Context) error {
	for _, key := range allKeys {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("store.TripStore.Clear: %w", err)
		}
	}
	return nil
}

// --- helpers ----------------------------------------------------------------

func (s *TripStore) load(ctx context.Context, key string, dst any) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("store.TripStore: decode %q: %w", key, err)
	}
	return nil
}

func (s *TripStore) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store.TripStore: encode %q: %w", key, err)
	}
	return s.kv.Set(ctx, key, raw)
}

// loadList reads a JSON array key, mapping an absent key to an empty slice.
func loadList[T any](ctx context.Context, s *TripStore, key string) ([]T, error) {
	var out []T
	if err := s.load(ctx, key, &out); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
