package domain

import "github.com/google/uuid"

// Trip is the top-level aggregate for a planned trip. There is at most one
// active trip per store; creating a new trip replaces it.
type Trip struct {
	Destination     string `json:"destination"`
	Days            int    `json:"days"`      // must be >= 1
	Travelers       int    `json:"travelers"` // must be >= 1
	BudgetPerPerson float64 `json:"budget"`

	// DayPlans maps day number (1..Days) to that day's schedule.
	// Days with nothing scheduled are absent from the map.
	DayPlans map[int]DayPlan `json:"day_plans,omitempty"`

	// Derived totals, recomputed by the budget aggregator. Cache only.
	TotalCostAllTravelers   float64 `json:"total_cost_all_travelers"`
	TotalCostPerPerson      float64 `json:"total_cost_per_person"`
	TotalBudgetAllTravelers float64 `json:"total_budget_all_travelers"`
}

// Flight is a booked or planned flight leg.
type Flight struct {
	ID        uuid.UUID `json:"id"`
	Departure string    `json:"departure"`
	Arrival   string    `json:"arrival"`
	Type      string    `json:"type"` // "One-Way" or "Round-Trip"
	Cost      float64   `json:"cost"`
}

// Stay is a lodging entry (hotel, rental, campsite).
type Stay struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Nights   int       `json:"nights"` // must be > 0
	Cost     float64   `json:"cost"`
}

// Expense is an ad-hoc cost not tied to flights, stays, or activities.
type Expense struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Cost  float64   `json:"cost"`
}

// TodoItem is a pre-trip checklist entry.
type TodoItem struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Done  bool      `json:"done"`
}

// BudgetTotals is the output of the budget aggregator: the full cost and
// budget picture for the current trip, per person and for all travellers.
type BudgetTotals struct {
	TotalCostAllTravelers   float64 `json:"total_cost_all_travelers"`
	TotalCostPerPerson      float64 `json:"total_cost_per_person"`
	TotalBudgetAllTravelers float64 `json:"total_budget_all_travelers"`
	BudgetPerPerson         float64 `json:"budget_per_person"`
}
