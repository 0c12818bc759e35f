// Package domain contains the core data types for the TravelMate application.
// This package has zero business logic and is imported by every other
// internal package (store, repo, schedule, service, handler).
package domain

import "github.com/google/uuid"

// Activity is an entry in the trip's activity pool: something the travellers
// could do, with a per-person price. Activities become part of a day's
// schedule only once they are placed as a Booking.
type Activity struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CostPerPerson float64   `json:"cost"`
}

// Booking is a placement of one Activity on one day of the trip.
// Title and Cost are denormalized from the Activity at placement time;
// ActivityChange events keep them in sync when the pool entry is edited.
type Booking struct {
	ActivityID uuid.UUID `json:"activity_id"`
	Title      string    `json:"title"`
	StartTime  TimeOfDay `json:"start_time"`
	EndTime    TimeOfDay `json:"end_time"` // must be strictly after StartTime
	Cost       float64   `json:"cost"`
	Color      string    `json:"color,omitempty"` // opaque display token, e.g. "#007bff"
}

// DayPlan is the set of bookings for one numbered day (1..Trip.Days).
// Booking order is insertion order; the layout engine depends on it for
// deterministic track assignment.
type DayPlan struct {
	Bookings []Booking `json:"bookings"`
	// TotalCost is the day's activity cost for all travellers, derived by
	// the budget aggregator. Treated as a cache, never authoritative.
	TotalCost float64 `json:"total_cost"`
}

// ActivityChange describes an edit to a pool Activity that must be
// propagated into every DayPlan holding a booking for it.
type ActivityChange struct {
	ID            uuid.UUID
	Title         string
	CostPerPerson float64
}
