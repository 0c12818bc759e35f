package handler

import (
	"net/http"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// CreateTripRequest is the body for POST /api/trip.
type CreateTripRequest struct {
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	Travelers   int     `json:"travelers"`
	Budget      float64 `json:"budget"`
}

// CreateTrip handles POST /api/trip. Creating a trip replaces the current one.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.trips.Create(r.Context(), tripFromRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetTrip handles GET /api/trip.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// SetBudget handles PUT /api/trip/budget.
func (s *Server) SetBudget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Budget float64 `json:"budget"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.trips.SetBudget(r.Context(), req.Budget)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SelectDay handles PUT /api/trip/day, the planner's day selection.
func (s *Server) SelectDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day int `json:"day"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.trips.SelectDay(r.Context(), req.Day); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"day": req.Day})
}

// GetBudget handles GET /api/budget: the recomputed aggregator totals.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	totals, err := s.budget.Totals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func tripFromRequest(req CreateTripRequest) domain.Trip {
	return domain.Trip{
		Destination:     req.Destination,
		Days:            req.Days,
		Travelers:       req.Travelers,
		BudgetPerPerson: req.Budget,
	}
}
