package handler

import (
	"net/http"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// --- flights ----------------------------------------------------------------

// FlightRequest is the body for creating or updating a flight.
type FlightRequest struct {
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"`
	Type      string  `json:"type"`
	Cost      float64 `json:"cost"`
}

// ListFlights handles GET /api/flights.
func (s *Server) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := s.itinerary.ListFlights(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

// AddFlight handles POST /api/flights.
func (s *Server) AddFlight(w http.ResponseWriter, r *http.Request) {
	var req FlightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.itinerary.AddFlight(r.Context(), domain.Flight{
		Departure: req.Departure,
		Arrival:   req.Arrival,
		Type:      req.Type,
		Cost:      req.Cost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateFlight handles PUT /api/flights/{id}.
func (s *Server) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid flight id")
		return
	}

	var req FlightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.itinerary.UpdateFlight(r.Context(), domain.Flight{
		ID:        id,
		Departure: req.Departure,
		Arrival:   req.Arrival,
		Type:      req.Type,
		Cost:      req.Cost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// RemoveFlight handles DELETE /api/flights/{id}.
func (s *Server) RemoveFlight(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid flight id")
		return
	}

	if err := s.itinerary.RemoveFlight(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- stays ------------------------------------------------------------------

// StayRequest is the body for creating or updating a stay.
type StayRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Nights   int     `json:"nights"`
	Cost     float64 `json:"cost"`
}

// ListStays handles GET /api/stays.
func (s *Server) ListStays(w http.ResponseWriter, r *http.Request) {
	stays, err := s.itinerary.ListStays(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stays)
}

// AddStay handles POST /api/stays.
func (s *Server) AddStay(w http.ResponseWriter, r *http.Request) {
	var req StayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.itinerary.AddStay(r.Context(), domain.Stay{
		Name:     req.Name,
		Location: req.Location,
		Nights:   req.Nights,
		Cost:     req.Cost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateStay handles PUT /api/stays/{id}.
func (s *Server) UpdateStay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid stay id")
		return
	}

	var req StayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.itinerary.UpdateStay(r.Context(), domain.Stay{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
		Nights:   req.Nights,
		Cost:     req.Cost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// RemoveStay handles DELETE /api/stays/{id}.
func (s *Server) RemoveStay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid stay id")
		return
	}

	if err := s.itinerary.RemoveStay(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- expenses ---------------------------------------------------------------

// ExpenseRequest is the body for creating or updating an ad-hoc expense.
type ExpenseRequest struct {
	Title string  `json:"title"`
	Cost  float64 `json:"cost"`
}

// ListExpenses handles GET /api/expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.itinerary.ListExpenses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

// AddExpense handles POST /api/expenses.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req ExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.itinerary.AddExpense(r.Context(), domain.Expense{Title: req.Title, Cost: req.Cost})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateExpense handles PUT /api/expenses/{id}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid expense id")
		return
	}

	var req ExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.itinerary.UpdateExpense(r.Context(), domain.Expense{ID: id, Title: req.Title, Cost: req.Cost})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// RemoveExpense handles DELETE /api/expenses/{id}.
func (s *Server) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid expense id")
		return
	}

	if err := s.itinerary.RemoveExpense(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- to-do list -------------------------------------------------------------

// TodoRequest is the body for creating or retitling a to-do entry.
type TodoRequest struct {
	Title string `json:"title"`
}

// ListTodos handles GET /api/todos.
func (s *Server) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.itinerary.ListTodos(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

// AddTodo handles POST /api/todos.
func (s *Server) AddTodo(w http.ResponseWriter, r *http.Request) {
	var req TodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.itinerary.AddTodo(r.Context(), domain.TodoItem{Title: req.Title})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateTodo handles PUT /api/todos/{id}.
func (s *Server) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid todo id")
		return
	}

	var req TodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.itinerary.UpdateTodo(r.Context(), domain.TodoItem{ID: id, Title: req.Title})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ToggleTodo handles PUT /api/todos/{id}/toggle.
func (s *Server) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid todo id")
		return
	}

	toggled, err := s.itinerary.ToggleTodo(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toggled)
}

// RemoveTodo handles DELETE /api/todos/{id}.
func (s *Server) RemoveTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid todo id")
		return
	}

	if err := s.itinerary.RemoveTodo(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
