package handler

import (
	"net/http"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// ActivityRequest is the body for creating or updating a pool activity.
type ActivityRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// ListActivities handles GET /api/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.activities.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// CreateActivity handles POST /api/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.activities.Create(r.Context(), domain.Activity{
		Title:         req.Title,
		Description:   req.Description,
		CostPerPerson: req.Cost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateActivity handles PUT /api/activities/{id}. Edits propagate into every
// day plan holding a booking for the activity.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid activity id")
		return
	}

	var req ActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.activities.Update(r.Context(), domain.Activity{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		CostPerPerson: req.Cost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteActivity handles DELETE /api/activities/{id}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeRequestError(w, "invalid activity id")
		return
	}

	if err := s.activities.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
