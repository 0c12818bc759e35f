package handler

import (
	"net/http"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// ExportTrip handles GET /api/trip/export: the full planner state as one
// JSON document, suitable for saving to a file and importing later.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	doc, err := s.export.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ImportTrip handles POST /api/trip/import. A valid document replaces all
// planner state wholesale; an invalid one changes nothing.
func (s *Server) ImportTrip(w http.ResponseWriter, r *http.Request) {
	var doc domain.TripExport
	if !decodeJSON(w, r, &doc) {
		return
	}

	if err := s.export.Import(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
