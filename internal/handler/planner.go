package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/schedule"
)

// BookingRequest is the body for adding or updating a day booking. Times are
// "HH:MM" strings.
type BookingRequest struct {
	ActivityID uuid.UUID        `json:"activity_id"`
	StartTime  domain.TimeOfDay `json:"start_time"`
	EndTime    domain.TimeOfDay `json:"end_time"`
	Color      string           `json:"color"`
}

// ScheduleResponse is the rendered layout grid for one day.
type ScheduleResponse struct {
	Tracks int           `json:"tracks"`
	Rows   []ScheduleRow `json:"rows"`
}

// ScheduleRow is one hour row of the grid.
type ScheduleRow struct {
	Hour  string         `json:"hour"` // 12-hour label, e.g. "9:00 AM"
	Cells []ScheduleCell `json:"cells"`
}

// ScheduleCell is one grid position. Booking and RowSpan are set only on
// "start" cells; "covered" cells are spanned by an earlier start cell.
type ScheduleCell struct {
	Kind    string          `json:"kind"` // "empty", "start", or "covered"
	Booking *domain.Booking `json:"booking,omitempty"`
	RowSpan int             `json:"row_span,omitempty"`
}

// GetDayPlan handles GET /api/days/{day}.
func (s *Server) GetDayPlan(w http.ResponseWriter, r *http.Request) {
	day, ok := pathDay(r)
	if !ok {
		writeRequestError(w, "invalid day number")
		return
	}

	plan, err := s.planner.DayPlan(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// GetDaySchedule handles GET /api/days/{day}/schedule: the layout-engine grid.
func (s *Server) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
	day, ok := pathDay(r)
	if !ok {
		writeRequestError(w, "invalid day number")
		return
	}

	grid, err := s.planner.Schedule(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gridToResponse(grid))
}

// GetAvailableActivities handles GET /api/days/{day}/available: pool
// activities not yet scheduled on that day.
func (s *Server) GetAvailableActivities(w http.ResponseWriter, r *http.Request) {
	day, ok := pathDay(r)
	if !ok {
		writeRequestError(w, "invalid day number")
		return
	}

	activities, err := s.planner.AvailableActivities(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// AddBooking handles POST /api/days/{day}/bookings.
func (s *Server) AddBooking(w http.ResponseWriter, r *http.Request) {
	day, ok := pathDay(r)
	if !ok {
		writeRequestError(w, "invalid day number")
		return
	}

	var req BookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.planner.AddBooking(r.Context(), day, domain.Booking{
		ActivityID: req.ActivityID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Color:      req.Color,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateBooking handles PUT /api/days/{day}/bookings/{activityId}. Only
// times and color are writable; title and cost stay denormalized from the pool.
func (s *Server) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	day, ok := pathDay(r)
	if !ok {
		writeRequestError(w, "invalid day number")
		return
	}
	activityID, ok := pathUUID(r, "activityId")
	if !ok {
		writeRequestError(w, "invalid activity id")
		return
	}

	var req BookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.planner.UpdateBooking(r.Context(), day, domain.Booking{
		ActivityID: activityID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Color:      req.Color,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// RemoveBooking handles DELETE /api/days/{day}/bookings/{activityId}.
// Removal implicitly returns the activity to the day's available pool.
func (s *Server) RemoveBooking(w http.ResponseWriter, r *http.Request) {
	day, ok := pathDay(r)
	if !ok {
		writeRequestError(w, "invalid day number")
		return
	}
	activityID, ok := pathUUID(r, "activityId")
	if !ok {
		writeRequestError(w, "invalid activity id")
		return
	}

	if err := s.planner.RemoveBooking(r.Context(), day, activityID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathDay parses the {day} chi URL parameter.
func pathDay(r *http.Request) (int, bool) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	return day, err == nil
}

// gridToResponse converts the engine grid into its wire form, attaching the
// 12-hour label to each row.
func gridToResponse(g schedule.Grid) ScheduleResponse {
	resp := ScheduleResponse{
		Tracks: g.Tracks,
		Rows:   make([]ScheduleRow, schedule.HoursPerDay),
	}
	for slot, row := range g.Rows {
		cells := make([]ScheduleCell, len(row))
		for i, c := range row {
			cells[i] = ScheduleCell{Kind: cellKindLabel(c.Kind)}
			if c.Kind == schedule.CellStart {
				cells[i].Booking = c.Booking
				cells[i].RowSpan = c.RowSpan
			}
		}
		resp.Rows[slot] = ScheduleRow{Hour: schedule.HourLabel(slot), Cells: cells}
	}
	return resp
}

func cellKindLabel(k schedule.CellKind) string {
	switch k {
	case schedule.CellStart:
		return "start"
	case schedule.CellCovered:
		return "covered"
	default:
		return "empty"
	}
}
