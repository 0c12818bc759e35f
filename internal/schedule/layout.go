// Package schedule implements the day-grid layout engine: it places one
// day's time-boxed bookings into a 24-row hour grid with as many parallel
// tracks (columns) as overlapping bookings require.
package schedule

import (
	"fmt"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// HoursPerDay is the number of hour slots in the grid, one row per hour.
const HoursPerDay = 24

// CellKind distinguishes the three states a grid cell can be in.
type CellKind int

const (
	// CellEmpty is a cell with no booking at this slot and track.
	CellEmpty CellKind = iota
	// CellStart is the first slot of a booking; it carries the booking and
	// its row span. Renderers emit one spanning cell here.
	CellStart
	// CellCovered marks slots occupied by a booking that started earlier.
	// Renderers must skip these — the spanning start cell already covers them.
	CellCovered
)

// Cell is one position in the layout grid.
type Cell struct {
	Kind    CellKind
	Booking *domain.Booking // set only when Kind == CellStart
	RowSpan int             // set only when Kind == CellStart
}

// Grid is the computed layout for one day: HoursPerDay rows, each padded to
// Tracks cells so the grid renders rectangularly.
type Grid struct {
	// Rows[slot][track] is the cell at the given hour slot and track index.
	Rows [HoursPerDay][]Cell
	// Tracks is the maximum number of parallel tracks used at any slot.
	// At least 1 so an empty day still renders a single column.
	Tracks int
}

// HourLabel returns the 12-hour label for the given slot, e.g. "9:00 AM".
func HourLabel(slot int) string {
	return (domain.TimeOfDay(slot * 60)).Format12H()
}

// Layout places bookings into a grid. Bookings are processed in input order;
// each is assigned the lowest track index free across its whole slot range,
// with no backtracking once placed. The result is deterministic for a fixed
// input order.
//
// This greedy single-pass assignment is not an optimal interval coloring:
// depending on input order it can use more tracks than the theoretical
// minimum. Callers depend on the existing column counts, so the behavior is
// kept as is.
//
// A booking whose end is not strictly after its start, or whose slot range
// falls outside [0, HoursPerDay), is rejected with an error wrapping
// domain.ErrValidation. Nothing is clipped and no partial grid is returned.
func Layout(bookings []domain.Booking) (Grid, error) {
	var g Grid

	// occupied[slot] is the set of track indices taken at that slot.
	var occupied [HoursPerDay]map[int]bool

	for i := range bookings {
		b := &bookings[i]

		startSlot, endSlot, err := slotRange(*b)
		if err != nil {
			return Grid{}, fmt.Errorf("schedule.Layout: %w", err)
		}

		// Lowest track index free at every slot the booking touches.
		track := 0
		for slot := startSlot; slot < endSlot; slot++ {
			for occupied[slot] != nil && occupied[slot][track] {
				track++
			}
		}

		rowSpan := endSlot - startSlot
		for slot := startSlot; slot < endSlot; slot++ {
			if occupied[slot] == nil {
				occupied[slot] = make(map[int]bool)
			}
			occupied[slot][track] = true

			for len(g.Rows[slot]) <= track {
				g.Rows[slot] = append(g.Rows[slot], Cell{Kind: CellEmpty})
			}
			if slot == startSlot {
				g.Rows[slot][track] = Cell{Kind: CellStart, Booking: b, RowSpan: rowSpan}
			} else {
				g.Rows[slot][track] = Cell{Kind: CellCovered}
			}
		}

		if track+1 > g.Tracks {
			g.Tracks = track + 1
		}
	}

	if g.Tracks == 0 {
		g.Tracks = 1
	}

	// Pad every row to the full track count so the grid is rectangular.
	for slot := range g.Rows {
		for len(g.Rows[slot]) < g.Tracks {
			g.Rows[slot] = append(g.Rows[slot], Cell{Kind: CellEmpty})
		}
	}

	return g, nil
}

// slotRange computes the hour-slot span of a booking, re-checking the
// invariants the caller should already have enforced. The engine trusts
// upstream validation but never renders nonconforming input.
func slotRange(b domain.Booking) (startSlot, endSlot int, err error) {
	if b.EndTime <= b.StartTime {
		return 0, 0, fmt.Errorf("%w: booking %q: end time must be after start time", domain.ErrValidation, b.Title)
	}

	startSlot = b.StartTime.Minutes() / 60
	endSlot = (b.EndTime.Minutes() + 59) / 60 // ceil to whole hours

	if startSlot < 0 || endSlot > HoursPerDay {
		return 0, 0, fmt.Errorf("%w: booking %q: invalid time range %s-%s", domain.ErrValidation, b.Title, b.StartTime, b.EndTime)
	}
	return startSlot, endSlot, nil
}
