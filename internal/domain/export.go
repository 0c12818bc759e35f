package domain

// TripExport is the single-document export/import format. Its top-level keys
// mirror the state store's keys so that an exported file is a faithful
// snapshot of everything the planner persists.
//
// Import replaces all existing local state wholesale; there is no merging.
type TripExport struct {
	TripDetails        Trip       `json:"tripDetails"`
	Activities         []Activity `json:"activities"`
	Flights            []Flight   `json:"flights"`
	Stays              []Stay     `json:"stays"`
	AdditionalExpenses []Expense  `json:"additionalExpenses"`
	TodoList           []TodoItem `json:"todoList"`
	SelectedDay        int        `json:"selectedDay,omitempty"`
}
