package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sumsingh11/travelmate/internal/auth"
	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/handler"
	"github.com/sumsingh11/travelmate/internal/schedule"
)

// Test doubles for the handler's service interfaces. Set only the method
// fields your test needs; an unset field panics, which fails the test loudly.

type mockTripServicer struct {
	create      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	get         func(ctx context.Context) (domain.Trip, error)
	setBudget   func(ctx context.Context, budget float64) (domain.Trip, error)
	selectDay   func(ctx context.Context, day int) error
	selectedDay func(ctx context.Context) (int, error)
}

func (m *mockTripServicer) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripServicer) Get(ctx context.Context) (domain.Trip, error) { return m.get(ctx) }
func (m *mockTripServicer) SetBudget(ctx context.Context, budget float64) (domain.Trip, error) {
	return m.setBudget(ctx, budget)
}
func (m *mockTripServicer) SelectDay(ctx context.Context, day int) error {
	return m.selectDay(ctx, day)
}
func (m *mockTripServicer) SelectedDay(ctx context.Context) (int, error) {
	return m.selectedDay(ctx)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockActivityServicer struct {
	list   func(ctx context.Context) ([]domain.Activity, error)
	create func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	update func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockActivityServicer) List(ctx context.Context) ([]domain.Activity, error) {
	return m.list(ctx)
}
func (m *mockActivityServicer) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, a)
}
func (m *mockActivityServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

type mockPlannerServicer struct {
	dayPlan       func(ctx context.Context, day int) (domain.DayPlan, error)
	schedule      func(ctx context.Context, day int) (schedule.Grid, error)
	addBooking    func(ctx context.Context, day int, b domain.Booking) (domain.Booking, error)
	updateBooking func(ctx context.Context, day int, b domain.Booking) (domain.Booking, error)
	removeBooking func(ctx context.Context, day int, activityID uuid.UUID) error
	available     func(ctx context.Context, day int) ([]domain.Activity, error)
}

func (m *mockPlannerServicer) DayPlan(ctx context.Context, day int) (domain.DayPlan, error) {
	return m.dayPlan(ctx, day)
}
func (m *mockPlannerServicer) Schedule(ctx context.Context, day int) (schedule.Grid, error) {
	return m.schedule(ctx, day)
}
func (m *mockPlannerServicer) AddBooking(ctx context.Context, day int, b domain.Booking) (domain.Booking, error) {
	return m.addBooking(ctx, day, b)
}
func (m *mockPlannerServicer) UpdateBooking(ctx context.Context, day int, b domain.Booking) (domain.Booking, error) {
	return m.updateBooking(ctx, day, b)
}
func (m *mockPlannerServicer) RemoveBooking(ctx context.Context, day int, activityID uuid.UUID) error {
	return m.removeBooking(ctx, day, activityID)
}
func (m *mockPlannerServicer) AvailableActivities(ctx context.Context, day int) ([]domain.Activity, error) {
	return m.available(ctx, day)
}

var _ handler.PlannerServicer = (*mockPlannerServicer)(nil)

type mockItineraryServicer struct {
	listFlights   func(ctx context.Context) ([]domain.Flight, error)
	addFlight     func(ctx context.Context, f domain.Flight) (domain.Flight, error)
	updateFlight  func(ctx context.Context, f domain.Flight) (domain.Flight, error)
	removeFlight  func(ctx context.Context, id uuid.UUID) error
	listStays     func(ctx context.Context) ([]domain.Stay, error)
	addStay       func(ctx context.Context, st domain.Stay) (domain.Stay, error)
	updateStay    func(ctx context.Context, st domain.Stay) (domain.Stay, error)
	removeStay    func(ctx context.Context, id uuid.UUID) error
	listExpenses  func(ctx context.Context) ([]domain.Expense, error)
	addExpense    func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	updateExpense func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	removeExpense func(ctx context.Context, id uuid.UUID) error
	listTodos     func(ctx context.Context) ([]domain.TodoItem, error)
	addTodo       func(ctx context.Context, item domain.TodoItem) (domain.TodoItem, error)
	updateTodo    func(ctx context.Context, item domain.TodoItem) (domain.TodoItem, error)
	toggleTodo    func(ctx context.Context, id uuid.UUID) (domain.TodoItem, error)
	removeTodo    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockItineraryServicer) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	return m.listFlights(ctx)
}
func (m *mockItineraryServicer) AddFlight(ctx context.Context, f domain.Flight) (domain.Flight, error) {
	return m.addFlight(ctx, f)
}
func (m *mockItineraryServicer) UpdateFlight(ctx context.Context, f domain.Flight) (domain.Flight, error) {
	return m.updateFlight(ctx, f)
}
func (m *mockItineraryServicer) RemoveFlight(ctx context.Context, id uuid.UUID) error {
	return m.removeFlight(ctx, id)
}
func (m *mockItineraryServicer) ListStays(ctx context.Context) ([]domain.Stay, error) {
	return m.listStays(ctx)
}
func (m *mockItineraryServicer) AddStay(ctx context.Context, st domain.Stay) (domain.Stay, error) {
	return m.addStay(ctx, st)
}
func (m *mockItineraryServicer) UpdateStay(ctx context.Context, st domain.Stay) (domain.Stay, error) {
	return m.updateStay(ctx, st)
}
func (m *mockItineraryServicer) RemoveStay(ctx context.Context, id uuid.UUID) error {
	return m.removeStay(ctx, id)
}
func (m *mockItineraryServicer) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return m.listExpenses(ctx)
}
func (m *mockItineraryServicer) AddExpense(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.addExpense(ctx, e)
}
func (m *mockItineraryServicer) UpdateExpense(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.updateExpense(ctx, e)
}
func (m *mockItineraryServicer) RemoveExpense(ctx context.Context, id uuid.UUID) error {
	return m.removeExpense(ctx, id)
}
func (m *mockItineraryServicer) ListTodos(ctx context.Context) ([]domain.TodoItem, error) {
	return m.listTodos(ctx)
}
func (m *mockItineraryServicer) AddTodo(ctx context.Context, item domain.TodoItem) (domain.TodoItem, error) {
	return m.addTodo(ctx, item)
}
func (m *mockItineraryServicer) UpdateTodo(ctx context.Context, item domain.TodoItem) (domain.TodoItem, error) {
	return m.updateTodo(ctx, item)
}
func (m *mockItineraryServicer) ToggleTodo(ctx context.Context, id uuid.UUID) (domain.TodoItem, error) {
	return m.toggleTodo(ctx, id)
}
func (m *mockItineraryServicer) RemoveTodo(ctx context.Context, id uuid.UUID) error {
	return m.removeTodo(ctx, id)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockBudgetServicer struct {
	totals func(ctx context.Context) (domain.BudgetTotals, error)
}

func (m *mockBudgetServicer) Totals(ctx context.Context) (domain.BudgetTotals, error) {
	return m.totals(ctx)
}

var _ handler.BudgetServicer = (*mockBudgetServicer)(nil)

type mockExportServicer struct {
	export func(ctx context.Context) (domain.TripExport, error)
	imp    func(ctx context.Context, doc domain.TripExport) error
}

func (m *mockExportServicer) Export(ctx context.Context) (domain.TripExport, error) {
	return m.export(ctx)
}
func (m *mockExportServicer) Import(ctx context.Context, doc domain.TripExport) error {
	return m.imp(ctx, doc)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

type mockAuthServicer struct {
	register      func(ctx context.Context, name, email, password string, role domain.Role) (domain.PublicUser, error)
	login         func(ctx context.Context, email, password string) (string, domain.PublicUser, error)
	getProfile    func(ctx context.Context, id uuid.UUID) (domain.PublicUser, error)
	updateProfile func(ctx context.Context, id uuid.UUID, name, email string) (domain.PublicUser, error)
	listUsers     func(ctx context.Context) ([]domain.PublicUser, error)
	updateRole    func(ctx context.Context, id uuid.UUID, role domain.Role) (domain.PublicUser, error)
	deleteUser    func(ctx context.Context, id uuid.UUID) error
	usage         func(ctx context.Context) (int64, error)
}

func (m *mockAuthServicer) Register(ctx context.Context, name, email, password string, role domain.Role) (domain.PublicUser, error) {
	return m.register(ctx, name, email, password, role)
}
func (m *mockAuthServicer) Login(ctx context.Context, email, password string) (string, domain.PublicUser, error) {
	return m.login(ctx, email, password)
}
func (m *mockAuthServicer) GetProfile(ctx context.Context, id uuid.UUID) (domain.PublicUser, error) {
	return m.getProfile(ctx, id)
}
func (m *mockAuthServicer) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (domain.PublicUser, error) {
	return m.updateProfile(ctx, id, name, email)
}
func (m *mockAuthServicer) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	return m.listUsers(ctx)
}
func (m *mockAuthServicer) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (domain.PublicUser, error) {
	return m.updateRole(ctx, id, role)
}
func (m *mockAuthServicer) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.deleteUser(ctx, id)
}
func (m *mockAuthServicer) Usage(ctx context.Context) (int64, error) { return m.usage(ctx) }

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// serverMocks bundles one mock per service interface so tests can override
// only what they exercise.
type serverMocks struct {
	trips      *mockTripServicer
	activities *mockActivityServicer
	planner    *mockPlannerServicer
	itinerary  *mockItineraryServicer
	budget     *mockBudgetServicer
	export     *mockExportServicer
	auth       *mockAuthServicer
}

var testIssuer = auth.NewIssuer("handler-test-secret")

// newAPIHandler wires the mocks into the full router, auth middleware
// included, mirroring how main.go wires the production server.
func newAPIHandler(m serverMocks) http.Handler {
	if m.trips == nil {
		m.trips = &mockTripServicer{}
	}
	if m.activities == nil {
		m.activities = &mockActivityServicer{}
	}
	if m.planner == nil {
		m.planner = &mockPlannerServicer{}
	}
	if m.itinerary == nil {
		m.itinerary = &mockItineraryServicer{}
	}
	if m.budget == nil {
		m.budget = &mockBudgetServicer{}
	}
	if m.export == nil {
		m.export = &mockExportServicer{}
	}
	if m.auth == nil {
		m.auth = &mockAuthServicer{}
	}
	srv := handler.NewServer(m.trips, m.activities, m.planner, m.itinerary, m.budget, m.export, m.auth)
	return srv.Routes(testIssuer)
}

// bearer returns an Authorization header value for a fresh token with the
// given role.
func bearer(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := testIssuer.Issue(uuid.New(), role)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
