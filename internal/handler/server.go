// Package handler implements the HTTP handlers for the TravelMate API.
// All handlers are methods on Server; Routes assembles them into a chi
// router. Methods are split into domain-specific files (trip.go, planner.go,
// etc.) but all share the same Server struct so they can access its
// dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sumsingh11/travelmate/internal/auth"
	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/middleware"
	"github.com/sumsingh11/travelmate/internal/schedule"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Get(ctx context.Context) (domain.Trip, error)
	SetBudget(ctx context.Context, budget float64) (domain.Trip, error)
	SelectDay(ctx context.Context, day int) error
	SelectedDay(ctx context.Context) (int, error)
}

// ActivityServicer defines the activity-pool operations the handlers depend on.
type ActivityServicer interface {
	List(ctx context.Context) ([]domain.Activity, error)
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlannerServicer defines the per-day scheduling operations the handlers depend on.
type PlannerServicer interface {
	DayPlan(ctx context.Context, day int) (domain.DayPlan, error)
	Schedule(ctx context.Context, day int) (schedule.Grid, error)
	AddBooking(ctx context.Context, day int, booking domain.Booking) (domain.Booking, error)
	UpdateBooking(ctx context.Context, day int, booking domain.Booking) (domain.Booking, error)
	RemoveBooking(ctx context.Context, day int, activityID uuid.UUID) error
	AvailableActivities(ctx context.Context, day int) ([]domain.Activity, error)
}

// ItineraryServicer defines the flights/stays/expenses/todos list operations.
type ItineraryServicer interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	AddFlight(ctx context.Context, f domain.Flight) (domain.Flight, error)
	UpdateFlight(ctx context.Context, f domain.Flight) (domain.Flight, error)
	RemoveFlight(ctx context.Context, id uuid.UUID) error

	ListStays(ctx context.Context) ([]domain.Stay, error)
	AddStay(ctx context.Context, st domain.Stay) (domain.Stay, error)
	UpdateStay(ctx context.Context, st domain.Stay) (domain.Stay, error)
	RemoveStay(ctx context.Context, id uuid.UUID) error

	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	AddExpense(ctx context.Context, e domain.Expense) (domain.Expense, error)
	UpdateExpense(ctx context.Context, e domain.Expense) (domain.Expense, error)
	RemoveExpense(ctx context.Context, id uuid.UUID) error

	ListTodos(ctx context.Context) ([]domain.TodoItem, error)
	AddTodo(ctx context.Context, item domain.TodoItem) (domain.TodoItem, error)
	UpdateTodo(ctx context.Context, item domain.TodoItem) (domain.TodoItem, error)
	ToggleTodo(ctx context.Context, id uuid.UUID) (domain.TodoItem, error)
	RemoveTodo(ctx context.Context, id uuid.UUID) error
}

// BudgetServicer defines the cost-aggregation operation the handlers depend on.
type BudgetServicer interface {
	Totals(ctx context.Context) (domain.BudgetTotals, error)
}

// ExportServicer defines the snapshot operations the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context) (domain.TripExport, error)
	Import(ctx context.Context, doc domain.TripExport) error
}

// AuthServicer defines account and user-management operations the handlers
// depend on.
type AuthServicer interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (domain.PublicUser, error)
	Login(ctx context.Context, email, password string) (string, domain.PublicUser, error)
	GetProfile(ctx context.Context, id uuid.UUID) (domain.PublicUser, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (domain.PublicUser, error)
	ListUsers(ctx context.Context) ([]domain.PublicUser, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (domain.PublicUser, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	Usage(ctx context.Context) (int64, error)
}

// Server holds all API handlers and their dependencies.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips      TripServicer
	activities ActivityServicer
	planner    PlannerServicer
	itinerary  ItineraryServicer
	budget     BudgetServicer
	export     ExportServicer
	auth       AuthServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	activities ActivityServicer,
	planner PlannerServicer,
	itinerary ItineraryServicer,
	budget BudgetServicer,
	export ExportServicer,
	auth AuthServicer,
) *Server {
	return &Server{
		trips:      trips,
		activities: activities,
		planner:    planner,
		itinerary:  itinerary,
		budget:     budget,
		export:     export,
		auth:       auth,
	}
}

// Routes assembles the full API router. The health check and auth endpoints
// are public; everything else requires a bearer token from the issuer, and
// the user-management surface additionally requires the Admin role.
func (s *Server) Routes(issuer *auth.Issuer) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthenticator(issuer))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", s.GetMe)
				r.Put("/me", s.UpdateMe)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(domain.RoleAdmin))
					r.Get("/", s.ListUsers)
					r.Delete("/{id}", s.DeleteUser)
				})
			})

			r.Route("/trip", func(r chi.Router) {
				r.Post("/", s.CreateTrip)
				r.Get("/", s.GetTrip)
				r.Put("/budget", s.SetBudget)
				r.Put("/day", s.SelectDay)
				r.Get("/export", s.ExportTrip)
				r.Post("/import", s.ImportTrip)
			})

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", s.ListActivities)
				r.Post("/", s.CreateActivity)
				r.Put("/{id}", s.UpdateActivity)
				r.Delete("/{id}", s.DeleteActivity)
			})

			r.Route("/days/{day}", func(r chi.Router) {
				r.Get("/", s.GetDayPlan)
				r.Get("/schedule", s.GetDaySchedule)
				r.Get("/available", s.GetAvailableActivities)
				r.Post("/bookings", s.AddBooking)
				r.Put("/bookings/{activityId}", s.UpdateBooking)
				r.Delete("/bookings/{activityId}", s.RemoveBooking)
			})

			r.Route("/flights", func(r chi.Router) {
				r.Get("/", s.ListFlights)
				r.Post("/", s.AddFlight)
				r.Put("/{id}", s.UpdateFlight)
				r.Delete("/{id}", s.RemoveFlight)
			})
			r.Route("/stays", func(r chi.Router) {
				r.Get("/", s.ListStays)
				r.Post("/", s.AddStay)
				r.Put("/{id}", s.UpdateStay)
				r.Delete("/{id}", s.RemoveStay)
			})
			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", s.ListExpenses)
				r.Post("/", s.AddExpense)
				r.Put("/{id}", s.UpdateExpense)
				r.Delete("/{id}", s.RemoveExpense)
			})
			r.Route("/todos", func(r chi.Router) {
				r.Get("/", s.ListTodos)
				r.Post("/", s.AddTodo)
				r.Put("/{id}", s.UpdateTodo)
				r.Put("/{id}/toggle", s.ToggleTodo)
				r.Delete("/{id}", s.RemoveTodo)
			})

			r.Get("/budget", s.GetBudget)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdmin))
				r.Get("/usage", s.GetUsage)
				r.Put("/user/{id}/role", s.UpdateUserRole)
				r.Delete("/user/{id}", s.DeleteUser)
			})
		})
	})

	return r
}

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}
