// Package main is the entry point for the TravelMate API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/sumsingh11/travelmate/internal/auth"
	"github.com/sumsingh11/travelmate/internal/config"
	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/handler"
	"github.com/sumsingh11/travelmate/internal/middleware"
	"github.com/sumsingh11/travelmate/internal/repo"
	"github.com/sumsingh11/travelmate/internal/service"
	"github.com/sumsingh11/travelmate/internal/store"
	"github.com/sumsingh11/travelmate/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// Apply embedded migrations on boot so the schema always matches the build.
	if err := migrate(pool); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// --- Trip state store -------------------------------------------------
	// Redis when configured, in-process memory otherwise.
	var kv store.KV
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		kv = store.NewRedis(client, "travelmate")
		slog.Info("redis connection established", "addr", cfg.RedisAddr)
	} else {
		kv = store.NewMemory()
		slog.Info("using in-memory trip store")
	}
	tripStore := store.NewTripStore(kv)

	// --- Services ---------------------------------------------------------
	issuer := auth.NewIssuer(cfg.JWTSecret)
	users := repo.NewUserRepo(pool)

	trips := service.NewTripService(tripStore)
	activities := service.NewActivityService(tripStore)
	planner := service.NewPlannerService(tripStore)
	itinerary := service.NewItineraryService(tripStore)
	budget := service.NewBudgetService(tripStore)
	export := service.NewExportService(tripStore)
	authSvc := service.NewAuthService(users, issuer)

	// Activity-pool edits flow through the store subscription into every day
	// plan that holds a booking for the edited activity.
	tripStore.Subscribe(func(ctx context.Context, change domain.ActivityChange) {
		if err := planner.ApplyActivityChange(ctx, change); err != nil {
			slog.Error("failed to propagate activity change", "activity_id", change.ID, "error", err)
		}
	})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit. Recoverer catches panics and returns HTTP 500
	// instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srv := handler.NewServer(trips, activities, planner, itinerary, budget, export, authSvc)
	r.Mount("/", srv.Routes(issuer))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies the embedded goose migrations through a database/sql
// adapter over the pgx pool.
func migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
