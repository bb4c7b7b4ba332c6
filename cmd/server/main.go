package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adeyemi/task-manager-api/internal/auth"
	"github.com/adeyemi/task-manager-api/internal/category"
	"github.com/adeyemi/task-manager-api/internal/config"
	"github.com/adeyemi/task-manager-api/internal/store"
	"github.com/adeyemi/task-manager-api/internal/task"
	"github.com/adeyemi/task-manager-api/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pgPool.Close()
	pgStore := store.NewPostgresStore(pgPool)
	if err := pgStore.Migrate(ctx); err != nil {
		log.Fatalf("postgres migrate: %v", err)
	}

	// ── Services ─────────────────────────────────────────────
	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	userService := user.NewService(pgStore, tokens)
	categoryService := category.NewService(pgStore)
	taskService := task.NewService(pgStore)

	gate := auth.NewGate(tokens, userService)

	// ── Handlers ─────────────────────────────────────────────
	userHandler := user.NewHandler(userService)
	categoryHandler := category.NewHandler(categoryService)
	taskHandler := task.NewHandler(taskService)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/", gate.Require(userHandler.Me))
	})

	r.Route("/task-category", func(r chi.Router) {
		r.Post("/", gate.Require(categoryHandler.Create))
		r.Get("/", gate.Require(categoryHandler.List))
		r.Get("/{id}", gate.Require(categoryHandler.GetByID))
		r.Patch("/{id}", gate.Require(categoryHandler.Update))
		r.Delete("/{id}", gate.Require(categoryHandler.Delete))
	})

	r.Route("/task", func(r chi.Router) {
		r.Post("/", gate.Require(taskHandler.Create))
		r.Get("/", gate.Require(taskHandler.List))
		r.Get("/{id}", gate.Require(taskHandler.GetByID))
		r.Patch("/{id}", gate.Require(taskHandler.Update))
		r.Delete("/{id}", gate.Require(taskHandler.Delete))
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("API listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
