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
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mbastos/tarefas-api/internal/auth"
	"github.com/mbastos/tarefas-api/internal/config"
	"github.com/mbastos/tarefas-api/internal/handler"
	"github.com/mbastos/tarefas-api/internal/repo"
	"github.com/mbastos/tarefas-api/internal/service"
	"github.com/mbastos/tarefas-api/internal/worker"
)

// Mirrors migrations/001_init.up.sql so a fresh database works without a
// separate migration step.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS usuarios (
    id BIGSERIAL PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    senha_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tarefas (
    id BIGSERIAL PRIMARY KEY,
    titulo VARCHAR(100) NOT NULL,
    descricao VARCHAR(500),
    concluida BOOLEAN NOT NULL DEFAULT FALSE,
    data_vencimento DATE,
    prioridade TEXT NOT NULL DEFAULT 'verde'
        CHECK (prioridade IN ('vermelha', 'amarela', 'verde')),
    dono_id BIGINT NOT NULL REFERENCES usuarios (id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_tarefas_dono_id ON tarefas (dono_id);
`

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to Database.")
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Failed to ping the Database.")
	}
	logger.Info("Successfully connected to the Database!")

	if _, err := pool.Exec(context.Background(), schemaDDL); err != nil {
		logger.Fatal("Failed to create schema", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.TokenTTL())

	usuarioRepo := repo.NewUsuarioRepo(pool)
	tarefaRepo := repo.NewTarefaRepo(pool)

	usuarioService := service.NewUsuarioService(usuarioRepo, tokens)
	tarefaService := service.NewTarefaService(tarefaRepo)

	usuarioHandler := handler.NewUsuarioHandler(usuarioService, logger)
	tarefaHandler := handler.NewTarefaHandler(tarefaService, logger)
	healthHandler := handler.NewHealthHandler(cfg.Version, cfg.Environment)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Post("/usuarios/", usuarioHandler.Create)
	r.Post("/login", usuarioHandler.Login)

	r.Route("/tarefas", func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens, usuarioRepo, logger))
		r.Post("/", tarefaHandler.Create)
		r.Get("/", tarefaHandler.List)
		r.Get("/resumo", tarefaHandler.Resumo)
		r.Get("/{id}", tarefaHandler.Get)
		r.Put("/{id}", tarefaHandler.Update)
		r.Delete("/{id}", tarefaHandler.Delete)
	})

	reminder := worker.NewReminder(pool, logger, cfg.ReminderInterval())
	reminder.Start(context.Background())

	srv := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started at ", zap.String("port", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	reminder.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	logger.Info("Server stopped succsessfully!")
}
