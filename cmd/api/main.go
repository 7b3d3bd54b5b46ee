package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "vet-care-assistant/internal/adapters/storage/postgres"
	"vet-care-assistant/internal/config"
	"vet-care-assistant/internal/domain/diagnosis"
	"vet-care-assistant/internal/platform/logger"
	"vet-care-assistant/internal/router"
)

// @title Vet Care Assistant API
// @version 1.0
// @description Asistente veterinario: chat por palabras clave, diagnóstico simulado, primeros auxilios, veterinarios y recetas (en/ta).
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("fatal", map[string]any{"error": err})
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

// run devuelve el error en vez de salir, así los defers (DB) siempre corren.
func run(cfg *config.Config, log logger.Logger) error {
	db, err := openStorage(cfg, log, pg.Open, pg.RunMigrations)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	seed := cfg.Seed()
	r := router.NewRouter(router.Options{
		DB:              db,
		Logger:          log,
		Rand:            diagnosis.NewRand(seed),
		ResponseDelay:   cfg.ResponseDelay,
		MaxUploadBytes:  cfg.MaxUploadBytes,
		DefaultLanguage: cfg.Language(),
		Hotline:         cfg.EmergencyHotline,
		ChatSessionTTL:  cfg.ChatSessionTTL,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second, // uploads de hasta 10MB
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{
			"addr":     cfg.Addr(),
			"postgres": db != nil,
			"seed":     seed,
			"lang":     string(cfg.Language()),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

// openStorage abre Postgres si hay DSN. Sin DB se sigue con los catálogos en
// memoria; una migración fallida sí es fatal y deja la conexión cerrada.
func openStorage(
	cfg *config.Config,
	log logger.Logger,
	open func(dsn string) (*sql.DB, error),
	migrateUp func(databaseURL string, log logger.Logger) error,
) (*sql.DB, error) {
	if cfg.DBDSN == "" {
		return nil, nil
	}

	db, err := open(cfg.DBDSN)
	if err != nil {
		log.Warn("postgres unavailable, using in-memory catalogs", map[string]any{"error": err})
		return nil, nil
	}

	if cfg.RunMigrations {
		if err := migrateUp(cfg.DBDSN, log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}
	return db, nil
}
