// Package main is the entry point for the trip report API server.
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

	"github.com/pkordes/trip-report/internal/config"
	"github.com/pkordes/trip-report/internal/handler"
	"github.com/pkordes/trip-report/internal/handler/gen"
	"github.com/pkordes/trip-report/internal/middleware"
	"github.com/pkordes/trip-report/internal/session"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Default logger: the configured one does not exist yet.
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

	// --- Sessions ---------------------------------------------------------
	// Every open page keeps its form, notification area and draft here.
	// Nothing is written to disk; a restart drops all drafts.
	sessions, err := session.NewRegistry(session.Options{
		NotifyDuration: cfg.NotifyDuration,
		TTL:            cfg.SessionTTL,
		Location:       cfg.Location,
	}, logger)
	if err != nil {
		logger.Error("session registry", "error", err)
		os.Exit(1)
	}

	ctx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	if cfg.SessionTTL > 0 {
		go sessions.Run(ctx, time.Minute)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	// Register handlers. gen.NewStrictHandlerWithOptions adapts our
	// StrictServerInterface to the chi routes generated from openapi.yaml;
	// the options keep error replies in the same JSON envelope.
	srv := handler.NewServer(sessions, logger)
	r.Get("/openapi.yaml", handler.GetOpenAPI)
	gen.HandlerWithOptions(gen.NewStrictHandlerWithOptions(srv, nil, srv.StrictOptions()), gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: srv.ParamError,
	})

	// --- HTTP Server ------------------------------------------------------
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
	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
