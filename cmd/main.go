// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/logger"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()

	// ── 1. Wire up layers ────────────────────────────────────────────────
	reg := registry.New()
	svc := service.NewSignupService(reg)
	h := handler.NewActivityHandler(svc)

	// ── 2. Build the router ──────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.AccessLog(zlog)) // structured access log
	r.Use(handler.CORS)            // permissive CORS for the static frontend
	r.Use(metrics.Middleware)      // request duration histogram

	// Health and observability
	r.Get("/health", handler.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Get("/", h.Index)
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Get("/{activity}", h.GetActivity)
		r.Post("/{activity}/signup", h.Signup)
		r.Delete("/{activity}/remove", h.Remove)
	})

	// Static frontend – index.html, app.js, styles.css
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// ── 3. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		zlog.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("graceful shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped")
}
