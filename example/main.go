package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/example/views"
	"github.com/dmitrymomot/intl/middlewares"
	"github.com/dmitrymomot/intl/pkg/component"
	"github.com/dmitrymomot/intl/pkg/logger"
)

//go:embed locales
var locales embed.FS

func main() {
	logCfg, err := logger.ConfigFromEnv()
	if err != nil {
		slog.Error("invalid logger config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log, err := logger.FromConfig(logCfg, logger.WithExtractors(intl.LocaleExtractor()))
	if err != nil {
		slog.Error("invalid logger config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg, err := intl.ConfigFromEnv()
	if err != nil {
		log.Error("invalid intl config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(cfg.Locales) == 0 {
		cfg.Locales = []string{"en"}
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}

	messages, err := fs.Sub(locales, "locales")
	if err != nil {
		log.Error("locales", slog.String("error", err.Error()))
		os.Exit(1)
	}

	in, err := intl.New(
		intl.WithLogger(log),
		intl.WithConfig(cfg),
		intl.WithMessagesDir(messages),
	)
	if err != nil {
		log.Error("failed to create intl", slog.String("error", err.Error()))
		os.Exit(1)
	}
	kit := component.New(in)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Use(middlewares.Locale(in))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		order := views.Order{Items: 3, Total: 1234.5, Placed: time.Now().Add(-26 * time.Hour)}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := views.OrderPage(kit, order).Render(req.Context(), w); err != nil {
			log.ErrorContext(req.Context(), "render failed", slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})

	r.Get("/stats", func(w http.ResponseWriter, req *http.Request) {
		s := in.Formatters().Stats()
		log.InfoContext(req.Context(), "formatter cache",
			slog.Int64("hits", s.Hits),
			slog.Int64("misses", s.Misses),
			slog.Int64("builds", s.Builds),
			slog.Int("size", in.Formatters().Len()),
		)
		w.WriteHeader(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:              getEnv("ADDRESS", ":8080"),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
