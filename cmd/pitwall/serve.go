package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	calendarimpl "github.com/foxseedlab/pitwall/external/calendar"
	"github.com/foxseedlab/pitwall/external/metrics"
	webhookimpl "github.com/foxseedlab/pitwall/external/webhook"
	"github.com/foxseedlab/pitwall/internal/config"
	"github.com/foxseedlab/pitwall/internal/notify"
	"github.com/robfig/cron/v3"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	notifyRunTimeout  = 2 * time.Minute
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the interaction webhook, calendar export and metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			slog.Info("startup: building dependency graph")
			return runServer(cmd.Context(), cfg, setupDI(cfg))
		},
	}
}

func newMux(injector do.Injector) (*http.ServeMux, error) {
	interactions, err := do.Invoke[*webhookimpl.InteractionHandler](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve interaction handler: %w", err)
	}
	cal, err := do.Invoke[*calendarimpl.Handler](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve calendar handler: %w", err)
	}
	m, err := do.Invoke[*metrics.Metrics](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /interactions", interactions)
	mux.Handle("POST /{$}", interactions)
	mux.Handle("GET /calendar/{year}", cal)
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("GET /healthz", metrics.HealthHandler())
	return mux, nil
}

func runServer(parent context.Context, cfg *config.Config, injector do.Injector) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Resolving the notifier opens the database, so a bad DATABASE_URL fails
	// startup instead of the first command.
	if _, err := do.Invoke[*notify.Notifier](injector); err != nil {
		return fmt.Errorf("failed to resolve notifier: %w", err)
	}
	mux, err := newMux(injector)
	if err != nil {
		return err
	}

	scheduler, err := startScheduler(cfg, injector)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("startup: listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	}

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown failed", "error", err)
	}
	return nil
}

func startScheduler(cfg *config.Config, injector do.Injector) (*cron.Cron, error) {
	if !cfg.NotifyEnabled {
		slog.Info("race week notices disabled")
		return nil, nil
	}
	notifier := do.MustInvoke[*notify.Notifier](injector)
	m := do.MustInvoke[*metrics.Metrics](injector)

	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(cfg.NotifyCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyRunTimeout)
		defer cancel()
		sent, err := notifier.Run(ctx)
		m.NoticesSent(sent)
		if err != nil {
			slog.Error("race week notice run failed", "error", err, "sent", sent)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule race week notices: %w", err)
	}
	c.Start()
	slog.Info("race week notices scheduled", "cron", cfg.NotifyCron)
	return c, nil
}
