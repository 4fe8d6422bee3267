package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/csg33k/roster/internal/adapters/memory"
	"github.com/csg33k/roster/internal/adapters/pdf"
	"github.com/csg33k/roster/internal/adapters/seed"
	"github.com/csg33k/roster/internal/app"
	"github.com/csg33k/roster/internal/config"
	"github.com/csg33k/roster/internal/handlers"
	"github.com/csg33k/roster/internal/observability"
)

// env is everything a subcommand needs once config and seed are loaded.
type env struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	session *app.Session
}

func bootstrap(ctx context.Context, adjust ...func(*config.Config)) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	for _, fn := range adjust {
		fn(cfg)
	}
	if port != "" {
		cfg.App.Port = port
	}
	if seedFile != "" {
		cfg.Seed.File = seedFile
	}
	if seedDB != "" {
		cfg.Seed.DB = seedDB
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	tag, err := language.Parse(cfg.Roster.Locale)
	if err != nil {
		logger.Warn("unknown locale, sorting with English collation", zap.String("locale", cfg.Roster.Locale))
		tag = language.English
	}

	records, err := seed.Pick(cfg.Seed.File, cfg.Seed.DB).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seed records: %w", err)
	}
	records = seed.Sanitize(records, logger)

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	session := app.NewSession(app.Deps{
		Store:    memory.New(records),
		Report:   pdf.Generator{},
		Logger:   logger,
		Metrics:  metrics,
		Locale:   tag,
		PageSize: cfg.Roster.PageSize,
	})
	logger.Info("roster loaded",
		zap.Int("records", len(records)),
		zap.String("seed_file", cfg.Seed.File),
		zap.String("seed_db", cfg.Seed.DB),
		zap.String("locale", tag.String()),
	)

	return &env{cfg: cfg, logger: logger, metrics: metrics, session: session}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync() //nolint:errcheck

	h := handlers.New(rt.session, rt.logger, rt.metrics)
	srv := &http.Server{
		Addr:    rt.cfg.App.Addr(),
		Handler: observability.RequestLogger(rt.logger, rt.metrics, h.Routes()),
	}

	errCh := make(chan error, 1)
	go func() {
		rt.logger.Info("employee roster listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	rt.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), rt.cfg.App.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
