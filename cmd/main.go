package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "promo-scheduler/internal/adapter/http"
	"promo-scheduler/internal/adapter/partner"
	"promo-scheduler/internal/adapter/postgres"
	"promo-scheduler/internal/adapter/scheduler"
	"promo-scheduler/internal/adapter/usecase"
	"promo-scheduler/internal/config"
	"promo-scheduler/internal/db"
)

// main loads configuration, prepares the database, wires the lifecycle and
// distribution jobs and either runs them once (-once) or schedules them and
// serves the status surface until a termination signal arrives.
func main() {
	once := flag.Bool("once", false, "run one lifecycle and one distribution tick, then exit")
	flag.Parse()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger, *once); err != nil {
		logger.Error("exiting", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger, once bool) error {
	if cfg.Psql.RunMigrations {
		from, to, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("schema ready", slog.Uint64("from_version", uint64(from)), slog.Uint64("version", uint64(to)))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	campaigns := postgres.NewCampaignRepository(pool)
	partnerOpts := partner.Options{
		ServiceToken:  cfg.Partners.ServiceToken,
		Timeout:       cfg.Partners.Timeout,
		RatePerSecond: cfg.Partners.RatePerSecond,
	}
	notifier := partner.NewNotifyClient(cfg.Partners.NotifyURL, partnerOpts)

	lifecycle := usecase.NewLifecycleUseCase(campaigns, notifier, logger.With(slog.String("job", scheduler.JobLifecycle)))
	distribution := usecase.NewDistributionUseCase(usecase.DistributionDeps{
		Campaigns: campaigns,
		Rewards:   postgres.NewRewardRepository(pool),
		Segments:  postgres.NewSegmentReader(pool),
		Activity:  postgres.NewActivityReader(pool),
		Tokens:    partner.NewTokenClient(cfg.Partners.TokenURL, partnerOpts),
		Coins:     partner.NewLedgerClient(cfg.Partners.LedgerURL, partnerOpts),
		Notifier:  notifier,
	}, usecase.DistributionConfig{
		Concurrency: cfg.Scheduler.Concurrency,
		CallTimeout: cfg.Partners.Timeout,
		CoinReason:  cfg.Partners.CoinReason,
	}, logger.With(slog.String("job", scheduler.JobDistribution)))

	sched := scheduler.New(lifecycle, distribution, scheduler.NewTracker(), cfg.Scheduler, logger)
	if once {
		return sched.RunOnce(ctx)
	}

	if err = sched.Start(ctx); err != nil {
		return err
	}

	handler := httpadapter.NewHandler(sched.Tracker(), pool, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("status server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	if err = sched.Shutdown(); err != nil {
		logger.Error("scheduler shutdown error", slog.Any("error", err))
	}
	logger.Info("stopped")
	return nil
}
