package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"promo-scheduler/internal/config/configs"
	"promo-scheduler/internal/core/domain"
	"promo-scheduler/internal/core/port"
	"promo-scheduler/internal/metrics"
)

// Job names as shown on the status surface and in metrics.
const (
	JobLifecycle    = "campaign-lifecycle"
	JobDistribution = "reward-distribution"
)

// Scheduler fires the lifecycle and distribution jobs on their cron
// cadence. Each job runs in singleton mode: a tick that arrives while the
// previous run is still busy is rescheduled instead of overlapping. The jobs
// stay correct under overlap anyway; singleton mode only saves work.
type Scheduler struct {
	lifecycle    port.LifecycleUseCase
	distribution port.DistributionUseCase
	tracker      *Tracker
	cfg          configs.Scheduler
	logger       *slog.Logger
	now          func() time.Time

	cron gocron.Scheduler
}

// New creates a Scheduler. Jobs are registered by Start.
func New(lifecycle port.LifecycleUseCase, distribution port.DistributionUseCase, tracker *Tracker, cfg configs.Scheduler, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if tracker == nil {
		tracker = NewTracker()
	}
	return &Scheduler{
		lifecycle:    lifecycle,
		distribution: distribution,
		tracker:      tracker,
		cfg:          cfg,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Tracker returns the status tracker the jobs report into.
func (s *Scheduler) Tracker() *Tracker { return s.tracker }

// Start registers both jobs and starts the cron loop. Job runs use ctx, so
// cancelling it ends the current cycle early.
func (s *Scheduler) Start(ctx context.Context) error {
	cron, err := gocron.NewScheduler(
		gocron.WithLocation(s.cfg.Location()),
		gocron.WithLogger(s.logger.With(slog.String("component", "gocron"))),
	)
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	jobs := []struct {
		name string
		expr string
		run  func(context.Context) error
	}{
		{JobLifecycle, s.cfg.LifecycleCron, s.RunLifecycle},
		{JobDistribution, s.cfg.DistributionCron, s.RunDistribution},
	}
	for _, j := range jobs {
		opts := []gocron.JobOption{
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		}
		if s.cfg.RunOnStart {
			opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
		}
		run := j.run
		_, err = cron.NewJob(
			gocron.CronJob(j.expr, false),
			gocron.NewTask(func() { _ = run(ctx) }),
			opts...,
		)
		if err != nil {
			_ = cron.Shutdown()
			return fmt.Errorf("register %s job %q: %w", j.name, j.expr, err)
		}
		s.logger.Info("job registered", slog.String("job", j.name), slog.String("cron", j.expr))
	}

	s.cron = cron
	cron.Start()
	return nil
}

// Shutdown stops the cron loop and waits for running jobs.
func (s *Scheduler) Shutdown() error {
	if s.cron == nil {
		return nil
	}
	return s.cron.Shutdown()
}

// RunOnce runs one lifecycle tick followed by one distribution tick.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	return errors.Join(s.RunLifecycle(ctx), s.RunDistribution(ctx))
}

// RunLifecycle runs the lifecycle job once and records its outcome.
func (s *Scheduler) RunLifecycle(ctx context.Context) error {
	started := s.now()
	report, err := s.lifecycle.Advance(ctx, started)
	took := time.Since(started)

	for _, ch := range report.Changes {
		metrics.RecordTransition(string(ch.To))
	}
	st := s.tracker.Record(JobLifecycle, started, took, lifecycleCounts(report), err)
	s.finish(st, err,
		slog.Int("started", report.Started),
		slog.Int("completed", report.Completed),
		slog.Int("failures", report.Failures))
	return err
}

// RunDistribution runs the distribution job once and records its outcome.
func (s *Scheduler) RunDistribution(ctx context.Context) error {
	started := s.now()
	report, err := s.distribution.Distribute(ctx, started)
	took := time.Since(started)

	for kind, qty := range report.Distributed {
		metrics.RecordDistribution(string(kind), qty)
	}
	metrics.RecordRewardOutcome(report.UsersRewarded, report.UsersDeferred)
	st := s.tracker.Record(JobDistribution, started, took, distributionCounts(report), err)
	s.finish(st, err,
		slog.Int("campaigns", report.CampaignsProcessed),
		slog.Int("rewarded", report.UsersRewarded),
		slog.Int("deferred", report.UsersDeferred),
		slog.Int("invalid_rules", report.InvalidRules),
		slog.Int("failures", report.Failures))
	return err
}

func (s *Scheduler) finish(st domain.JobStatus, err error, attrs ...any) {
	metrics.RecordJobRun(st.Name, string(st.Outcome), st.Duration.Seconds())
	attrs = append(attrs,
		slog.String("job", st.Name),
		slog.String("outcome", string(st.Outcome)),
		slog.Duration("took", st.Duration))
	if err != nil {
		s.logger.Error("job run failed", append(attrs, slog.Any("error", err))...)
		return
	}
	s.logger.Info("job run finished", attrs...)
}
