package port

import (
	"context"
	"time"

	"promo-scheduler/internal/core/domain"
)

// LifecycleUseCase advances campaign status based on wall-clock time.
type LifecycleUseCase interface {
	// Advance starts every upcoming campaign whose start date has arrived
	// and completes every in-progress or force-stopped campaign whose end
	// date has passed. Each campaign is an independent unit: a failure is
	// counted in the report and does not stop the others. Calling Advance
	// again with the same now is a no-op.
	Advance(ctx context.Context, now time.Time) (domain.LifecycleReport, error)
}

// DistributionUseCase allocates rewards to qualifying users of running
// giveaway campaigns.
type DistributionUseCase interface {
	// Distribute runs one distribution cycle over every active giveaway.
	// Failures are scoped to one campaign or one user and reported in the
	// returned report; the error is only set when the cycle could not start.
	Distribute(ctx context.Context, now time.Time) (domain.DistributionReport, error)
}

// StatusReader exposes the last outcome of every scheduled job.
type StatusReader interface {
	Statuses() []domain.JobStatus
	Status(name string) (domain.JobStatus, bool)
}
