package domain

import "time"

// LifecycleReport summarises one lifecycle tick.
type LifecycleReport struct {
	Started   int
	Completed int
	Failures  int
	Changes   []StatusChange
}

// DistributionReport summarises one distribution tick.
type DistributionReport struct {
	CampaignsProcessed int
	UsersRewarded      int
	UsersDeferred      int
	InvalidRules       int
	DuplicatesSkipped  int
	Failures           int
	Distributed        map[PrizeKind]int64
}

// Add folds other into r.
func (r *DistributionReport) Add(other DistributionReport) {
	r.CampaignsProcessed += other.CampaignsProcessed
	r.UsersRewarded += other.UsersRewarded
	r.UsersDeferred += other.UsersDeferred
	r.InvalidRules += other.InvalidRules
	r.DuplicatesSkipped += other.DuplicatesSkipped
	r.Failures += other.Failures
	for k, v := range other.Distributed {
		r.Credit(k, v)
	}
}

// Credit adds qty of kind to the distributed totals.
func (r *DistributionReport) Credit(kind PrizeKind, qty int64) {
	if r.Distributed == nil {
		r.Distributed = make(map[PrizeKind]int64)
	}
	r.Distributed[kind] += qty
}

// Outcome of a job run as shown on the status surface.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailure Outcome = "failure"
)

// JobStatus is the operational view of the last run of a job.
type JobStatus struct {
	Name      string           `json:"name"`
	LastRunAt time.Time        `json:"last_run_at"`
	Duration  time.Duration    `json:"duration_ns"`
	Outcome   Outcome          `json:"outcome"`
	LastError string           `json:"last_error,omitempty"`
	Runs      int64            `json:"runs"`
	Counts    map[string]int64 `json:"counts"`
}
