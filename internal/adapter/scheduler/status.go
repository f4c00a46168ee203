package scheduler

import (
	"slices"
	"strings"
	"sync"
	"time"

	"promo-scheduler/internal/core/domain"
)

// Tracker keeps the last run of every job for the status surface. It is safe
// for concurrent use and implements port.StatusReader.
type Tracker struct {
	mu   sync.RWMutex
	jobs map[string]domain.JobStatus
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{jobs: make(map[string]domain.JobStatus)}
}

// Record stores the result of one run. A run that returned an error is a
// failure; a run that completed with per-campaign or per-user failures, or
// with rules that need operator attention, is partial.
func (t *Tracker) Record(name string, startedAt time.Time, took time.Duration, counts map[string]int64, err error) domain.JobStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.jobs[name]
	st.Name = name
	st.LastRunAt = startedAt
	st.Duration = took
	st.Runs++
	st.Counts = counts
	st.LastError = ""
	st.Outcome = outcomeOf(counts, err)
	if err != nil {
		st.LastError = err.Error()
	}
	t.jobs[name] = st
	return st
}

func outcomeOf(counts map[string]int64, err error) domain.Outcome {
	switch {
	case err != nil:
		return domain.OutcomeFailure
	case counts["failures"] > 0, counts["invalid_rules"] > 0:
		return domain.OutcomePartial
	default:
		return domain.OutcomeSuccess
	}
}

// Status returns the last run of the named job.
func (t *Tracker) Status(name string) (domain.JobStatus, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st, ok := t.jobs[name]
	if ok {
		st.Counts = cloneCounts(st.Counts)
	}
	return st, ok
}

// Statuses returns every job that has run at least once, ordered by name.
func (t *Tracker) Statuses() []domain.JobStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.JobStatus, 0, len(t.jobs))
	for _, st := range t.jobs {
		st.Counts = cloneCounts(st.Counts)
		out = append(out, st)
	}
	slices.SortFunc(out, func(a, b domain.JobStatus) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func cloneCounts(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// lifecycleCounts flattens a lifecycle report for the status surface.
func lifecycleCounts(r domain.LifecycleReport) map[string]int64 {
	return map[string]int64{
		"campaigns_started":   int64(r.Started),
		"campaigns_completed": int64(r.Completed),
		"failures":            int64(r.Failures),
	}
}

// distributionCounts flattens a distribution report for the status surface.
func distributionCounts(r domain.DistributionReport) map[string]int64 {
	return map[string]int64{
		"campaigns_processed":     int64(r.CampaignsProcessed),
		"users_rewarded":          int64(r.UsersRewarded),
		"users_deferred":          int64(r.UsersDeferred),
		"invalid_rules":           int64(r.InvalidRules),
		"duplicates_skipped":      int64(r.DuplicatesSkipped),
		"failures":                int64(r.Failures),
		"tokens_distributed":      r.Distributed[domain.PrizeToken],
		"coins_distributed":       r.Distributed[domain.PrizeCoin],
		"merchandise_distributed": r.Distributed[domain.PrizeMerchandise],
		"logos_distributed":       r.Distributed[domain.PrizeLogo],
	}
}
