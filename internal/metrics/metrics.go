package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobRuns counts scheduled job invocations by job and outcome.
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promo_job_runs_total",
			Help: "Scheduled job runs by job name and outcome",
		},
		[]string{"job", "outcome"}, // success, partial or failure
	)

	// JobDuration tracks how long each job run took.
	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "promo_job_duration_seconds",
			Help: "Duration of scheduled job runs in seconds",
			Buckets: []float64{
				0.05, // 50ms
				0.1,  // 100ms
				0.5,  // 500ms
				1.0,  // 1s
				5.0,  // 5s
				15.0, // 15s
				30.0, // 30s
				60.0, // 1m
				180,  // 3m
				600,  // 10m
			},
		},
		[]string{"job"},
	)

	// StatusTransitions counts campaign lifecycle transitions by target status.
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promo_campaign_status_transitions_total",
			Help: "Campaign status transitions applied by the lifecycle job",
		},
		[]string{"to"},
	)

	// UsersRewarded counts new winner records.
	UsersRewarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promo_users_rewarded_total",
			Help: "Users newly recorded as winners",
		},
	)

	// RewardsDistributed counts distributed reward units by prize kind.
	RewardsDistributed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promo_rewards_distributed_total",
			Help: "Reward units taken from inventory and handed out",
		},
		[]string{"prize"},
	)

	// UsersDeferred counts qualifiers pushed to a later cycle.
	UsersDeferred = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promo_users_deferred_total",
			Help: "Qualifying users deferred because inventory or balance ran out",
		},
	)
)

// RecordJobRun records the outcome and duration of a job run.
func RecordJobRun(job, outcome string, seconds float64) {
	JobRuns.WithLabelValues(job, outcome).Inc()
	JobDuration.WithLabelValues(job).Observe(seconds)
}

// RecordTransition records one campaign status transition.
func RecordTransition(to string) {
	StatusTransitions.WithLabelValues(to).Inc()
}

// RecordDistribution records the quantity handed out for one prize kind.
func RecordDistribution(prize string, quantity int64) {
	if quantity > 0 {
		RewardsDistributed.WithLabelValues(prize).Add(float64(quantity))
	}
}

// RecordRewardOutcome records rewarded and deferred users of one cycle.
func RecordRewardOutcome(rewarded, deferred int) {
	UsersRewarded.Add(float64(rewarded))
	UsersDeferred.Add(float64(deferred))
}
