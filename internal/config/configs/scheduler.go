package configs

import (
	"time"
)

// Scheduler configures the periodic jobs. Cron expressions use the five
// field format without seconds.
type Scheduler struct {
	// LifecycleCron is the cadence of the campaign lifecycle job.
	LifecycleCron string `env:"LIFECYCLE_CRON" envDefault:"*/10 * * * *"`
	// DistributionCron is the cadence of the reward distribution job.
	DistributionCron string `env:"DISTRIBUTION_CRON" envDefault:"*/10 * * * *"`
	// Concurrency is how many campaigns one distribution run processes at
	// once.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
	// RunOnStart fires both jobs immediately after the scheduler starts.
	RunOnStart bool `env:"RUN_ON_START" envDefault:"false"`
	// TimeZone is the IANA zone the cron expressions are evaluated in.
	TimeZone string `env:"TIME_ZONE" envDefault:"UTC"`
}

// Location resolves TimeZone. Unknown zones fall back to UTC.
func (c Scheduler) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
