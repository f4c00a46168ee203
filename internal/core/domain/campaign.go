package domain

import "time"

// Kind is the type of promotional campaign.
type Kind string

const (
	KindGiveAway  Kind = "giveaway"
	KindRaffle    Kind = "raffle"
	KindChallenge Kind = "challenge"
)

// Status is the lifecycle state of a campaign. Transitions are monotonic in
// the order Draft, Upcoming, InProgress, Completed, except for the admin-only
// jump to ForceStopped, which the lifecycle job later sweeps into Completed.
type Status string

const (
	StatusDraft        Status = "draft"
	StatusUpcoming     Status = "upcoming"
	StatusInProgress   Status = "in_progress"
	StatusCompleted    Status = "completed"
	StatusForceStopped Status = "force_stopped"
)

var statusRank = map[Status]int{
	StatusDraft:      0,
	StatusUpcoming:   1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	switch {
	case s == StatusCompleted:
		return false
	case next == StatusForceStopped:
		return s != StatusForceStopped
	case s == StatusForceStopped:
		return next == StatusCompleted
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	return ok && to > from
}

// Campaign represents a time-bounded promotional campaign.
type Campaign struct {
	ID               int64
	Name             string
	Kind             Kind
	Status           Status
	StartDate        time.Time
	EndDate          time.Time
	CoinUsageEnabled bool
	SegmentIDs       []int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DueForStart reports whether an upcoming campaign should be moved to
// InProgress at now.
func (c Campaign) DueForStart(now time.Time) bool {
	return c.Status == StatusUpcoming && !c.StartDate.After(now)
}

// DueForCompletion reports whether a running or force-stopped campaign has
// passed its end date at now.
func (c Campaign) DueForCompletion(now time.Time) bool {
	return (c.Status == StatusInProgress || c.Status == StatusForceStopped) && c.EndDate.Before(now)
}

// CampaignWithRule is the fully assembled aggregate the reward jobs operate
// on. Rule is nil for non-giveaway campaigns. Inventory is nil when the
// rule's prize has no finite pool. Audience is populated only by the
// distribution job.
type CampaignWithRule struct {
	Campaign  Campaign
	Rule      *GiveAwayRule
	Inventory *RewardInventory
	Audience  []Member
}

// Activation is the set of changes written when a campaign starts.
type Activation struct {
	CampaignID int64
	EndDate    time.Time
	// RuleID is zero when there is no rule to normalize.
	RuleID      int64
	Objective   *Objective
	ConfigError string
}

// StatusChange records a single lifecycle transition.
type StatusChange struct {
	CampaignID int64
	From       Status
	To         Status
	At         time.Time
	// EndDateExtended is set when activation pushed the end date out to
	// match the rule window.
	EndDateExtended bool
}
