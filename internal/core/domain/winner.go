package domain

import (
	"time"
)

// ActivityEvent is a recorded user action that may count toward a rule.
type ActivityEvent struct {
	ID         string
	UserID     string
	ActionID   string
	OccurredAt time.Time
}

// WinnerRecord is durable proof that a user was awarded a reward for a
// campaign. For non-repeatable rules (UserID, CampaignID) is unique.
type WinnerRecord struct {
	ID                    int64
	UserID                string
	CampaignID            int64
	RuleID                int64
	PrizeKind             PrizeKind
	Quantity              int64
	Repeatable            bool
	AwardedAt             time.Time
	DistributionReference string
}

// Qualifier is a user who met a rule's threshold in the current cycle.
type Qualifier struct {
	Member      Member
	ActionCount int
	Multiplier  int
	// EventIDs are the activity events this award consumes. Only set for
	// repeatable rules.
	EventIDs []string
}

// Award is one user's share of an allocation.
type Award struct {
	UserID   string
	Quantity int64
	EventIDs []string
}

// BatchAward is committed in a single transaction: the inventory increment
// and every winner row succeed or fail together.
type BatchAward struct {
	CampaignID  int64
	RuleID      int64
	InventoryID *int64
	PrizeKind   PrizeKind
	Repeatable  bool
	Reference   string
	AwardedAt   time.Time
	Awards      []Award
}

// CommitResult reports which awards of a batch were recorded.
type CommitResult struct {
	Inserted   []string
	Duplicates []string
	// Quantity is the summed quantity of the inserted awards, which is what
	// the inventory was charged.
	Quantity int64
}

// TokenDistributionRequest is sent to the token partner for one batch.
type TokenDistributionRequest struct {
	PoolID            string
	CampaignID        int64
	ValidFrom         time.Time
	ValidUntil        time.Time
	QuantityPerWinner int64
	UserIDs           []string
	IdempotencyKey    string
}

// CoinTransaction is a single ledger credit.
type CoinTransaction struct {
	SourceID  string
	UserID    string
	Amount    int64
	Reason    string
	Reference string
}

// Notification is a fire-and-forget message to the notification gateway.
// Exactly one of UserID or CampaignID is set.
type Notification struct {
	UserID     string
	CampaignID int64
	Template   string
	Data       map[string]string
}

const (
	TemplateCampaignStarted   = "campaign_started"
	TemplateCampaignCompleted = "campaign_completed"
	TemplateRewardAwarded     = "reward_awarded"
)
