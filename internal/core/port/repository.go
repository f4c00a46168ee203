package port

import (
	"context"
	"time"

	"promo-scheduler/internal/core/domain"
)

// CampaignRepository is the persistence port for campaign lifecycle state.
// Status updates are guarded by the expected current status so overlapping
// runs cannot apply the same transition twice; a guard miss returns
// domain.ErrStaleStatus.
type CampaignRepository interface {
	// ListDueForStart returns upcoming campaigns whose start date is at or
	// before now, with the giveaway rule attached when there is one.
	ListDueForStart(ctx context.Context, now time.Time) ([]domain.CampaignWithRule, error)
	// Activate moves an upcoming campaign to in progress, enables coin usage,
	// writes the (possibly extended) end date and the normalized rule
	// objective in one transaction.
	Activate(ctx context.Context, act domain.Activation) error
	// ListDueForCompletion returns in-progress and force-stopped campaigns
	// whose end date is before now.
	ListDueForCompletion(ctx context.Context, now time.Time) ([]domain.Campaign, error)
	// Complete moves a campaign from the given status to completed.
	Complete(ctx context.Context, campaignID int64, from domain.Status) error
	// ListActiveGiveaways returns in-progress giveaway campaigns with their
	// rule and inventory pool attached. Audience is left empty.
	ListActiveGiveaways(ctx context.Context) ([]domain.CampaignWithRule, error)
}

// RewardRepository is the persistence port for the winner ledger and reward
// inventory. Implementations must enforce (user_id, campaign_id) uniqueness
// for non-repeatable awards and the distributed <= total invariant in
// storage, not in memory.
type RewardRepository interface {
	// ListWinnerUserIDs returns users already holding a winner record for
	// the campaign.
	ListWinnerUserIDs(ctx context.Context, campaignID int64) ([]string, error)
	// ConsumedEventIDs returns which of eventIDs already funded an award
	// for the campaign.
	ConsumedEventIDs(ctx context.Context, campaignID int64, eventIDs []string) ([]string, error)
	// CommitBatch inserts every winner row and event consumption and
	// increments the pool by the inserted quantity in one transaction. Awards
	// that would duplicate an existing winner or consumed event are skipped,
	// reported in CommitResult.Duplicates and not charged. A guard miss on the inventory
	// returns domain.ErrInventoryConflict and nothing is written.
	CommitBatch(ctx context.Context, batch domain.BatchAward) (domain.CommitResult, error)
	// AwardWithSettlement records a single award and runs settle inside the
	// same transaction. The winner row, event consumption and inventory
	// increment are written first so the uniqueness guards fire before
	// settle is called; the transaction commits only if settle succeeds and
	// the returned reference is stored on the winner row.
	AwardWithSettlement(ctx context.Context, batch domain.BatchAward, settle func(ctx context.Context) (string, error)) error
}
