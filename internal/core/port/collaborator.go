package port

import (
	"context"

	"promo-scheduler/internal/core/domain"
)

// SegmentDirectory resolves campaign audiences. Read-only.
type SegmentDirectory interface {
	// ResolveMembers returns the union of the segments' members ordered by
	// user id, optionally restricted to one organization.
	ResolveMembers(ctx context.Context, segmentIDs []int64, orgID *int64) ([]domain.Member, error)
}

// ActivityReader counts qualifying user actions. Read-only.
type ActivityReader interface {
	CountQualifyingEvents(ctx context.Context, userID, actionID string, window domain.Window) (int, error)
	// ListQualifyingEvents returns matching events oldest first.
	ListQualifyingEvents(ctx context.Context, userID, actionID string, window domain.Window) ([]domain.ActivityEvent, error)
}

// TokenDistributor sends tokens from a partner pool to a batch of users.
// At-least-once delivery is assumed. Timeouts and transport failures return
// an error wrapping domain.ErrTransientExternal.
type TokenDistributor interface {
	Distribute(ctx context.Context, req domain.TokenDistributionRequest) (reference string, err error)
}

// CoinLedger is the partner holding coin balances.
type CoinLedger interface {
	GetBalance(ctx context.Context, sourceID string) (int64, error)
	CreateTransaction(ctx context.Context, tx domain.CoinTransaction) (transactionID string, err error)
}

// Notifier delivers templated notifications. Delivery is not guaranteed and
// callers only log failures.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}
