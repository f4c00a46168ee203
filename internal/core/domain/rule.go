package domain

import (
	"fmt"
	"time"
)

// PrizeKind is what a giveaway rule pays out.
type PrizeKind string

const (
	PrizeToken       PrizeKind = "token"
	PrizeMerchandise PrizeKind = "merchandise"
	PrizeCoin        PrizeKind = "coin"
	PrizeLogo        PrizeKind = "logo"
)

// Finite reports whether the prize draws from an inventory pool.
func (k PrizeKind) Finite() bool {
	return k == PrizeToken || k == PrizeMerchandise || k == PrizeCoin
}

func (k PrizeKind) valid() bool {
	switch k {
	case PrizeToken, PrizeMerchandise, PrizeCoin, PrizeLogo:
		return true
	}
	return false
}

// GiveAwayRule is the reward configuration owned by a giveaway campaign. It
// is immutable once the campaign is in progress, apart from the one-time
// objective normalization written at activation.
type GiveAwayRule struct {
	ID              int64
	CampaignID      int64
	PrizeKind       PrizeKind
	ObjectiveSource string
	Objective       *Objective
	MinimumCount    int
	QuantityPerGift int64
	CanRepeat       bool
	OrgID           *int64
	Window          Window
	InventoryID     *int64
	ConfigError     string
}

// ActionID returns the normalized qualifying action, or "" before
// normalization.
func (r GiveAwayRule) ActionID() string {
	if r.Objective == nil {
		return ""
	}
	return r.Objective.ActionID
}

// Validate checks the rule for conditions that will not resolve on their
// own. Every failure wraps ErrInvalidRule.
func (r GiveAwayRule) Validate() error {
	if r.ConfigError != "" {
		return fmt.Errorf("%w: %s", ErrInvalidRule, r.ConfigError)
	}
	if !r.PrizeKind.valid() {
		return fmt.Errorf("%w: unknown prize kind %q", ErrInvalidRule, r.PrizeKind)
	}
	if r.ActionID() == "" {
		return fmt.Errorf("%w: objective not normalized", ErrInvalidRule)
	}
	if r.MinimumCount < 1 {
		return fmt.Errorf("%w: minimum_count must be at least 1, got %d", ErrInvalidRule, r.MinimumCount)
	}
	if r.QuantityPerGift <= 0 {
		return fmt.Errorf("%w: quantity_per_gift must be positive, got %d", ErrInvalidRule, r.QuantityPerGift)
	}
	if r.PrizeKind.Finite() && r.InventoryID == nil {
		return fmt.Errorf("%w: %s prize requires an inventory pool", ErrInvalidRule, r.PrizeKind)
	}
	return r.Window.Validate()
}

// Qualifies reports whether actionCount meets the rule threshold.
func (r GiveAwayRule) Qualifies(actionCount int) bool {
	return r.MinimumCount > 0 && actionCount >= r.MinimumCount
}

// Multiplier is how many rewards actionCount funds: floor(count/minimum)
// for repeatable rules, 1 otherwise.
func (r GiveAwayRule) Multiplier(actionCount int) int {
	if !r.Qualifies(actionCount) {
		return 0
	}
	if !r.CanRepeat {
		return 1
	}
	return actionCount / r.MinimumCount
}

// ExtendedEnd returns the campaign end date after activation: the rule
// window end when it runs past campaignEnd, campaignEnd otherwise.
func (r GiveAwayRule) ExtendedEnd(campaignEnd time.Time) (time.Time, bool) {
	if r.Window.EndsAfter(campaignEnd) {
		return *r.Window.End, true
	}
	return campaignEnd, false
}
