package domain

import "errors"

var (
	// ErrTransientExternal marks a timeout or transport failure talking to a
	// partner. No state was mutated and the work is retried next cycle.
	ErrTransientExternal = errors.New("transient external error")

	// ErrInvalidRule marks a rule configuration that will not fix itself.
	// The rule is skipped and surfaced for operator attention.
	ErrInvalidRule = errors.New("invalid rule configuration")

	// ErrInventoryExhausted is not a failure. It ends a cycle's allocation
	// with the remaining qualifiers deferred.
	ErrInventoryExhausted = errors.New("inventory exhausted")

	// ErrDuplicateWinner means the winner ledger already holds the award.
	ErrDuplicateWinner = errors.New("duplicate winner")

	// ErrInventoryConflict means a guarded inventory increment would have
	// pushed distributed past total, usually because another run got there
	// first.
	ErrInventoryConflict = errors.New("inventory changed concurrently")

	// ErrIllegalTransition means a status change would move a campaign
	// backwards or out of a terminal state.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrStaleStatus means a guarded status update found the campaign no
	// longer in the expected state.
	ErrStaleStatus = errors.New("campaign status changed concurrently")

	// ErrInsufficientCoins means the running coin balance cannot cover an
	// award.
	ErrInsufficientCoins = errors.New("insufficient coins")
)
