package domain

// RewardInventory is a finite, durably tracked supply of a reward. For token
// and merchandise pools ExternalRef is the partner pool id; for coins it is
// the ledger source id. The invariant 0 <= Distributed <= Total is enforced
// by the persistence layer on every increment.
type RewardInventory struct {
	ID          int64
	PrizeKind   PrizeKind
	ExternalRef string
	Total       int64
	Distributed int64
}

// Available returns the remaining supply, never negative.
func (i RewardInventory) Available() int64 {
	if left := i.Total - i.Distributed; left > 0 {
		return left
	}
	return 0
}
