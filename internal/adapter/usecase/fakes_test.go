package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"promo-scheduler/internal/core/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memRewards is an in-memory RewardRepository that enforces the same
// guards as the database: one winner per user and campaign for
// non-repeatable awards, one consumption per event and campaign, and
// distributed <= total. Every call is atomic.
type memRewards struct {
	mu          sync.Mutex
	inventories map[int64]*domain.RewardInventory
	winners     []domain.WinnerRecord
	consumed    map[string]struct{}
}

func newMemRewards(invs ...domain.RewardInventory) *memRewards {
	m := &memRewards{
		inventories: make(map[int64]*domain.RewardInventory),
		consumed:    make(map[string]struct{}),
	}
	for _, inv := range invs {
		m.inventories[inv.ID] = &inv
	}
	return m
}

func consumptionKey(campaignID int64, eventID string) string {
	return fmt.Sprintf("%d/%s", campaignID, eventID)
}

func (m *memRewards) inventory(id int64) domain.RewardInventory {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.inventories[id]
}

func (m *memRewards) ListWinnerUserIDs(_ context.Context, campaignID int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for _, w := range m.winners {
		if w.CampaignID == campaignID && !slices.Contains(ids, w.UserID) {
			ids = append(ids, w.UserID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (m *memRewards) ConsumedEventIDs(_ context.Context, campaignID int64, eventIDs []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, id := range eventIDs {
		if _, ok := m.consumed[consumptionKey(campaignID, id)]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// addWinner records a winner directly, as a concurrent run would.
func (m *memRewards) addWinner(campaignID int64, userID string, qty int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.winners = append(m.winners, domain.WinnerRecord{
		UserID:     userID,
		CampaignID: campaignID,
		Quantity:   qty,
		AwardedAt:  time.Now(),
	})
}

func (m *memRewards) winnersOf(campaignID int64) []domain.WinnerRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.WinnerRecord
	for _, w := range m.winners {
		if w.CampaignID == campaignID {
			out = append(out, w)
		}
	}
	return out
}

// duplicate must be called with mu held.
func (m *memRewards) duplicate(batch domain.BatchAward, a domain.Award) bool {
	if !batch.Repeatable {
		for _, w := range m.winners {
			if w.CampaignID == batch.CampaignID && w.UserID == a.UserID && !w.Repeatable {
				return true
			}
		}
	}
	for _, id := range a.EventIDs {
		if _, ok := m.consumed[consumptionKey(batch.CampaignID, id)]; ok {
			return true
		}
	}
	return false
}

// record must be called with mu held.
func (m *memRewards) record(batch domain.BatchAward, a domain.Award, ref string) {
	m.winners = append(m.winners, domain.WinnerRecord{
		ID:                    int64(len(m.winners) + 1),
		UserID:                a.UserID,
		CampaignID:            batch.CampaignID,
		RuleID:                batch.RuleID,
		PrizeKind:             batch.PrizeKind,
		Quantity:              a.Quantity,
		Repeatable:            batch.Repeatable,
		AwardedAt:             batch.AwardedAt,
		DistributionReference: ref,
	})
	for _, id := range a.EventIDs {
		m.consumed[consumptionKey(batch.CampaignID, id)] = struct{}{}
	}
}

// fits must be called with mu held.
func (m *memRewards) fits(inventoryID *int64, n int64) bool {
	if inventoryID == nil || n == 0 {
		return true
	}
	inv, ok := m.inventories[*inventoryID]
	return ok && inv.Distributed+n <= inv.Total
}

func (m *memRewards) CommitBatch(_ context.Context, batch domain.BatchAward) (domain.CommitResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		res      domain.CommitResult
		accepted []domain.Award
	)
	for _, a := range batch.Awards {
		if m.duplicate(batch, a) {
			res.Duplicates = append(res.Duplicates, a.UserID)
			continue
		}
		accepted = append(accepted, a)
		res.Inserted = append(res.Inserted, a.UserID)
		res.Quantity += a.Quantity
	}
	if !m.fits(batch.InventoryID, res.Quantity) {
		return domain.CommitResult{}, domain.ErrInventoryConflict
	}
	for _, a := range accepted {
		m.record(batch, a, batch.Reference)
	}
	if batch.InventoryID != nil {
		m.inventories[*batch.InventoryID].Distributed += res.Quantity
	}
	return res, nil
}

func (m *memRewards) AwardWithSettlement(ctx context.Context, batch domain.BatchAward, settle func(ctx context.Context) (string, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a := batch.Awards[0]
	if m.duplicate(batch, a) {
		return domain.ErrDuplicateWinner
	}
	if !m.fits(batch.InventoryID, a.Quantity) {
		return domain.ErrInventoryConflict
	}
	ref, err := settle(ctx)
	if err != nil {
		return err
	}
	m.record(batch, a, ref)
	if batch.InventoryID != nil {
		m.inventories[*batch.InventoryID].Distributed += a.Quantity
	}
	return nil
}

// memCampaigns is an in-memory CampaignRepository with status-guarded
// updates.
type memCampaigns struct {
	mu        sync.Mutex
	campaigns map[int64]*domain.CampaignWithRule
}

func newMemCampaigns(cws ...domain.CampaignWithRule) *memCampaigns {
	m := &memCampaigns{campaigns: make(map[int64]*domain.CampaignWithRule)}
	for _, cw := range cws {
		m.campaigns[cw.Campaign.ID] = &cw
	}
	return m
}

func (m *memCampaigns) get(id int64) domain.CampaignWithRule {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.campaigns[id]
}

func (m *memCampaigns) sorted(keep func(domain.CampaignWithRule) bool) []domain.CampaignWithRule {
	var out []domain.CampaignWithRule
	for _, cw := range m.campaigns {
		if keep(*cw) {
			out = append(out, *cw)
		}
	}
	slices.SortFunc(out, func(a, b domain.CampaignWithRule) int { return int(a.Campaign.ID - b.Campaign.ID) })
	return out
}

func (m *memCampaigns) ListDueForStart(_ context.Context, now time.Time) ([]domain.CampaignWithRule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(cw domain.CampaignWithRule) bool { return cw.Campaign.DueForStart(now) }), nil
}

func (m *memCampaigns) Activate(_ context.Context, act domain.Activation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cw := m.campaigns[act.CampaignID]
	if cw == nil || cw.Campaign.Status != domain.StatusUpcoming {
		return domain.ErrStaleStatus
	}
	cw.Campaign.Status = domain.StatusInProgress
	cw.Campaign.CoinUsageEnabled = true
	cw.Campaign.EndDate = act.EndDate
	if act.RuleID != 0 && cw.Rule != nil {
		rule := *cw.Rule
		if act.Objective != nil {
			rule.Objective = act.Objective
		}
		if act.ConfigError != "" {
			rule.ConfigError = act.ConfigError
		}
		cw.Rule = &rule
	}
	return nil
}

func (m *memCampaigns) ListDueForCompletion(_ context.Context, now time.Time) ([]domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Campaign
	for _, cw := range m.sorted(func(cw domain.CampaignWithRule) bool { return cw.Campaign.DueForCompletion(now) }) {
		out = append(out, cw.Campaign)
	}
	return out, nil
}

func (m *memCampaigns) Complete(_ context.Context, campaignID int64, from domain.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cw := m.campaigns[campaignID]
	if cw == nil || cw.Campaign.Status != from {
		return domain.ErrStaleStatus
	}
	cw.Campaign.Status = domain.StatusCompleted
	return nil
}

func (m *memCampaigns) ListActiveGiveaways(_ context.Context) ([]domain.CampaignWithRule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(cw domain.CampaignWithRule) bool {
		return cw.Campaign.Status == domain.StatusInProgress && cw.Campaign.Kind == domain.KindGiveAway
	}), nil
}
