package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-scheduler/internal/core/domain"
	"promo-scheduler/internal/core/port/mocks"
)

type distributionFixture struct {
	campaigns *mocks.MockCampaignRepository
	segments  *mocks.MockSegmentDirectory
	activity  *mocks.MockActivityReader
	tokens    *mocks.MockTokenDistributor
	coins     *mocks.MockCoinLedger
	notifier  *mocks.MockNotifier
	rewards   *memRewards
}

func newDistributionFixture(t *testing.T, invs ...domain.RewardInventory) *distributionFixture {
	f := &distributionFixture{
		campaigns: mocks.NewMockCampaignRepository(t),
		segments:  mocks.NewMockSegmentDirectory(t),
		activity:  mocks.NewMockActivityReader(t),
		tokens:    mocks.NewMockTokenDistributor(t),
		coins:     mocks.NewMockCoinLedger(t),
		notifier:  mocks.NewMockNotifier(t),
		rewards:   newMemRewards(invs...),
	}
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func (f *distributionFixture) useCase() *DistributionUseCase {
	return NewDistributionUseCase(DistributionDeps{
		Campaigns: f.campaigns,
		Rewards:   f.rewards,
		Segments:  f.segments,
		Activity:  f.activity,
		Tokens:    f.tokens,
		Coins:     f.coins,
		Notifier:  f.notifier,
	}, DistributionConfig{}, quietLogger())
}

// everyoneQualifies makes every audience member report n qualifying events.
func (f *distributionFixture) everyoneQualifies(n int) {
	f.activity.EXPECT().CountQualifyingEvents(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(n, nil).Maybe()
}

func userIDs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("u%d", i+1)
	}
	return out
}

func activeGiveaway(id int64, rule *domain.GiveAwayRule, inv *domain.RewardInventory) domain.CampaignWithRule {
	cw := giveaway(id, domain.StatusInProgress, tNow.Add(-24*time.Hour), tNow.Add(24*time.Hour), rule)
	cw.Campaign.CoinUsageEnabled = true
	cw.Campaign.SegmentIDs = []int64{100}
	if inv != nil {
		cp := *inv
		cw.Inventory = &cp
	}
	return cw
}

// TestDistributeTokenScarcity: pool 100 with 55 distributed, 10 per gift,
// six qualifiers. Four fit, two are deferred. distributed counts units, so it
// ends at 55 + 4*10 = 95; 65 would mean only one gift was charged.
func TestDistributeTokenScarcity(t *testing.T) {
	pool := domain.RewardInventory{ID: 1, PrizeKind: domain.PrizeToken, ExternalRef: "pool-a", Total: 100, Distributed: 55}
	f := newDistributionFixture(t, pool)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).
		Return([]domain.CampaignWithRule{activeGiveaway(1, shareRule(3, false), &pool)}, nil)
	f.segments.EXPECT().ResolveMembers(mock.Anything, []int64{100}, (*int64)(nil)).Return(members(userIDs(6)...), nil)
	f.everyoneQualifies(3)

	var sent domain.TokenDistributionRequest
	f.tokens.EXPECT().Distribute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req domain.TokenDistributionRequest) (string, error) {
			sent = req
			return "dist-1", nil
		}).Once()

	report, err := f.useCase().Distribute(context.Background(), tNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"u1", "u2", "u3", "u4"}, sent.UserIDs)
	assert.Equal(t, int64(10), sent.QuantityPerWinner)
	assert.Equal(t, "pool-a", sent.PoolID)
	assert.NotEmpty(t, sent.IdempotencyKey)

	assert.Equal(t, 4, report.UsersRewarded)
	assert.Equal(t, 2, report.UsersDeferred)
	assert.Equal(t, int64(40), report.Distributed[domain.PrizeToken])

	inv := f.rewards.inventory(1)
	assert.Equal(t, int64(95), inv.Distributed)
	assert.LessOrEqual(t, inv.Distributed, inv.Total)
	for _, w := range f.rewards.winnersOf(1) {
		assert.Equal(t, "dist-1", w.DistributionReference)
	}
}

func TestDistributeTokenFailureMutatesNothing(t *testing.T) {
	pool := domain.RewardInventory{ID: 1, PrizeKind: domain.PrizeToken, ExternalRef: "pool-a", Total: 100}
	f := newDistributionFixture(t, pool)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).
		Return([]domain.CampaignWithRule{activeGiveaway(1, shareRule(3, false), &pool)}, nil)
	f.segments.EXPECT().ResolveMembers(mock.Anything, mock.Anything, mock.Anything).Return(members("u1", "u2"), nil)
	f.everyoneQualifies(5)
	f.tokens.EXPECT().Distribute(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: context deadline exceeded", domain.ErrTransientExternal))

	report, err := f.useCase().Distribute(context.Background(), tNow)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failures)
	assert.Zero(t, report.UsersRewarded)
	assert.Zero(t, f.rewards.inventory(1).Distributed)
	assert.Empty(t, f.rewards.winnersOf(1))
}

// TestDistributeCoinsSequentially: balance 120, two users owed 100 each.
// The first is paid, the second deferred, and the next cycle retries only
// the second.
func TestDistributeCoinsSequentially(t *testing.T) {
	source := domain.RewardInventory{ID: 2, PrizeKind: domain.PrizeCoin, ExternalRef: "src-1", Total: 10_000}
	rule := shareRule(1, false)
	rule.PrizeKind = domain.PrizeCoin
	rule.QuantityPerGift = 100
	rule.InventoryID = ptr(int64(2))

	f := newDistributionFixture(t, source)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).RunAndReturn(func(context.Context) ([]domain.CampaignWithRule, error) {
		inv := f.rewards.inventory(2)
		return []domain.CampaignWithRule{activeGiveaway(7, rule, &inv)}, nil
	})
	f.segments.EXPECT().ResolveMembers(mock.Anything, mock.Anything, mock.Anything).Return(members("u1", "u2"), nil)
	f.everyoneQualifies(1)

	var paid []string
	f.coins.EXPECT().GetBalance(mock.Anything, "src-1").Return(int64(120), nil).Once()
	f.coins.EXPECT().CreateTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tx domain.CoinTransaction) (string, error) {
			assert.Equal(t, int64(100), tx.Amount)
			assert.Equal(t, "giveaway_reward", tx.Reason)
			paid = append(paid, tx.UserID)
			return "tx-" + tx.UserID, nil
		})

	uc := f.useCase()
	report, err := uc.Distribute(context.Background(), tNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, paid)
	assert.Equal(t, 1, report.UsersRewarded)
	assert.Equal(t, 1, report.UsersDeferred)
	assert.Equal(t, int64(100), report.Distributed[domain.PrizeCoin])

	winners := f.rewards.winnersOf(7)
	require.Len(t, winners, 1)
	assert.Equal(t, "u1", winners[0].UserID)
	assert.Equal(t, "tx-u1", winners[0].DistributionReference)

	// next cycle: the ledger was topped up
	f.coins.EXPECT().GetBalance(mock.Anything, "src-1").Return(int64(220), nil).Once()
	report, err = uc.Distribute(context.Background(), tNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, paid)
	assert.Equal(t, 1, report.UsersRewarded)
	assert.Zero(t, report.UsersDeferred)
	assert.Len(t, f.rewards.winnersOf(7), 2)
	assert.Equal(t, int64(200), f.rewards.inventory(2).Distributed)
}

func TestDistributeCoinsContinueAfterUserFailure(t *testing.T) {
	source := domain.RewardInventory{ID: 2, PrizeKind: domain.PrizeCoin, ExternalRef: "src-1", Total: 1000}
	rule := shareRule(1, false)
	rule.PrizeKind = domain.PrizeCoin
	rule.QuantityPerGift = 10
	rule.InventoryID = ptr(int64(2))

	f := newDistributionFixture(t, source)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).
		Return([]domain.CampaignWithRule{activeGiveaway(7, rule, &source)}, nil)
	f.segments.EXPECT().ResolveMembers(mock.Anything, mock.Anything, mock.Anything).Return(members("u1", "u2", "u3"), nil)
	f.everyoneQualifies(1)
	f.coins.EXPECT().GetBalance(mock.Anything, "src-1").Return(int64(1000), nil)
	f.coins.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(tx domain.CoinTransaction) bool { return tx.UserID == "u2" })).
		Return("", fmt.Errorf("%w: connection reset", domain.ErrTransientExternal))
	f.coins.EXPECT().CreateTransaction(mock.Anything, mock.Anything).Return("tx", nil)

	report, err := f.useCase().Distribute(context.Background(), tNow)
	require.NoError(t, err)
	assert.Equal(t, 2, report.UsersRewarded)
	assert.Equal(t, 1, report.Failures)
	assert.Equal(t, int64(20), f.rewards.inventory(2).Distributed)

	var got []string
	for _, w := range f.rewards.winnersOf(7) {
		got = append(got, w.UserID)
	}
	assert.Equal(t, []string{"u1", "u3"}, got)
}

// TestDistributeSkipsDuplicateWinners simulates an overlapping run that
// records a winner between evaluation and commit.
func TestDistributeSkipsDuplicateWinners(t *testing.T) {
	pool := domain.RewardInventory{ID: 1, PrizeKind: domain.PrizeToken, ExternalRef: "pool-a", Total: 100}
	f := newDistributionFixture(t, pool)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).
		Return([]domain.CampaignWithRule{activeGiveaway(1, shareRule(1, false), &pool)}, nil)
	f.segments.EXPECT().ResolveMembers(mock.Anything, mock.Anything, mock.Anything).Return(members("u1", "u2", "u3"), nil)
	f.everyoneQualifies(1)
	f.tokens.EXPECT().Distribute(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.TokenDistributionRequest) (string, error) {
			f.rewards.addWinner(1, "u2", 10)
			return "dist-2", nil
		})

	report, err := f.useCase().Distribute(context.Background(), tNow)
	require.NoError(t, err)
	assert.Equal(t, 2, report.UsersRewarded)
	assert.Equal(t, 1, report.DuplicatesSkipped)
	assert.Equal(t, int64(20), f.rewards.inventory(1).Distributed)
	// the duplicate is not charged, so the report matches the pool
	assert.Equal(t, int64(20), report.Distributed[domain.PrizeToken])

	count := map[string]int{}
	for _, w := range f.rewards.winnersOf(1) {
		count[w.UserID]++
	}
	assert.Equal(t, map[string]int{"u1": 1, "u2": 1, "u3": 1}, count)
}

// TestDistributeOverlappingRuns runs two cycles concurrently against the
// same ledger. Uniqueness and the inventory guard keep the outcome
// identical to a single run.
func TestDistributeOverlappingRuns(t *testing.T) {
	pool := domain.RewardInventory{ID: 1, PrizeKind: domain.PrizeToken, ExternalRef: "pool-a", Total: 100, Distributed: 55}
	f := newDistributionFixture(t, pool)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).
		Return([]domain.CampaignWithRule{activeGiveaway(1, shareRule(1, false), &pool)}, nil)
	f.segments.EXPECT().ResolveMembers(mock.Anything, mock.Anything, mock.Anything).Return(members(userIDs(6)...), nil)
	f.everyoneQualifies(1)
	f.tokens.EXPECT().Distribute(mock.Anything, mock.Anything).Return("dist", nil)

	uc := f.useCase()
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Distribute(context.Background(), tNow)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	inv := f.rewards.inventory(1)
	assert.LessOrEqual(t, inv.Distributed, inv.Total)
	assert.Equal(t, int64(95), inv.Distributed)

	seen := map[string]bool{}
	for _, w := range f.rewards.winnersOf(1) {
		assert.False(t, seen[w.UserID], "duplicate winner %s", w.UserID)
		seen[w.UserID] = true
	}
	assert.Len(t, seen, 4)
}

func TestDistributeSkipsInvalidRules(t *testing.T) {
	broken := shareRule(3, false)
	broken.ConfigError = "unrecognized objective"

	coinRule := shareRule(1, false)
	coinRule.PrizeKind = domain.PrizeCoin
	coinRule.InventoryID = ptr(int64(2))
	coinCampaign := activeGiveaway(2, coinRule, &domain.RewardInventory{ID: 2, PrizeKind: domain.PrizeCoin, Total: 10})
	coinCampaign.Campaign.CoinUsageEnabled = false

	missingPool := activeGiveaway(3, shareRule(1, false), nil)

	f := newDistributionFixture(t)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).Return([]domain.CampaignWithRule{
		activeGiveaway(1, broken, &domain.RewardInventory{ID: 1, PrizeKind: domain.PrizeToken, Total: 10}),
		coinCampaign,
		missingPool,
	}, nil)

	report, err := f.useCase().Distribute(context.Background(), tNow)
	require.NoError(t, err)
	assert.Equal(t, 3, report.CampaignsProcessed)
	assert.Equal(t, 3, report.InvalidRules)
	assert.Zero(t, report.Failures)
}

func TestDistributeMerchandiseAndLogo(t *testing.T) {
	merchPool := domain.RewardInventory{ID: 3, PrizeKind: domain.PrizeMerchandise, ExternalRef: "hoodies", Total: 2}
	merch := shareRule(1, false)
	merch.PrizeKind = domain.PrizeMerchandise
	merch.QuantityPerGift = 1
	merch.InventoryID = ptr(int64(3))

	logo := shareRule(1, false)
	logo.PrizeKind = domain.PrizeLogo
	logo.InventoryID = nil

	f := newDistributionFixture(t, merchPool)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).Return([]domain.CampaignWithRule{
		activeGiveaway(1, merch, &merchPool),
		activeGiveaway(2, logo, nil),
	}, nil)
	f.segments.EXPECT().ResolveMembers(mock.Anything, mock.Anything, mock.Anything).Return(members("u1", "u2", "u3"), nil)
	f.everyoneQualifies(1)

	report, err := f.useCase().Distribute(context.Background(), tNow)
	require.NoError(t, err)
	assert.Equal(t, 5, report.UsersRewarded)
	assert.Equal(t, 1, report.UsersDeferred)
	assert.Equal(t, int64(2), report.Distributed[domain.PrizeMerchandise])
	assert.Equal(t, int64(30), report.Distributed[domain.PrizeLogo])
	assert.Equal(t, int64(2), f.rewards.inventory(3).Distributed)
	assert.Len(t, f.rewards.winnersOf(2), 3)
	for _, w := range f.rewards.winnersOf(1) {
		assert.NotEmpty(t, w.DistributionReference)
	}
}

func TestDistributeListingFailure(t *testing.T) {
	f := newDistributionFixture(t)
	f.campaigns.EXPECT().ListActiveGiveaways(mock.Anything).Return(nil, errors.New("db down"))

	_, err := f.useCase().Distribute(context.Background(), tNow)
	require.Error(t, err)
}

func TestAllocate(t *testing.T) {
	rule := domain.GiveAwayRule{QuantityPerGift: 10}
	qualifiers := []domain.Qualifier{
		{Member: domain.Member{UserID: "a"}, Multiplier: 1},
		{Member: domain.Member{UserID: "b"}, Multiplier: 3},
		{Member: domain.Member{UserID: "c"}, Multiplier: 1},
	}

	awards, deferred, err := allocate(qualifiers, rule, &domain.RewardInventory{Total: 100, Distributed: 70})
	require.ErrorIs(t, err, domain.ErrInventoryExhausted)
	require.Len(t, awards, 1)
	assert.Equal(t, "a", awards[0].UserID)
	// b does not fit, and c waits behind b
	assert.Equal(t, 2, deferred)

	awards, deferred, err = allocate(qualifiers, rule, nil)
	require.NoError(t, err)
	assert.Len(t, awards, 3)
	assert.Zero(t, deferred)
	assert.Equal(t, int64(30), awards[1].Quantity)
}

func TestGroupByQuantity(t *testing.T) {
	groups := groupByQuantity([]domain.Award{
		{UserID: "a", Quantity: 10},
		{UserID: "b", Quantity: 20},
		{UserID: "c", Quantity: 10},
	})
	require.Len(t, groups, 2)
	assert.Equal(t, []domain.Award{{UserID: "a", Quantity: 10}, {UserID: "c", Quantity: 10}}, groups[0])
	assert.Equal(t, []domain.Award{{UserID: "b", Quantity: 20}}, groups[1])
}

func TestBatchKeyIsStable(t *testing.T) {
	awards := []domain.Award{{UserID: "a", Quantity: 10}, {UserID: "b", Quantity: 10}}
	assert.Equal(t, batchKey(1, awards), batchKey(1, awards))
	assert.NotEqual(t, batchKey(1, awards), batchKey(2, awards))
	assert.NotEqual(t, batchKey(1, awards), batchKey(1, awards[:1]))
}
