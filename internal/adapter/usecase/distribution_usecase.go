package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"promo-scheduler/internal/core/domain"
	"promo-scheduler/internal/core/port"
)

// DistributionConfig tunes a DistributionUseCase.
type DistributionConfig struct {
	// Concurrency is how many campaigns are processed at once.
	Concurrency int
	// CallTimeout bounds every partner call.
	CallTimeout time.Duration
	// CoinReason is the ledger transaction reason for coin awards.
	CoinReason string
}

func (c DistributionConfig) normalized() DistributionConfig {
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 10 * time.Second
	}
	if strings.TrimSpace(c.CoinReason) == "" {
		c.CoinReason = "giveaway_reward"
	}
	return c
}

// DistributionUseCase allocates finite rewards to qualifying users of
// running giveaways. It implements port.DistributionUseCase.
//
// Campaigns share no mutable state and run concurrently. Within a campaign
// token, merchandise and logo prizes go out as batches; coin prizes are paid
// one user at a time against a running balance, which is the only guard
// against over-allocation within a cycle, so that loop must stay sequential.
type DistributionUseCase struct {
	campaigns port.CampaignRepository
	rewards   port.RewardRepository
	segments  port.SegmentDirectory
	evaluator *Evaluator
	tokens    port.TokenDistributor
	coins     port.CoinLedger
	notifier  port.Notifier
	cfg       DistributionConfig
	logger    *slog.Logger
}

// DistributionDeps groups the collaborators of a DistributionUseCase.
type DistributionDeps struct {
	Campaigns port.CampaignRepository
	Rewards   port.RewardRepository
	Segments  port.SegmentDirectory
	Activity  port.ActivityReader
	Tokens    port.TokenDistributor
	Coins     port.CoinLedger
	Notifier  port.Notifier
}

// NewDistributionUseCase wires a distribution engine.
func NewDistributionUseCase(deps DistributionDeps, cfg DistributionConfig, logger *slog.Logger) *DistributionUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DistributionUseCase{
		campaigns: deps.Campaigns,
		rewards:   deps.Rewards,
		segments:  deps.Segments,
		evaluator: NewEvaluator(deps.Activity, deps.Rewards, logger),
		tokens:    deps.Tokens,
		coins:     deps.Coins,
		notifier:  deps.Notifier,
		cfg:       cfg.normalized(),
		logger:    logger,
	}
}

// Distribute runs one cycle over every in-progress giveaway.
func (u *DistributionUseCase) Distribute(ctx context.Context, now time.Time) (domain.DistributionReport, error) {
	var total domain.DistributionReport

	active, err := u.campaigns.ListActiveGiveaways(ctx)
	if err != nil {
		return total, fmt.Errorf("list active giveaways: %w", err)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.Concurrency)
	for _, cw := range active {
		g.Go(func() error {
			rep := u.distributeCampaign(gctx, cw, now)
			mu.Lock()
			total.Add(rep)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return total, ctx.Err()
}

func (u *DistributionUseCase) distributeCampaign(ctx context.Context, cw domain.CampaignWithRule, now time.Time) domain.DistributionReport {
	rep := domain.DistributionReport{CampaignsProcessed: 1}
	log := u.logger.With(slog.Int64("campaign_id", cw.Campaign.ID))

	cw, err := u.assemble(ctx, cw)
	if errors.Is(err, domain.ErrInvalidRule) {
		rep.InvalidRules++
		log.Error("skipping giveaway", slog.Any("error", err))
		return rep
	}
	if err != nil {
		rep.Failures++
		log.Error("assemble giveaway", slog.Any("error", err))
		return rep
	}

	eval, err := u.evaluator.Evaluate(ctx, cw)
	rep.Failures += eval.Failed
	if err != nil {
		rep.Failures++
		log.Error("evaluate giveaway", slog.Any("error", err))
		return rep
	}
	if len(eval.Qualifiers) == 0 {
		log.Debug("no qualifiers")
		return rep
	}

	if cw.Rule.PrizeKind == domain.PrizeCoin {
		u.distributeCoins(ctx, cw, eval.Qualifiers, now, &rep, log)
	} else {
		u.distributeBatch(ctx, cw, eval.Qualifiers, now, &rep, log)
	}
	return rep
}

// assemble validates the aggregate and resolves the audience so the
// evaluator never performs lazy lookups.
func (u *DistributionUseCase) assemble(ctx context.Context, cw domain.CampaignWithRule) (domain.CampaignWithRule, error) {
	if cw.Rule == nil {
		return cw, fmt.Errorf("%w: giveaway has no rule", domain.ErrInvalidRule)
	}
	if err := cw.Rule.Validate(); err != nil {
		return cw, err
	}
	if cw.Rule.PrizeKind.Finite() && cw.Inventory == nil {
		return cw, fmt.Errorf("%w: inventory %d not found", domain.ErrInvalidRule, *cw.Rule.InventoryID)
	}
	if cw.Inventory != nil && cw.Inventory.PrizeKind != cw.Rule.PrizeKind {
		return cw, fmt.Errorf("%w: inventory %d holds %s, rule pays %s",
			domain.ErrInvalidRule, cw.Inventory.ID, cw.Inventory.PrizeKind, cw.Rule.PrizeKind)
	}
	if cw.Rule.PrizeKind == domain.PrizeCoin && !cw.Campaign.CoinUsageEnabled {
		return cw, fmt.Errorf("%w: coin usage disabled", domain.ErrInvalidRule)
	}
	members, err := u.segments.ResolveMembers(ctx, cw.Campaign.SegmentIDs, cw.Rule.OrgID)
	if err != nil {
		return cw, fmt.Errorf("resolve audience: %w", err)
	}
	cw.Audience = members
	return cw, nil
}

// allocate walks qualifiers in order and grants each its full amount while
// the pool covers it. The first qualifier that does not fit and everyone
// after it are deferred to the next cycle, and the returned error wraps
// domain.ErrInventoryExhausted. inv == nil means unlimited.
func allocate(qualifiers []domain.Qualifier, rule domain.GiveAwayRule, inv *domain.RewardInventory) ([]domain.Award, int, error) {
	available := int64(math.MaxInt64)
	if inv != nil {
		available = inv.Available()
	}
	awards := make([]domain.Award, 0, len(qualifiers))
	for i, q := range qualifiers {
		amount := rule.QuantityPerGift * int64(q.Multiplier)
		if amount > available {
			deferred := len(qualifiers) - i
			return awards, deferred, fmt.Errorf("%w: %d left, %s needs %d, %d deferred",
				domain.ErrInventoryExhausted, available, q.Member.UserID, amount, deferred)
		}
		available -= amount
		awards = append(awards, domain.Award{UserID: q.Member.UserID, Quantity: amount, EventIDs: q.EventIDs})
	}
	return awards, 0, nil
}

// groupByQuantity splits awards into runs of equal per-winner quantity,
// keeping first-seen order, because one partner request carries a single
// quantity_per_winner.
func groupByQuantity(awards []domain.Award) [][]domain.Award {
	var order []int64
	groups := make(map[int64][]domain.Award)
	for _, a := range awards {
		if _, ok := groups[a.Quantity]; !ok {
			order = append(order, a.Quantity)
		}
		groups[a.Quantity] = append(groups[a.Quantity], a)
	}
	out := make([][]domain.Award, 0, len(order))
	for _, q := range order {
		out = append(out, groups[q])
	}
	return out
}

func (u *DistributionUseCase) distributeBatch(ctx context.Context, cw domain.CampaignWithRule, qualifiers []domain.Qualifier, now time.Time, rep *domain.DistributionReport, log *slog.Logger) {
	rule := *cw.Rule
	awards, deferred, err := allocate(qualifiers, rule, cw.Inventory)
	rep.UsersDeferred += deferred
	if errors.Is(err, domain.ErrInventoryExhausted) {
		log.Info("deferring qualifiers",
			slog.Int("awarded", len(awards)),
			slog.Int("deferred", deferred),
			slog.Any("reason", err))
	}

	for _, group := range groupByQuantity(awards) {
		if ctx.Err() != nil {
			rep.UsersDeferred += len(group)
			continue
		}
		batch := domain.BatchAward{
			CampaignID:  cw.Campaign.ID,
			RuleID:      rule.ID,
			InventoryID: rule.InventoryID,
			PrizeKind:   rule.PrizeKind,
			Repeatable:  rule.CanRepeat,
			AwardedAt:   now,
			Awards:      group,
		}
		ref, err := u.settleBatch(ctx, cw, batch)
		if err != nil {
			// Nothing was written; the same users are evaluated again next cycle.
			rep.Failures++
			log.Warn("batch distribution failed",
				slog.Int("users", len(group)),
				slog.Bool("transient", errors.Is(err, domain.ErrTransientExternal)),
				slog.Any("error", err))
			continue
		}
		batch.Reference = ref

		res, err := u.rewards.CommitBatch(ctx, batch)
		if err != nil {
			rep.Failures++
			log.Error("commit batch after distribution",
				slog.String("reference", ref),
				slog.Int("users", len(group)),
				slog.Any("error", err))
			continue
		}
		for _, id := range res.Duplicates {
			log.Info("winner already recorded, skipping", slog.String("user_id", id))
		}
		rep.DuplicatesSkipped += len(res.Duplicates)
		rep.UsersRewarded += len(res.Inserted)
		rep.Credit(rule.PrizeKind, res.Quantity)
		log.Info("batch distributed",
			slog.String("prize", string(rule.PrizeKind)),
			slog.String("reference", ref),
			slog.Int("winners", len(res.Inserted)),
			slog.Int64("quantity", res.Quantity))

		perWinner := strconv.FormatInt(group[0].Quantity, 10)
		for _, id := range res.Inserted {
			u.notifyWinner(ctx, cw.Campaign.ID, id, rule.PrizeKind, perWinner, ref)
		}
	}
}

// settleBatch performs the external side of a batch. Only token prizes call
// a partner; merchandise and logos are fulfilled offline and get a local
// reference.
func (u *DistributionUseCase) settleBatch(ctx context.Context, cw domain.CampaignWithRule, batch domain.BatchAward) (string, error) {
	if batch.PrizeKind != domain.PrizeToken {
		return uuid.NewString(), nil
	}
	userIDs := make([]string, len(batch.Awards))
	for i, a := range batch.Awards {
		userIDs[i] = a.UserID
	}
	req := domain.TokenDistributionRequest{
		PoolID:            cw.Inventory.ExternalRef,
		CampaignID:        cw.Campaign.ID,
		ValidFrom:         cw.Campaign.StartDate,
		ValidUntil:        cw.Campaign.EndDate,
		QuantityPerWinner: batch.Awards[0].Quantity,
		UserIDs:           userIDs,
		IdempotencyKey:    batchKey(cw.Campaign.ID, batch.Awards),
	}
	cctx, cancel := context.WithTimeout(ctx, u.cfg.CallTimeout)
	defer cancel()
	return u.tokens.Distribute(cctx, req)
}

// batchKey derives a stable key from the campaign and the exact awards, so
// a retried identical batch carries the same key.
func batchKey(campaignID int64, awards []domain.Award) string {
	parts := make([]string, 0, len(awards)+1)
	parts = append(parts, strconv.FormatInt(campaignID, 10))
	for _, a := range awards {
		parts = append(parts, a.UserID+":"+strconv.FormatInt(a.Quantity, 10)+":"+strings.Join(a.EventIDs, ","))
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(parts, "|"))).String()
}

func (u *DistributionUseCase) distributeCoins(ctx context.Context, cw domain.CampaignWithRule, qualifiers []domain.Qualifier, now time.Time, rep *domain.DistributionReport, log *slog.Logger) {
	rule := *cw.Rule
	source := cw.Inventory.ExternalRef

	bctx, cancel := context.WithTimeout(ctx, u.cfg.CallTimeout)
	balance, err := u.coins.GetBalance(bctx, source)
	cancel()
	if err != nil {
		rep.Failures++
		log.Warn("read coin balance", slog.String("source_id", source), slog.Any("error", err))
		return
	}
	availableCoins := min(balance, cw.Inventory.Available())

	for i, q := range qualifiers {
		if ctx.Err() != nil {
			rep.UsersDeferred += len(qualifiers) - i
			return
		}
		amount := rule.QuantityPerGift * int64(q.Multiplier)
		userLog := log.With(slog.String("user_id", q.Member.UserID), slog.Int64("amount", amount))
		if availableCoins < amount {
			rep.UsersDeferred++
			userLog.Info("coin award deferred", slog.Any("reason", domain.ErrInventoryExhausted),
				slog.Int64("available", availableCoins))
			continue
		}

		award := domain.Award{UserID: q.Member.UserID, Quantity: amount, EventIDs: q.EventIDs}
		batch := domain.BatchAward{
			CampaignID:  cw.Campaign.ID,
			RuleID:      rule.ID,
			InventoryID: rule.InventoryID,
			PrizeKind:   domain.PrizeCoin,
			Repeatable:  rule.CanRepeat,
			AwardedAt:   now,
			Awards:      []domain.Award{award},
		}
		var txID string
		err := u.rewards.AwardWithSettlement(ctx, batch, func(sctx context.Context) (string, error) {
			cctx, cancel := context.WithTimeout(sctx, u.cfg.CallTimeout)
			defer cancel()
			id, err := u.coins.CreateTransaction(cctx, domain.CoinTransaction{
				SourceID:  source,
				UserID:    award.UserID,
				Amount:    amount,
				Reason:    u.cfg.CoinReason,
				Reference: batchKey(cw.Campaign.ID, batch.Awards),
			})
			txID = id
			return id, err
		})
		switch {
		case errors.Is(err, domain.ErrDuplicateWinner):
			rep.DuplicatesSkipped++
			userLog.Info("winner already recorded, skipping")
		case errors.Is(err, domain.ErrInventoryConflict), errors.Is(err, domain.ErrInsufficientCoins):
			rep.UsersDeferred++
			// the supply is below amount now; smaller awards may still fit
			availableCoins = min(availableCoins, amount-1)
			userLog.Info("coin supply ran out, deferring", slog.Any("error", err))
		case err != nil:
			rep.Failures++
			userLog.Warn("coin award failed",
				slog.Bool("transient", errors.Is(err, domain.ErrTransientExternal)),
				slog.Any("error", err))
		default:
			availableCoins -= amount
			rep.UsersRewarded++
			rep.Credit(domain.PrizeCoin, amount)
			userLog.Info("coins awarded", slog.String("transaction_id", txID))
			u.notifyWinner(ctx, cw.Campaign.ID, award.UserID, domain.PrizeCoin, strconv.FormatInt(amount, 10), txID)
		}
	}
}

func (u *DistributionUseCase) notifyWinner(ctx context.Context, campaignID int64, userID string, prize domain.PrizeKind, quantity, reference string) {
	if u.notifier == nil {
		return
	}
	nctx, cancel := context.WithTimeout(ctx, u.cfg.CallTimeout)
	defer cancel()
	err := u.notifier.Notify(nctx, domain.Notification{
		UserID:   userID,
		Template: domain.TemplateRewardAwarded,
		Data: map[string]string{
			"campaign_id": strconv.FormatInt(campaignID, 10),
			"prize":       string(prize),
			"quantity":    quantity,
			"reference":   reference,
		},
	})
	if err != nil {
		u.logger.Warn("winner notification failed",
			slog.Int64("campaign_id", campaignID),
			slog.String("user_id", userID),
			slog.Any("error", err))
	}
}
