package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"promo-scheduler/internal/core/domain"
	"promo-scheduler/internal/core/port"
)

// Evaluation is the outcome of evaluating one campaign's audience.
// Qualifiers are ordered by ascending user id so scarcity truncation is
// reproducible.
type Evaluation struct {
	Qualifiers []domain.Qualifier
	// Failed counts users whose activity could not be read this cycle.
	Failed int
}

// Evaluator computes which audience members qualify for a giveaway rule
// and their reward multiplier. It works on a fully assembled
// CampaignWithRule and only reads activity and the winner ledger.
type Evaluator struct {
	activity port.ActivityReader
	rewards  port.RewardRepository
	logger   *slog.Logger
}

// NewEvaluator creates an eligibility evaluator.
func NewEvaluator(activity port.ActivityReader, rewards port.RewardRepository, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{activity: activity, rewards: rewards, logger: logger}
}

// Evaluate returns the ordered qualifiers for cw. For non-repeatable rules
// users already in the winner ledger are dropped before any activity is
// read. A failure to read one user's activity skips that user only.
func (e *Evaluator) Evaluate(ctx context.Context, cw domain.CampaignWithRule) (Evaluation, error) {
	if cw.Rule == nil {
		return Evaluation{}, fmt.Errorf("%w: campaign %d has no rule", domain.ErrInvalidRule, cw.Campaign.ID)
	}
	rule := *cw.Rule
	candidates := orderedAudience(cw.Audience)

	if !rule.CanRepeat && len(candidates) > 0 {
		winners, err := e.rewards.ListWinnerUserIDs(ctx, cw.Campaign.ID)
		if err != nil {
			return Evaluation{}, fmt.Errorf("list winners: %w", err)
		}
		if len(winners) > 0 {
			won := make(map[string]struct{}, len(winners))
			for _, id := range winners {
				won[id] = struct{}{}
			}
			candidates = slices.DeleteFunc(candidates, func(m domain.Member) bool {
				_, ok := won[m.UserID]
				return ok
			})
		}
	}

	var out Evaluation
	for _, m := range candidates {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		q, ok, err := e.evaluateMember(ctx, cw.Campaign.ID, rule, m)
		if err != nil {
			out.Failed++
			e.logger.Warn("evaluate user",
				slog.Int64("campaign_id", cw.Campaign.ID),
				slog.String("user_id", m.UserID),
				slog.Any("error", err))
			continue
		}
		if ok {
			out.Qualifiers = append(out.Qualifiers, q)
		}
	}
	return out, nil
}

func (e *Evaluator) evaluateMember(ctx context.Context, campaignID int64, rule domain.GiveAwayRule, m domain.Member) (domain.Qualifier, bool, error) {
	if !rule.CanRepeat {
		count, err := e.activity.CountQualifyingEvents(ctx, m.UserID, rule.ActionID(), rule.Window)
		if err != nil {
			return domain.Qualifier{}, false, fmt.Errorf("count events: %w", err)
		}
		if !rule.Qualifies(count) {
			return domain.Qualifier{}, false, nil
		}
		return domain.Qualifier{Member: m, ActionCount: count, Multiplier: 1}, true, nil
	}

	// Repeatable: only events that have not yet funded an award count, and
	// the oldest ones are consumed first.
	events, err := e.activity.ListQualifyingEvents(ctx, m.UserID, rule.ActionID(), rule.Window)
	if err != nil {
		return domain.Qualifier{}, false, fmt.Errorf("list events: %w", err)
	}
	if len(events) < rule.MinimumCount {
		return domain.Qualifier{}, false, nil
	}
	ids := make([]string, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	consumed, err := e.rewards.ConsumedEventIDs(ctx, campaignID, ids)
	if err != nil {
		return domain.Qualifier{}, false, fmt.Errorf("consumed events: %w", err)
	}
	if len(consumed) > 0 {
		used := make(map[string]struct{}, len(consumed))
		for _, id := range consumed {
			used[id] = struct{}{}
		}
		ids = slices.DeleteFunc(ids, func(id string) bool {
			_, ok := used[id]
			return ok
		})
	}
	mult := rule.Multiplier(len(ids))
	if mult == 0 {
		return domain.Qualifier{}, false, nil
	}
	return domain.Qualifier{
		Member:      m,
		ActionCount: len(ids),
		Multiplier:  mult,
		EventIDs:    slices.Clone(ids[:mult*rule.MinimumCount]),
	}, true, nil
}

// orderedAudience returns a copy of members sorted by user id with
// duplicates and blank ids removed.
func orderedAudience(members []domain.Member) []domain.Member {
	out := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if strings.TrimSpace(m.UserID) != "" {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Member) int {
		return strings.Compare(a.UserID, b.UserID)
	})
	return slices.CompactFunc(out, func(a, b domain.Member) bool {
		return a.UserID == b.UserID
	})
}
