package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"promo-scheduler/internal/core/domain"
	"promo-scheduler/internal/core/port"
)

// LifecycleUseCase moves campaigns through their status states based on
// wall-clock time. It implements port.LifecycleUseCase.
type LifecycleUseCase struct {
	repo     port.CampaignRepository
	notifier port.Notifier
	logger   *slog.Logger

	// notifyTimeout bounds each best-effort notification call.
	notifyTimeout time.Duration
}

// NewLifecycleUseCase creates a lifecycle controller. notifier may be nil,
// in which case status changes are not announced.
func NewLifecycleUseCase(repo port.CampaignRepository, notifier port.Notifier, logger *slog.Logger) *LifecycleUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LifecycleUseCase{
		repo:          repo,
		notifier:      notifier,
		logger:        logger,
		notifyTimeout: 5 * time.Second,
	}
}

// Advance starts due upcoming campaigns, then completes expired running and
// force-stopped campaigns. A listing failure in one phase does not prevent
// the other phase from running.
func (u *LifecycleUseCase) Advance(ctx context.Context, now time.Time) (domain.LifecycleReport, error) {
	var report domain.LifecycleReport

	startErr := u.startDue(ctx, now, &report)
	completeErr := u.completeDue(ctx, now, &report)

	return report, errors.Join(startErr, completeErr)
}

func (u *LifecycleUseCase) startDue(ctx context.Context, now time.Time, report *domain.LifecycleReport) error {
	due, err := u.repo.ListDueForStart(ctx, now)
	if err != nil {
		return fmt.Errorf("list campaigns due for start: %w", err)
	}
	for _, cw := range due {
		if err = ctx.Err(); err != nil {
			return err
		}
		if !cw.Campaign.DueForStart(now) {
			continue
		}
		change, err := u.start(ctx, cw, now)
		if errors.Is(err, domain.ErrStaleStatus) {
			u.logger.Debug("campaign already moved on", slog.Int64("campaign_id", cw.Campaign.ID))
			continue
		}
		if err != nil {
			report.Failures++
			u.logger.Error("start campaign", slog.Int64("campaign_id", cw.Campaign.ID), slog.Any("error", err))
			continue
		}
		report.Started++
		report.Changes = append(report.Changes, change)
		u.announce(ctx, change, domain.TemplateCampaignStarted)
	}
	return nil
}

// start activates one campaign. For giveaways it normalizes the rule
// objective once and extends the end date to cover the rule window. A
// malformed rule does not block activation; the error is persisted on the
// rule so the distribution job skips it without re-parsing.
func (u *LifecycleUseCase) start(ctx context.Context, cw domain.CampaignWithRule, now time.Time) (domain.StatusChange, error) {
	c := cw.Campaign
	if !c.Status.CanTransitionTo(domain.StatusInProgress) {
		return domain.StatusChange{}, fmt.Errorf("%w: campaign %d %s -> %s",
			domain.ErrIllegalTransition, c.ID, c.Status, domain.StatusInProgress)
	}
	act := domain.Activation{CampaignID: c.ID, EndDate: c.EndDate}
	extended := false

	if c.Kind == domain.KindGiveAway && cw.Rule != nil {
		rule := cw.Rule
		var problems []string
		if rule.Objective == nil && rule.ConfigError == "" {
			obj, err := domain.ParseObjective(rule.ObjectiveSource)
			if err != nil {
				problems = append(problems, err.Error())
			} else {
				act.Objective = &obj
			}
		}
		if err := rule.Window.Validate(); err != nil {
			problems = append(problems, err.Error())
		} else {
			act.EndDate, extended = rule.ExtendedEnd(c.EndDate)
		}
		if len(problems) > 0 && rule.ConfigError == "" {
			act.ConfigError = strings.Join(problems, "; ")
			u.logger.Warn("giveaway rule misconfigured",
				slog.Int64("campaign_id", c.ID),
				slog.Int64("rule_id", rule.ID),
				slog.String("error", act.ConfigError))
		}
		if act.Objective != nil || act.ConfigError != "" {
			act.RuleID = rule.ID
		}
	}

	if err := u.repo.Activate(ctx, act); err != nil {
		return domain.StatusChange{}, err
	}
	u.logger.Info("campaign started",
		slog.Int64("campaign_id", c.ID),
		slog.String("kind", string(c.Kind)),
		slog.Time("end_date", act.EndDate),
		slog.Bool("end_date_extended", extended))

	return domain.StatusChange{
		CampaignID:      c.ID,
		From:            c.Status,
		To:              domain.StatusInProgress,
		At:              now,
		EndDateExtended: extended,
	}, nil
}

func (u *LifecycleUseCase) completeDue(ctx context.Context, now time.Time, report *domain.LifecycleReport) error {
	ending, err := u.repo.ListDueForCompletion(ctx, now)
	if err != nil {
		return fmt.Errorf("list campaigns due for completion: %w", err)
	}
	for _, c := range ending {
		if err = ctx.Err(); err != nil {
			return err
		}
		if !c.DueForCompletion(now) {
			continue
		}
		change, err := u.complete(ctx, c, now)
		if errors.Is(err, domain.ErrStaleStatus) {
			u.logger.Debug("campaign already moved on", slog.Int64("campaign_id", c.ID))
			continue
		}
		if err != nil {
			report.Failures++
			u.logger.Error("complete campaign", slog.Int64("campaign_id", c.ID), slog.Any("error", err))
			continue
		}
		report.Completed++
		report.Changes = append(report.Changes, change)
		u.logger.Info("campaign completed",
			slog.Int64("campaign_id", c.ID),
			slog.String("from", string(c.Status)))
		u.announce(ctx, change, domain.TemplateCampaignCompleted)
	}
	return nil
}

func (u *LifecycleUseCase) complete(ctx context.Context, c domain.Campaign, now time.Time) (domain.StatusChange, error) {
	if !c.Status.CanTransitionTo(domain.StatusCompleted) {
		return domain.StatusChange{}, fmt.Errorf("%w: campaign %d %s -> %s",
			domain.ErrIllegalTransition, c.ID, c.Status, domain.StatusCompleted)
	}
	if err := u.repo.Complete(ctx, c.ID, c.Status); err != nil {
		return domain.StatusChange{}, err
	}
	return domain.StatusChange{CampaignID: c.ID, From: c.Status, To: domain.StatusCompleted, At: now}, nil
}

// announce is best-effort; a failed notification never reverts a status
// change.
func (u *LifecycleUseCase) announce(ctx context.Context, change domain.StatusChange, template string) {
	if u.notifier == nil {
		return
	}
	nctx, cancel := context.WithTimeout(ctx, u.notifyTimeout)
	defer cancel()
	err := u.notifier.Notify(nctx, domain.Notification{
		CampaignID: change.CampaignID,
		Template:   template,
		Data: map[string]string{
			"from": string(change.From),
			"to":   string(change.To),
			"at":   change.At.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		u.logger.Warn("status notification failed",
			slog.Int64("campaign_id", change.CampaignID),
			slog.String("template", template),
			slog.Any("error", err))
	}
}
