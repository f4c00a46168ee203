package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-scheduler/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
            c.id,
            c.name,
            c.kind,
            c.status,
            c.start_date,
            c.end_date,
            c.coin_usage_enabled,
            COALESCE((SELECT array_agg(s.segment_id ORDER BY s.segment_id)
                      FROM campaign_segments s WHERE s.campaign_id = c.id), '{}'),
            c.created_at,
            c.updated_at`

const ruleColumns = `
            r.id,
            r.prize_kind,
            r.objective_source,
            r.objective,
            r.minimum_count,
            r.quantity_per_gift,
            r.can_repeat,
            r.org_id,
            r.all_time,
            r.rule_start,
            r.rule_end,
            r.inventory_id,
            r.config_error`

const inventoryColumns = `
            i.id,
            i.prize_kind,
            i.external_ref,
            i.total,
            i.distributed`

// ruleRow holds the nullable columns of a LEFT JOINed giveaway rule.
type ruleRow struct {
	ID              *int64
	PrizeKind       *string
	ObjectiveSource *string
	Objective       []byte
	MinimumCount    *int
	QuantityPerGift *int64
	CanRepeat       *bool
	OrgID           *int64
	AllTime         *bool
	RuleStart       *time.Time
	RuleEnd         *time.Time
	InventoryID     *int64
	ConfigError     *string
}

func (rr *ruleRow) dest() []any {
	return []any{
		&rr.ID, &rr.PrizeKind, &rr.ObjectiveSource, &rr.Objective, &rr.MinimumCount,
		&rr.QuantityPerGift, &rr.CanRepeat, &rr.OrgID, &rr.AllTime, &rr.RuleStart,
		&rr.RuleEnd, &rr.InventoryID, &rr.ConfigError,
	}
}

// rule converts the row into a domain rule, or nil when no rule was joined.
// A stored objective that no longer decodes is surfaced as a config error
// so distribution skips the rule.
func (rr *ruleRow) rule(campaignID int64) *domain.GiveAwayRule {
	if rr.ID == nil {
		return nil
	}
	r := &domain.GiveAwayRule{
		ID:              *rr.ID,
		CampaignID:      campaignID,
		PrizeKind:       domain.PrizeKind(deref(rr.PrizeKind)),
		ObjectiveSource: deref(rr.ObjectiveSource),
		MinimumCount:    deref(rr.MinimumCount),
		QuantityPerGift: deref(rr.QuantityPerGift),
		CanRepeat:       deref(rr.CanRepeat),
		OrgID:           rr.OrgID,
		Window: domain.Window{
			AllTime: deref(rr.AllTime),
			Start:   rr.RuleStart,
			End:     rr.RuleEnd,
		},
		InventoryID: rr.InventoryID,
		ConfigError: deref(rr.ConfigError),
	}
	if len(rr.Objective) > 0 {
		var obj domain.Objective
		if err := json.Unmarshal(rr.Objective, &obj); err != nil {
			r.ConfigError = fmt.Sprintf("stored objective: %v", err)
		} else {
			r.Objective = &obj
		}
	}
	return r
}

// inventoryRow holds the nullable columns of a LEFT JOINed inventory.
type inventoryRow struct {
	ID          *int64
	PrizeKind   *string
	ExternalRef *string
	Total       *int64
	Distributed *int64
}

func (ir *inventoryRow) dest() []any {
	return []any{&ir.ID, &ir.PrizeKind, &ir.ExternalRef, &ir.Total, &ir.Distributed}
}

func (ir *inventoryRow) inventory() *domain.RewardInventory {
	if ir.ID == nil {
		return nil
	}
	return &domain.RewardInventory{
		ID:          *ir.ID,
		PrizeKind:   domain.PrizeKind(deref(ir.PrizeKind)),
		ExternalRef: deref(ir.ExternalRef),
		Total:       deref(ir.Total),
		Distributed: deref(ir.Distributed),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func campaignDest(c *domain.Campaign) []any {
	return []any{
		&c.ID, &c.Name, &c.Kind, &c.Status, &c.StartDate, &c.EndDate,
		&c.CoinUsageEnabled, &c.SegmentIDs, &c.CreatedAt, &c.UpdatedAt,
	}
}

// ListDueForStart returns upcoming campaigns whose start date has arrived.
func (r *CampaignRepository) ListDueForStart(ctx context.Context, now time.Time) ([]domain.CampaignWithRule, error) {
	query := `
        SELECT` + campaignColumns + `,` + ruleColumns + `
        FROM campaigns c
        LEFT JOIN giveaway_rules r ON r.campaign_id = c.id AND c.kind = 'giveaway'
        WHERE c.status = 'upcoming'
          AND c.start_date <= $1
        ORDER BY c.start_date, c.id`
	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignWithRule, error) {
		var (
			cw domain.CampaignWithRule
			rr ruleRow
		)
		if err := row.Scan(append(campaignDest(&cw.Campaign), rr.dest()...)...); err != nil {
			return cw, err
		}
		cw.Rule = rr.rule(cw.Campaign.ID)
		return cw, nil
	})
}

// Activate starts a campaign and persists the normalized rule objective in
// one transaction. A campaign that is no longer upcoming yields
// domain.ErrStaleStatus and nothing is written.
func (r *CampaignRepository) Activate(ctx context.Context, act domain.Activation) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE campaigns
            SET status = 'in_progress', coin_usage_enabled = true, end_date = $2, updated_at = now()
            WHERE id = $1 AND status = 'upcoming'`,
			act.CampaignID, act.EndDate)
		if err != nil {
			return fmt.Errorf("activate campaign %d: %w", act.CampaignID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("activate campaign %d: %w", act.CampaignID, domain.ErrStaleStatus)
		}
		if act.RuleID == 0 {
			return nil
		}

		var objective []byte
		var kind, actionID *string
		if act.Objective != nil {
			if objective, err = json.Marshal(act.Objective); err != nil {
				return err
			}
			k := string(act.Objective.Kind)
			kind, actionID = &k, &act.Objective.ActionID
		}
		var configError *string
		if act.ConfigError != "" {
			configError = &act.ConfigError
		}
		_, err = tx.Exec(ctx, `
            UPDATE giveaway_rules
            SET objective_kind = COALESCE($3, objective_kind),
                action_id      = COALESCE($4, action_id),
                objective      = COALESCE($5::jsonb, objective),
                config_error   = COALESCE($6, config_error),
                updated_at     = now()
            WHERE id = $1 AND campaign_id = $2`,
			act.RuleID, act.CampaignID, kind, actionID, objective, configError)
		if err != nil {
			return fmt.Errorf("normalize rule %d: %w", act.RuleID, err)
		}
		return nil
	})
}

// ListDueForCompletion returns running and force-stopped campaigns whose end
// date is before now.
func (r *CampaignRepository) ListDueForCompletion(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	query := `
        SELECT` + campaignColumns + `
        FROM campaigns c
        WHERE c.status IN ('in_progress', 'force_stopped')
          AND c.end_date < $1
        ORDER BY c.end_date, c.id`
	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(campaignDest(&c)...)
		return c, err
	})
}

// Complete moves a campaign from the given status to completed.
func (r *CampaignRepository) Complete(ctx context.Context, campaignID int64, from domain.Status) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET status = 'completed', updated_at = now()
        WHERE id = $1 AND status = $2`, campaignID, from)
	if err != nil {
		return fmt.Errorf("complete campaign %d: %w", campaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("complete campaign %d: %w", campaignID, domain.ErrStaleStatus)
	}
	return nil
}

// ListActiveGiveaways returns in-progress giveaways with rule and pool
// attached. A campaign whose rule row is missing is returned with a nil
// Rule so the caller can report it.
func (r *CampaignRepository) ListActiveGiveaways(ctx context.Context) ([]domain.CampaignWithRule, error) {
	query := `
        SELECT` + campaignColumns + `,` + ruleColumns + `,` + inventoryColumns + `
        FROM campaigns c
        LEFT JOIN giveaway_rules r ON r.campaign_id = c.id
        LEFT JOIN reward_inventories i ON i.id = r.inventory_id
        WHERE c.status = 'in_progress'
          AND c.kind = 'giveaway'
        ORDER BY c.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignWithRule, error) {
		var (
			cw domain.CampaignWithRule
			rr ruleRow
			ir inventoryRow
		)
		dest := append(campaignDest(&cw.Campaign), rr.dest()...)
		if err := row.Scan(append(dest, ir.dest()...)...); err != nil {
			return cw, err
		}
		cw.Rule = rr.rule(cw.Campaign.ID)
		cw.Inventory = ir.inventory()
		return cw, nil
	})
}
