package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-scheduler/internal/core/domain"
)

// RewardRepository implements port.RewardRepository: the winner ledger and
// the reward inventory counters.
type RewardRepository struct {
	pool *pgxpool.Pool
}

// NewRewardRepository returns a new repository instance.
func NewRewardRepository(pool *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{pool: pool}
}

// ListWinnerUserIDs returns the distinct users already awarded for a
// campaign.
func (r *RewardRepository) ListWinnerUserIDs(ctx context.Context, campaignID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT user_id FROM winners WHERE campaign_id = $1 ORDER BY user_id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ConsumedEventIDs returns which of eventIDs already funded an award for the
// campaign.
func (r *RewardRepository) ConsumedEventIDs(ctx context.Context, campaignID int64, eventIDs []string) ([]string, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
        SELECT event_id FROM reward_event_consumptions
        WHERE campaign_id = $1 AND event_id = ANY($2)`, campaignID, eventIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// CommitBatch records a whole batch in one transaction. Each award is
// inserted under its own savepoint so a unique violation skips only that
// award; the inventory is then incremented by what was actually inserted.
func (r *RewardRepository) CommitBatch(ctx context.Context, batch domain.BatchAward) (domain.CommitResult, error) {
	var res domain.CommitResult
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		res = domain.CommitResult{}
		for _, a := range batch.Awards {
			err := withSavepoint(ctx, tx, func(sp pgx.Tx) error {
				_, err := insertAward(ctx, sp, batch, a)
				return err
			})
			if errors.Is(err, domain.ErrDuplicateWinner) {
				res.Duplicates = append(res.Duplicates, a.UserID)
				continue
			}
			if err != nil {
				return err
			}
			res.Inserted = append(res.Inserted, a.UserID)
			res.Quantity += a.Quantity
		}
		return incrementInventory(ctx, tx, batch.InventoryID, res.Quantity)
	})
	if err != nil {
		return domain.CommitResult{}, err
	}
	return res, nil
}

// AwardWithSettlement writes a single award and runs settle before
// committing. The guards fire on the writes, so settle is never reached for
// a duplicate winner or an exhausted pool.
func (r *RewardRepository) AwardWithSettlement(ctx context.Context, batch domain.BatchAward, settle func(ctx context.Context) (string, error)) error {
	if len(batch.Awards) != 1 {
		return fmt.Errorf("settled award needs exactly one recipient, got %d", len(batch.Awards))
	}
	a := batch.Awards[0]
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		winnerID, err := insertAward(ctx, tx, batch, a)
		if err != nil {
			return err
		}
		if err = incrementInventory(ctx, tx, batch.InventoryID, a.Quantity); err != nil {
			return err
		}
		ref, err := settle(ctx)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE winners SET distribution_reference = $2 WHERE id = $1`, winnerID, ref)
		return err
	})
}

// insertAward inserts the winner row and its event consumptions. Unique
// violations map to domain.ErrDuplicateWinner.
func insertAward(ctx context.Context, tx pgx.Tx, batch domain.BatchAward, a domain.Award) (int64, error) {
	var winnerID int64
	err := tx.QueryRow(ctx, `
        INSERT INTO winners (user_id, campaign_id, rule_id, prize_kind, quantity, repeatable, awarded_at, distribution_reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`,
		a.UserID, batch.CampaignID, batch.RuleID, batch.PrizeKind, a.Quantity, batch.Repeatable, batch.AwardedAt, batch.Reference).
		Scan(&winnerID)
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("user %s campaign %d: %w", a.UserID, batch.CampaignID, domain.ErrDuplicateWinner)
	}
	if err != nil {
		return 0, fmt.Errorf("insert winner %s: %w", a.UserID, err)
	}
	if len(a.EventIDs) == 0 {
		return winnerID, nil
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO reward_event_consumptions (event_id, campaign_id, winner_id)
        SELECT unnest($1::text[]), $2::bigint, $3::bigint`, a.EventIDs, batch.CampaignID, winnerID)
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("events of user %s campaign %d: %w", a.UserID, batch.CampaignID, domain.ErrDuplicateWinner)
	}
	if err != nil {
		return 0, fmt.Errorf("consume events for %s: %w", a.UserID, err)
	}
	return winnerID, nil
}

// incrementInventory raises distributed by n only while it stays within
// total. A guard miss returns domain.ErrInventoryConflict.
func incrementInventory(ctx context.Context, tx pgx.Tx, inventoryID *int64, n int64) error {
	if inventoryID == nil || n == 0 {
		return nil
	}
	tag, err := tx.Exec(ctx, `
        UPDATE reward_inventories
        SET distributed = distributed + $2, updated_at = now()
        WHERE id = $1 AND distributed + $2 <= total`, *inventoryID, n)
	if err != nil {
		return fmt.Errorf("increment inventory %d: %w", *inventoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory %d by %d: %w", *inventoryID, n, domain.ErrInventoryConflict)
	}
	return nil
}

// withSavepoint runs fn in a nested transaction, which pgx implements as a
// savepoint. The savepoint is rolled back when fn fails so the outer
// transaction stays usable.
func withSavepoint(ctx context.Context, tx pgx.Tx, fn func(sp pgx.Tx) error) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	if err = fn(sp); err != nil {
		_ = sp.Rollback(ctx)
		return err
	}
	return sp.Commit(ctx)
}
