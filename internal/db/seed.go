package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	demoSegment   = int64(1)
	demoOrg       = int64(10)
	demoUsers     = 20
	demoTokenPool = int64(1)
	demoCoinPool  = int64(2)
)

// Seed inserts a demo token giveaway and a repeatable coin giveaway, their
// pools, one audience segment and random activity. Both campaigns start as
// upcoming so the lifecycle job picks them up on its next run.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	// reward pools
	_, err := db.Exec(ctx, `INSERT INTO reward_inventories (id, prize_kind, external_ref, total, distributed)
VALUES ($1, 'token', 'demo-token-pool', 100, 0), ($2, 'coin', 'demo-coin-source', 1000, 0)
ON CONFLICT DO NOTHING`, demoTokenPool, demoCoinPool)
	if err != nil {
		return fmt.Errorf("seed pools: %w", err)
	}

	campaigns := []struct {
		id        int64
		name      string
		prize     string
		objective string
		minimum   int
		quantity  int64
		repeat    bool
		pool      int64
	}{
		{1, "Share week", "token", "keyword:Share", 3, 10, false, demoTokenPool},
		{2, "Daily login streak", "coin", `{"action_id": "login"}`, 2, 5, true, demoCoinPool},
	}
	for _, c := range campaigns {
		start := now.Add(-time.Hour)
		end := now.AddDate(0, 0, 7)
		_, err = db.Exec(ctx, `INSERT INTO campaigns (id, name, kind, status, start_date, end_date, created_at, updated_at)
VALUES ($1, $2, 'giveaway', 'upcoming', $3, $4, now(), now()) ON CONFLICT DO NOTHING`,
			c.id, c.name, start, end)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", c.id, err)
		}
		_, err = db.Exec(ctx, `INSERT INTO campaign_segments (campaign_id, segment_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			c.id, demoSegment)
		if err != nil {
			return err
		}
		// rule window runs past the campaign so activation extends end_date
		_, err = db.Exec(ctx, `INSERT INTO giveaway_rules
(campaign_id, prize_kind, objective_source, minimum_count, quantity_per_gift, can_repeat, org_id,
 all_time, rule_start, rule_end, inventory_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $9, $10) ON CONFLICT DO NOTHING`,
			c.id, c.prize, c.objective, c.minimum, c.quantity, c.repeat, demoOrg,
			start.AddDate(0, 0, -7), end.AddDate(0, 0, 7), c.pool)
		if err != nil {
			return fmt.Errorf("seed rule for campaign %d: %w", c.id, err)
		}
	}

	// audience and activity
	for i := 1; i <= demoUsers; i++ {
		userID := fmt.Sprintf("user-%02d", i)
		_, err = db.Exec(ctx, `INSERT INTO segment_members (segment_id, user_id, email, organization_id)
VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			demoSegment, userID, userID+"@example.com", demoOrg)
		if err != nil {
			return err
		}
		for _, action := range []string{"share", "login"} {
			for j := 0; j < r.Intn(7); j++ {
				at := now.Add(-time.Duration(r.Intn(72)) * time.Hour)
				_, err = db.Exec(ctx, `INSERT INTO activity_events (id, user_id, action_id, occurred_at)
VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`, uuid.NewString(), userID, action, at)
				if err != nil {
					return err
				}
			}
		}
	}

	// keep serial sequences ahead of the explicit ids above
	for _, table := range []string{"campaigns", "reward_inventories"} {
		_, err = db.Exec(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT max(id) FROM %s))`, table, table))
		if err != nil {
			return err
		}
	}
	return nil
}
