package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-scheduler/internal/core/domain"
)

// ActivityReader implements port.ActivityReader over the activity_events
// read model.
type ActivityReader struct {
	pool *pgxpool.Pool
}

// NewActivityReader returns a new reader instance.
func NewActivityReader(pool *pgxpool.Pool) *ActivityReader {
	return &ActivityReader{pool: pool}
}

// windowBounds turns a rule window into nullable query bounds. An all-time
// window has neither.
func windowBounds(w domain.Window) (from, to *time.Time) {
	if w.AllTime {
		return nil, nil
	}
	return w.Start, w.End
}

// CountQualifyingEvents counts the user's events for actionID inside window.
func (r *ActivityReader) CountQualifyingEvents(ctx context.Context, userID, actionID string, window domain.Window) (int, error) {
	from, to := windowBounds(window)
	var n int
	err := r.pool.QueryRow(ctx, `
        SELECT count(*) FROM activity_events
        WHERE user_id = $1 AND action_id = $2
          AND ($3::timestamptz IS NULL OR occurred_at >= $3)
          AND ($4::timestamptz IS NULL OR occurred_at <= $4)`,
		userID, actionID, from, to).Scan(&n)
	return n, err
}

// ListQualifyingEvents returns the user's events for actionID inside window,
// oldest first.
func (r *ActivityReader) ListQualifyingEvents(ctx context.Context, userID, actionID string, window domain.Window) ([]domain.ActivityEvent, error) {
	from, to := windowBounds(window)
	rows, err := r.pool.Query(ctx, `
        SELECT id, user_id, action_id, occurred_at FROM activity_events
        WHERE user_id = $1 AND action_id = $2
          AND ($3::timestamptz IS NULL OR occurred_at >= $3)
          AND ($4::timestamptz IS NULL OR occurred_at <= $4)
        ORDER BY occurred_at, id`,
		userID, actionID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityEvent, error) {
		var ev domain.ActivityEvent
		err := row.Scan(&ev.ID, &ev.UserID, &ev.ActionID, &ev.OccurredAt)
		return ev, err
	})
}
