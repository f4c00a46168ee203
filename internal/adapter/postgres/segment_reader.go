package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-scheduler/internal/core/domain"
)

// SegmentReader implements port.SegmentDirectory over the segment_members
// read model.
type SegmentReader struct {
	pool *pgxpool.Pool
}

// NewSegmentReader returns a new reader instance.
func NewSegmentReader(pool *pgxpool.Pool) *SegmentReader {
	return &SegmentReader{pool: pool}
}

// ResolveMembers returns the union of the segments' members ordered by user
// id. When orgID is set only members of that organization are returned.
func (r *SegmentReader) ResolveMembers(ctx context.Context, segmentIDs []int64, orgID *int64) ([]domain.Member, error) {
	if len(segmentIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT ON (user_id) user_id, email, organization_id
        FROM segment_members
        WHERE segment_id = ANY($1)
          AND ($2::bigint IS NULL OR organization_id = $2)
        ORDER BY user_id, segment_id`, segmentIDs, orgID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Member, error) {
		var m domain.Member
		err := row.Scan(&m.UserID, &m.Email, &m.OrganizationID)
		return m, err
	})
}
