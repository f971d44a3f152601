package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
)

// QueueRepository handles scrape queue operations. The queue is derived,
// disposable state; product_listings remains the source of truth for what
// is due.
type QueueRepository struct {
	db *sqlx.DB
}

// NewQueueRepository creates a new queue repository
func NewQueueRepository(db *sqlx.DB) *QueueRepository {
	return &QueueRepository{db: db}
}

// Enqueue inserts a pending entry for a listing unless a non-terminal one
// already exists. Returns true if a row was inserted. Safe to call repeatedly
// for the same listing. A processing entry blocks even past its lease expiry:
// crash recovery goes through ClaimBatch reclaiming that same entry, a second
// pending row would let two workers hold live leases on one listing.
func (r *QueueRepository) Enqueue(ctx context.Context, entry *QueueEntry) (bool, error) {
	var inserted bool
	err := withBusyRetry(ctx, func() error {
		query := `
			INSERT INTO scrape_queue (listing_id, user_id, tier, scheduled_for, priority, status)
			SELECT ?, ?, ?, ?, ?, 'pending'
			WHERE NOT EXISTS (
				SELECT 1 FROM scrape_queue
				WHERE listing_id = ? AND status IN ('pending', 'processing')
			)
		`
		result, e := r.db.ExecContext(ctx, query,
			entry.ListingID, entry.UserID, entry.Tier, entry.ScheduledFor.UTC(), entry.Priority,
			entry.ListingID)
		if e != nil {
			if isLockError(e) {
				return e // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("enqueue entry: %w", e)}
		}

		rows, e := result.RowsAffected()
		if e != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", e)}
		}
		if rows > 0 {
			id, e := result.LastInsertId()
			if e != nil {
				return &criticalError{err: fmt.Errorf("get insert id: %w", e)}
			}
			entry.ID = id
			inserted = true
		}
		return nil
	})
	return inserted, err
}

// ClaimBatch atomically claims up to limit eligible entries for the given
// processor and returns them. Eligible entries are pending ones whose
// scheduled_for has passed, plus processing ones whose lease has expired
// (crash recovery). The single UPDATE is the sole concurrency control:
// SQLite serializes writers, so concurrent claims partition disjoint sets.
func (r *QueueRepository) ClaimBatch(ctx context.Context, processorID string, limit int, lease time.Duration, now time.Time) ([]QueueEntry, error) {
	// token uniquely identifies this claim so the follow-up select
	// cannot pick up rows claimed by an earlier run of the same processor
	token := processorID + "-" + strconv.FormatInt(now.UnixNano(), 10)

	err := withBusyRetry(ctx, func() error {
		query := `
			UPDATE scrape_queue
			SET status = 'processing',
			    locked_by = ?,
			    lease_expiry = ?,
			    attempts = attempts + 1
			WHERE id IN (
				SELECT id FROM scrape_queue
				WHERE (status = 'pending' AND scheduled_for <= ?)
				   OR (status = 'processing' AND lease_expiry IS NOT NULL AND lease_expiry <= ?)
				ORDER BY priority DESC, scheduled_for ASC
				LIMIT ?
			)
		`
		if _, e := r.db.ExecContext(ctx, query, token, now.UTC().Add(lease), now.UTC(), now.UTC(), limit); e != nil {
			if isLockError(e) {
				return e
			}
			return &criticalError{err: fmt.Errorf("claim batch: %w", e)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var entries []QueueEntry
	query := `
		SELECT * FROM scrape_queue
		WHERE locked_by = ? AND status = 'processing'
		ORDER BY priority DESC, scheduled_for ASC
	`
	if err := r.db.SelectContext(ctx, &entries, query, token); err != nil {
		return nil, fmt.Errorf("get claimed entries: %w", err)
	}
	return entries, nil
}

// Get retrieves a queue entry by ID
func (r *QueueRepository) Get(ctx context.Context, id int64) (*QueueEntry, error) {
	var entry QueueEntry
	err := r.db.GetContext(ctx, &entry, "SELECT * FROM scrape_queue WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("queue entry %d not found", id)
		}
		return nil, fmt.Errorf("get queue entry: %w", err)
	}
	return &entry, nil
}

// MarkCompleted transitions a processing entry to completed. The status
// predicate makes the resolve idempotent: a run whose lease already expired
// and whose entry was reclaimed and resolved by another run changes nothing.
func (r *QueueRepository) MarkCompleted(ctx context.Context, id int64, now time.Time) error {
	return r.resolve(ctx, id, StatusCompleted, "", now)
}

// MarkFailed transitions a processing entry to failed with an error message
func (r *QueueRepository) MarkFailed(ctx context.Context, id int64, errMsg string, now time.Time) error {
	return r.resolve(ctx, id, StatusFailed, errMsg, now)
}

func (r *QueueRepository) resolve(ctx context.Context, id int64, status, errMsg string, now time.Time) error {
	return withBusyRetry(ctx, func() error {
		query := `
			UPDATE scrape_queue
			SET status = ?,
			    processed_at = ?,
			    error_message = ?,
			    locked_by = NULL,
			    lease_expiry = NULL
			WHERE id = ? AND status = 'processing'
		`
		var msg sql.NullString
		if errMsg != "" {
			msg = sql.NullString{String: errMsg, Valid: true}
		}
		if _, e := r.db.ExecContext(ctx, query, status, now.UTC(), msg, id); e != nil {
			if isLockError(e) {
				return e
			}
			return &criticalError{err: fmt.Errorf("resolve queue entry: %w", e)}
		}
		return nil
	})
}

// Stats returns queue counts by status and the oldest pending scheduled time
func (r *QueueRepository) Stats(ctx context.Context) (*QueueStats, error) {
	query := `
		SELECT
			COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending,
			COUNT(CASE WHEN status = 'processing' THEN 1 END) AS processing,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed,
			COUNT(CASE WHEN status = 'failed' THEN 1 END) AS failed
		FROM scrape_queue
	`
	var stats QueueStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("get queue stats: %w", err)
	}

	// the bare column keeps its datetime type, an aggregate would not
	var oldest time.Time
	err := r.db.GetContext(ctx, &oldest,
		"SELECT scheduled_for FROM scrape_queue WHERE status = 'pending' ORDER BY scheduled_for ASC LIMIT 1")
	switch {
	case errors.Is(err, sql.ErrNoRows): // empty backlog
	case err != nil:
		return nil, fmt.Errorf("get oldest pending: %w", err)
	default:
		stats.OldestPending = sql.NullTime{Time: oldest, Valid: true}
	}
	return &stats, nil
}

// DeleteTerminalBefore removes completed and failed entries processed before
// the cutoff. Terminal rows are never referenced, so this is safe to run
// concurrently with claim and resolve.
func (r *QueueRepository) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM scrape_queue
		WHERE status IN ('completed', 'failed')
		  AND processed_at IS NOT NULL
		  AND processed_at < ?
	`
	result, err := r.db.ExecContext(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete terminal entries: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return rows, nil
}

// PendingForListing reports whether a listing has an outstanding pending entry
func (r *QueueRepository) PendingForListing(ctx context.Context, listingID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM scrape_queue WHERE listing_id = ? AND status = 'pending')", listingID)
	if err != nil {
		return false, fmt.Errorf("check pending entry: %w", err)
	}
	return exists, nil
}
