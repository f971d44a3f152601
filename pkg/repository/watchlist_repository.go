package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// WatchlistRepository handles user watchlist operations
type WatchlistRepository struct {
	db *sqlx.DB
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *sqlx.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Create inserts a new watch
func (r *WatchlistRepository) Create(ctx context.Context, watch *Watch) error {
	query := `
		INSERT INTO user_watchlists (user_id, listing_id, target_price, notify_on_drop)
		VALUES (:user_id, :listing_id, :target_price, :notify_on_drop)
	`
	result, err := r.db.NamedExecContext(ctx, query, watch)
	if err != nil {
		return fmt.Errorf("create watch: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	watch.ID = id
	return nil
}

// ActiveWatches returns all watches with drop notifications enabled
func (r *WatchlistRepository) ActiveWatches(ctx context.Context) ([]Watch, error) {
	var watches []Watch
	query := "SELECT * FROM user_watchlists WHERE notify_on_drop = 1 ORDER BY id"
	if err := r.db.SelectContext(ctx, &watches, query); err != nil {
		return nil, fmt.Errorf("get active watches: %w", err)
	}
	return watches, nil
}

// MarkNotified records the time a drop notification was sent for a watch
func (r *WatchlistRepository) MarkNotified(ctx context.Context, id int64, now time.Time) error {
	return withBusyRetry(ctx, func() error {
		query := "UPDATE user_watchlists SET last_notified_at = ? WHERE id = ?"
		if _, e := r.db.ExecContext(ctx, query, now.UTC(), id); e != nil {
			if isLockError(e) {
				return e // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("mark watch notified: %w", e)}
		}
		return nil
	})
}
