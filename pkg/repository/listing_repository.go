package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/pricewatch/pkg/domain"
)

// ListingRepository handles listing-related database operations.
// Scheduling fields (next_check_at, consecutive_failures) are mutated only
// through MarkChecked, MarkFailed and Reset.
type ListingRepository struct {
	db *sqlx.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create inserts a new listing. Zero check interval is filled from the tier
// policy, zero next_check_at means "due now".
func (r *ListingRepository) Create(ctx context.Context, listing *Listing) error {
	if listing.CheckIntervalHours == 0 {
		listing.CheckIntervalHours = listing.Tier.CheckIntervalHours()
	}
	if listing.NextCheckAt.IsZero() {
		listing.NextCheckAt = time.Now().UTC()
	}
	listing.NextCheckAt = listing.NextCheckAt.UTC()
	listing.IsActive = true

	query := `
		INSERT INTO product_listings (product_id, store_id, user_id, url, tier, check_interval_hours, next_check_at, is_active)
		VALUES (:product_id, :store_id, :user_id, :url, :tier, :check_interval_hours, :next_check_at, :is_active)
	`
	result, err := r.db.NamedExecContext(ctx, query, listing)
	if err != nil {
		return fmt.Errorf("create listing: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	listing.ID = id
	return nil
}

// Get retrieves a listing by ID
func (r *ListingRepository) Get(ctx context.Context, id int64) (*Listing, error) {
	var listing Listing
	err := r.db.GetContext(ctx, &listing, "SELECT * FROM product_listings WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("listing %d not found", id)
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return &listing, nil
}

// GetWithStore retrieves a listing joined with its store scraping hints
func (r *ListingRepository) GetWithStore(ctx context.Context, id int64) (*ListingWithStore, error) {
	query := `
		SELECT l.*, s.domain AS store_domain, s.price_selector, s.availability_selector
		FROM product_listings l
		JOIN stores s ON s.id = l.store_id
		WHERE l.id = ?
	`
	var listing ListingWithStore
	err := r.db.GetContext(ctx, &listing, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("listing %d not found", id)
		}
		return nil, fmt.Errorf("get listing with store: %w", err)
	}
	return &listing, nil
}

// GetDue retrieves active listings due for a check within the lookahead
// window, skipping listings at or above the failure threshold
func (r *ListingRepository) GetDue(ctx context.Context, now time.Time, lookahead time.Duration, maxFailures, limit int) ([]Listing, error) {
	query := `
		SELECT * FROM product_listings
		WHERE is_active = 1
		  AND next_check_at <= ?
		  AND consecutive_failures < ?
		ORDER BY next_check_at ASC
		LIMIT ?
	`
	var listings []Listing
	err := r.db.SelectContext(ctx, &listings, query, now.UTC().Add(lookahead), maxFailures, limit)
	if err != nil {
		return nil, fmt.Errorf("get due listings: %w", err)
	}
	return listings, nil
}

// MarkChecked records a successful check: advances next_check_at by the check
// interval and resets the failure count
func (r *ListingRepository) MarkChecked(ctx context.Context, id int64, now time.Time, interval time.Duration) error {
	return withBusyRetry(ctx, func() error {
		query := `
			UPDATE product_listings
			SET last_checked_at = ?,
			    next_check_at = ?,
			    consecutive_failures = 0,
			    updated_at = ?
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, now.UTC(), now.UTC().Add(interval), now.UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("mark listing checked: %w", err)}
		}
		return nil
	})
}

// MarkFailed increments the failure count, deactivating the listing once the
// threshold is reached. Returns the new count and whether the listing is
// still active.
func (r *ListingRepository) MarkFailed(ctx context.Context, id int64, threshold int, now time.Time) (failures int, active bool, err error) {
	err = withBusyRetry(ctx, func() error {
		query := `
			UPDATE product_listings
			SET consecutive_failures = consecutive_failures + 1,
			    is_active = CASE WHEN consecutive_failures + 1 >= ? THEN 0 ELSE is_active END,
			    updated_at = ?
			WHERE id = ?
		`
		if _, e := r.db.ExecContext(ctx, query, threshold, now.UTC(), id); e != nil {
			if isLockError(e) {
				return e
			}
			return &criticalError{err: fmt.Errorf("mark listing failed: %w", e)}
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	var state struct {
		Failures int  `db:"consecutive_failures"`
		Active   bool `db:"is_active"`
	}
	if err = r.db.GetContext(ctx, &state, "SELECT consecutive_failures, is_active FROM product_listings WHERE id = ?", id); err != nil {
		return 0, false, fmt.Errorf("get listing failure state: %w", err)
	}
	return state.Failures, state.Active, nil
}

// Reset reactivates a deactivated listing and makes it due immediately
func (r *ListingRepository) Reset(ctx context.Context, id int64, now time.Time) error {
	query := `
		UPDATE product_listings
		SET is_active = 1, consecutive_failures = 0, next_check_at = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, now.UTC(), now.UTC(), id)
	if err != nil {
		return fmt.Errorf("reset listing: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("listing %d not found", id)
	}
	return nil
}

// CountActiveForUser returns the number of active listings owned by a user,
// used to enforce the tier product limit
func (r *ListingRepository) CountActiveForUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM product_listings WHERE user_id = ? AND is_active = 1", userID)
	if err != nil {
		return 0, fmt.Errorf("count active listings: %w", err)
	}
	return count, nil
}

// UpdateTier changes the listing's denormalized tier and its check interval
func (r *ListingRepository) UpdateTier(ctx context.Context, id int64, tier domain.Tier, now time.Time) error {
	query := `
		UPDATE product_listings
		SET tier = ?, check_interval_hours = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, tier, tier.CheckIntervalHours(), now.UTC(), id)
	if err != nil {
		return fmt.Errorf("update listing tier: %w", err)
	}
	return nil
}
