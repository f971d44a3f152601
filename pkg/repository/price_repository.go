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

// PriceRepository handles price history operations. Observations are
// immutable once written; retention is enforced by the janitor.
type PriceRepository struct {
	db *sqlx.DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *sqlx.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// Record inserts a price observation
func (r *PriceRepository) Record(ctx context.Context, obs *PriceObservation) error {
	obs.ScrapedAt = obs.ScrapedAt.UTC()
	return withBusyRetry(ctx, func() error {
		query := `
			INSERT INTO price_history (listing_id, user_id, price, currency, in_stock, confidence, scraped_at)
			VALUES (:listing_id, :user_id, :price, :currency, :in_stock, :confidence, :scraped_at)
		`
		result, e := r.db.NamedExecContext(ctx, query, obs)
		if e != nil {
			if isLockError(e) {
				return e // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("record observation: %w", e)}
		}
		id, e := result.LastInsertId()
		if e != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", e)}
		}
		obs.ID = id
		return nil
	})
}

// LatestForListing returns the most recent observation for a listing,
// or nil if none exists
func (r *PriceRepository) LatestForListing(ctx context.Context, listingID int64) (*PriceObservation, error) {
	var obs PriceObservation
	query := `
		SELECT * FROM price_history
		WHERE listing_id = ?
		ORDER BY scraped_at DESC, id DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &obs, query, listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest observation: %w", err)
	}
	return &obs, nil
}

// HistoryForListing returns observations for a listing, newest first
func (r *PriceRepository) HistoryForListing(ctx context.Context, listingID int64, limit int) ([]PriceObservation, error) {
	var observations []PriceObservation
	query := `
		SELECT * FROM price_history
		WHERE listing_id = ?
		ORDER BY scraped_at DESC, id DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &observations, query, listingID, limit); err != nil {
		return nil, fmt.Errorf("get price history: %w", err)
	}
	return observations, nil
}

// RoseAboveSince reports whether any observation after the given time was
// above the threshold. Used by the alert evaluator to detect the end of a
// below-target episode.
func (r *PriceRepository) RoseAboveSince(ctx context.Context, listingID int64, threshold float64, since time.Time) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM price_history
			WHERE listing_id = ? AND price > ? AND scraped_at > ?
		)
	`
	if err := r.db.GetContext(ctx, &exists, query, listingID, threshold, since.UTC()); err != nil {
		return false, fmt.Errorf("check price rise: %w", err)
	}
	return exists, nil
}

// DeleteOlderThan removes observations older than the cutoff for users of
// the given tier
func (r *PriceRepository) DeleteOlderThan(ctx context.Context, tier domain.Tier, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM price_history
		WHERE scraped_at < ?
		  AND user_id IN (SELECT id FROM users WHERE tier = ?)
	`
	result, err := r.db.ExecContext(ctx, query, cutoff.UTC(), tier)
	if err != nil {
		return 0, fmt.Errorf("delete old observations: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return rows, nil
}
