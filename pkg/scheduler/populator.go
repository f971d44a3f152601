package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/pricewatch/pkg/domain"
	"github.com/umputun/pricewatch/pkg/repository"
)

// Populator scans listings due within the lookahead window and upserts
// pending queue entries. Idempotent: the enqueue skips listings that
// already have outstanding work, so the external trigger may fire it as
// often as it likes.
type Populator struct {
	listings ListingStore
	queue    QueueStore

	lookahead        time.Duration
	scanLimit        int
	failureThreshold int
}

// PopulateResult summarizes one populator run
type PopulateResult struct {
	Scanned  int `json:"scanned"`
	Enqueued int `json:"enqueued"`
	Skipped  int `json:"skipped"`
}

// Run executes one populate cycle. A store error aborts the cycle; listings
// not yet enqueued simply remain eligible for the next run.
func (p *Populator) Run(ctx context.Context) (PopulateResult, error) {
	now := time.Now().UTC()

	listings, err := p.listings.GetDue(ctx, now, p.lookahead, p.failureThreshold, p.scanLimit)
	if err != nil {
		return PopulateResult{}, fmt.Errorf("get due listings: %w", err)
	}

	result := PopulateResult{Scanned: len(listings)}
	for _, listing := range listings {
		policy := domain.PolicyFor(listing.Tier)
		entry := &repository.QueueEntry{
			ListingID:    listing.ID,
			UserID:       listing.UserID,
			Tier:         listing.Tier,
			ScheduledFor: listing.NextCheckAt,
			Priority:     Priority(policy.BasePriority, now.Sub(listing.NextCheckAt)),
		}

		inserted, err := p.queue.Enqueue(ctx, entry)
		if err != nil {
			return result, fmt.Errorf("enqueue listing %d: %w", listing.ID, err)
		}
		if inserted {
			result.Enqueued++
		} else {
			result.Skipped++
		}
	}

	if result.Enqueued > 0 {
		lgr.Printf("[INFO] populated queue: %d scanned, %d enqueued, %d already queued",
			result.Scanned, result.Enqueued, result.Skipped)
	}
	return result, nil
}
