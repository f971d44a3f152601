package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/pricewatch/pkg/repository"
)

// Processor claims a batch of due queue entries under an exclusive lease
// and executes the scrape for each. The atomic claim is the only
// cross-invocation coordination; overlapping runs partition disjoint
// batches, and expired leases are reclaimed automatically.
type Processor struct {
	listings ListingStore
	queue    QueueStore
	prices   PriceStore
	usage    UsageTracker
	scraper  Scraper

	batchSize        int
	lease            time.Duration
	failureThreshold int
	maxWorkers       int
}

// ProcessResult summarizes one processor run
type ProcessResult struct {
	Claimed   int `json:"claimed"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// job pairs a claimed queue entry with its listing
type job struct {
	entry   repository.QueueEntry
	listing repository.ListingWithStore
}

// Run executes one process cycle for the given processor ID. An empty claim
// is a normal no-op. Entry failures are isolated: one bad scrape never
// aborts its siblings.
func (p *Processor) Run(ctx context.Context, processorID string) (ProcessResult, error) {
	now := time.Now().UTC()

	entries, err := p.queue.ClaimBatch(ctx, processorID, p.batchSize, p.lease, now)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("claim batch: %w", err)
	}
	if len(entries) == 0 {
		return ProcessResult{}, nil
	}

	result := ProcessResult{Claimed: len(entries)}
	var mu sync.Mutex

	// resolve listings and group by store domain so one session context
	// can be reused per store within a run
	groups := map[string][]job{}
	for _, entry := range entries {
		listing, err := p.listings.GetWithStore(ctx, entry.ListingID)
		if err != nil {
			// listing deleted after the entry was queued, resolve and move on
			lgr.Printf("[WARN] claimed entry %d has no listing %d: %v", entry.ID, entry.ListingID, err)
			if mfErr := p.queue.MarkFailed(ctx, entry.ID, fmt.Sprintf("listing %d missing: %v", entry.ListingID, err), time.Now().UTC()); mfErr != nil {
				lgr.Printf("[ERROR] failed to resolve orphaned entry %d: %v", entry.ID, mfErr)
			}
			result.Failed++
			continue
		}
		groups[listing.StoreDomain] = append(groups[listing.StoreDomain], job{entry: entry, listing: *listing})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	for _, jobs := range groups {
		g.Go(func() error {
			for _, j := range jobs {
				if gctx.Err() != nil {
					// out of time, leave the rest leased; the lease will
					// expire and a later run picks them up
					return nil
				}
				if p.processOne(gctx, j) {
					mu.Lock()
					result.Completed++
					mu.Unlock()
				} else {
					mu.Lock()
					result.Failed++
					mu.Unlock()
				}
			}
			return nil
		})
	}

	_ = g.Wait() // workers never return errors, failures are per-entry

	lgr.Printf("[INFO] processed batch: %d claimed, %d completed, %d failed",
		result.Claimed, result.Completed, result.Failed)
	return result, nil
}

// processOne executes the scrape for a single entry and records the outcome.
// Returns true on success.
func (p *Processor) processOne(ctx context.Context, j job) bool {
	scraped, err := p.scraper.Scrape(ctx, j.listing)
	now := time.Now().UTC()

	if err != nil {
		lgr.Printf("[WARN] scrape failed for listing %d (%s): %v", j.listing.ID, j.listing.URL, err)

		failures, active, mfErr := p.listings.MarkFailed(ctx, j.listing.ID, p.failureThreshold, now)
		if mfErr != nil {
			lgr.Printf("[ERROR] failed to record listing failure %d: %v", j.listing.ID, mfErr)
		} else if !active {
			lgr.Printf("[WARN] listing %d deactivated after %d consecutive failures", j.listing.ID, failures)
		}

		if qErr := p.queue.MarkFailed(ctx, j.entry.ID, err.Error(), now); qErr != nil {
			lgr.Printf("[ERROR] failed to mark entry %d failed: %v", j.entry.ID, qErr)
		}
		return false
	}

	obs := &repository.PriceObservation{
		ListingID:  j.listing.ID,
		UserID:     j.listing.UserID,
		Price:      scraped.Price,
		Currency:   scraped.Currency,
		InStock:    scraped.InStock,
		Confidence: scraped.Confidence,
		ScrapedAt:  now,
	}
	if err := p.prices.Record(ctx, obs); err != nil {
		// the scrape itself succeeded, so the listing keeps its streak;
		// the entry still ends in an explicit terminal state
		lgr.Printf("[ERROR] failed to record observation for listing %d: %v", j.listing.ID, err)
		if qErr := p.queue.MarkFailed(ctx, j.entry.ID, fmt.Sprintf("record observation: %v", err), now); qErr != nil {
			lgr.Printf("[ERROR] failed to mark entry %d failed: %v", j.entry.ID, qErr)
		}
		return false
	}

	interval := time.Duration(j.listing.CheckIntervalHours) * time.Hour
	if err := p.listings.MarkChecked(ctx, j.listing.ID, now, interval); err != nil {
		lgr.Printf("[ERROR] failed to advance listing %d: %v", j.listing.ID, err)
	}
	if err := p.queue.MarkCompleted(ctx, j.entry.ID, now); err != nil {
		lgr.Printf("[ERROR] failed to mark entry %d completed: %v", j.entry.ID, err)
	}
	if err := p.usage.IncrementUsage(ctx, j.listing.UserID, now.Format("2006-01-02")); err != nil {
		lgr.Printf("[WARN] failed to track usage for user %d: %v", j.listing.UserID, err)
	}

	lgr.Printf("[DEBUG] checked listing %d: %.2f %s", j.listing.ID, scraped.Price, scraped.Currency)
	return true
}
