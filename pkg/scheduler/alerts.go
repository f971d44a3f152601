package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/pricewatch/pkg/notifier"
)

// AlertEvaluator compares the latest recorded price against watchlist
// targets and sends at most one notification per qualifying drop episode.
// An episode ends when the price rises back above the target; only then
// can the next drop notify again.
type AlertEvaluator struct {
	watches  WatchStore
	prices   PriceStore
	notifier Notifier
}

// AlertResult summarizes one alert evaluation run
type AlertResult struct {
	Evaluated int `json:"evaluated"`
	Notified  int `json:"notified"`
}

// Run executes one alert evaluation cycle. Notification failures are
// isolated per watch and retried naturally on the next run since
// last_notified_at stays unset.
func (a *AlertEvaluator) Run(ctx context.Context) (AlertResult, error) {
	watches, err := a.watches.ActiveWatches(ctx)
	if err != nil {
		return AlertResult{}, fmt.Errorf("get active watches: %w", err)
	}

	var result AlertResult
	for _, watch := range watches {
		latest, err := a.prices.LatestForListing(ctx, watch.ListingID)
		if err != nil {
			lgr.Printf("[ERROR] failed to get latest price for listing %d: %v", watch.ListingID, err)
			continue
		}
		if latest == nil {
			continue // nothing observed yet
		}
		result.Evaluated++

		if latest.Price > watch.TargetPrice {
			continue
		}

		if watch.LastNotifiedAt.Valid {
			rose, err := a.prices.RoseAboveSince(ctx, watch.ListingID, watch.TargetPrice, watch.LastNotifiedAt.Time)
			if err != nil {
				lgr.Printf("[ERROR] failed to check price episode for listing %d: %v", watch.ListingID, err)
				continue
			}
			if !rose {
				continue // already notified for this drop episode
			}
		}

		alert := notifier.Alert{
			WatchID:     watch.ID,
			UserID:      watch.UserID,
			ListingID:   watch.ListingID,
			Price:       latest.Price,
			Currency:    latest.Currency,
			TargetPrice: watch.TargetPrice,
			ObservedAt:  latest.ScrapedAt,
		}
		if err := a.notifier.Send(ctx, alert); err != nil {
			lgr.Printf("[WARN] failed to notify watch %d: %v", watch.ID, err)
			continue
		}

		if err := a.watches.MarkNotified(ctx, watch.ID, time.Now().UTC()); err != nil {
			lgr.Printf("[ERROR] failed to mark watch %d notified: %v", watch.ID, err)
			continue
		}
		result.Notified++
	}

	if result.Notified > 0 {
		lgr.Printf("[INFO] alerts: %d evaluated, %d notified", result.Evaluated, result.Notified)
	}
	return result, nil
}
