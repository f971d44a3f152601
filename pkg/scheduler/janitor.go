package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/pricewatch/pkg/domain"
)

// cleanup actions accepted by the janitor
const (
	ActionQueue  = "queue"
	ActionPrices = "prices"
	ActionAll    = "all"
)

// ErrUnknownAction marks a cleanup request with an action the janitor does
// not recognize, a caller mistake rather than a store failure
var ErrUnknownAction = errors.New("unknown cleanup action")

// Janitor removes terminal queue entries past the retention window and
// price observations past the owner's tier retention. Order-independent
// and safe to run concurrently with the other cycles.
type Janitor struct {
	queue  QueueStore
	prices PriceStore

	queueRetention time.Duration
}

// CleanupResult summarizes one janitor run
type CleanupResult struct {
	QueueDeleted  int64 `json:"queue_deleted"`
	PricesDeleted int64 `json:"prices_deleted"`
}

// Run executes one cleanup cycle for the given action
func (j *Janitor) Run(ctx context.Context, action string) (CleanupResult, error) {
	now := time.Now().UTC()
	var result CleanupResult

	switch action {
	case ActionQueue, ActionPrices, ActionAll:
	default:
		return result, fmt.Errorf("%w %q", ErrUnknownAction, action)
	}

	if action == ActionQueue || action == ActionAll {
		deleted, err := j.queue.DeleteTerminalBefore(ctx, now.Add(-j.queueRetention))
		if err != nil {
			return result, fmt.Errorf("cleanup queue: %w", err)
		}
		result.QueueDeleted = deleted
	}

	if action == ActionPrices || action == ActionAll {
		for _, tier := range domain.Tiers() {
			cutoff := now.Add(-domain.PolicyFor(tier).Retention)
			deleted, err := j.prices.DeleteOlderThan(ctx, tier, cutoff)
			if err != nil {
				return result, fmt.Errorf("cleanup prices for tier %s: %w", tier, err)
			}
			result.PricesDeleted += deleted
		}
	}

	if result.QueueDeleted > 0 || result.PricesDeleted > 0 {
		lgr.Printf("[INFO] cleanup removed %d queue entries, %d price rows", result.QueueDeleted, result.PricesDeleted)
	}
	return result, nil
}
