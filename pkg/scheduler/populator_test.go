package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pricewatch/pkg/domain"
	"github.com/umputun/pricewatch/pkg/repository"
	"github.com/umputun/pricewatch/pkg/scheduler/mocks"
)

func TestPopulator_Run(t *testing.T) {
	listingStore := &mocks.ListingStoreMock{
		GetDueFunc: func(ctx context.Context, now time.Time, lookahead time.Duration, maxFailures, limit int) ([]repository.Listing, error) {
			return []repository.Listing{
				{ID: 1, UserID: 10, Tier: domain.TierFree, NextCheckAt: now.Add(-30 * time.Hour)},
				{ID: 2, UserID: 11, Tier: domain.TierPremium, NextCheckAt: now.Add(-time.Hour)},
				{ID: 3, UserID: 12, Tier: domain.TierPremiumPlus, NextCheckAt: now.Add(30 * time.Minute)},
			}, nil
		},
	}
	queueStore := &mocks.QueueStoreMock{
		EnqueueFunc: func(ctx context.Context, entry *repository.QueueEntry) (bool, error) {
			return entry.ListingID != 2, nil // listing 2 already queued
		},
	}

	p := &Populator{listings: listingStore, queue: queueStore, lookahead: time.Hour, scanLimit: 500, failureThreshold: 5}
	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 2, result.Enqueued)
	assert.Equal(t, 1, result.Skipped)

	calls := queueStore.EnqueueCalls()
	require.Len(t, calls, 3)

	// free listing 30h overdue: base 1 + bonus 5
	assert.Equal(t, 6, calls[0].Entry.Priority)
	assert.Equal(t, domain.TierFree, calls[0].Entry.Tier)
	// premium listing 1h overdue: base 5 + bonus 1
	assert.Equal(t, 6, calls[1].Entry.Priority)
	// premium_plus listing not yet due: base 10, no bonus, clamped at max
	assert.Equal(t, 10, calls[2].Entry.Priority)

	// scheduled_for carries the listing's own due time
	assert.Equal(t, int64(10), calls[0].Entry.UserID)
	assert.True(t, calls[2].Entry.ScheduledFor.After(calls[0].Entry.ScheduledFor))
}

func TestPopulator_RunEmpty(t *testing.T) {
	listingStore := &mocks.ListingStoreMock{
		GetDueFunc: func(ctx context.Context, now time.Time, lookahead time.Duration, maxFailures, limit int) ([]repository.Listing, error) {
			return nil, nil
		},
	}
	queueStore := &mocks.QueueStoreMock{}

	p := &Populator{listings: listingStore, queue: queueStore, lookahead: time.Hour, scanLimit: 500, failureThreshold: 5}
	result, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Scanned)
	assert.Empty(t, queueStore.EnqueueCalls())
}

func TestPopulator_RunStoreError(t *testing.T) {
	listingStore := &mocks.ListingStoreMock{
		GetDueFunc: func(ctx context.Context, now time.Time, lookahead time.Duration, maxFailures, limit int) ([]repository.Listing, error) {
			return nil, errors.New("database is locked")
		},
	}

	p := &Populator{listings: listingStore, queue: &mocks.QueueStoreMock{}, lookahead: time.Hour, scanLimit: 500, failureThreshold: 5}
	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get due listings")
}

func TestPopulator_RunEnqueueErrorAborts(t *testing.T) {
	listingStore := &mocks.ListingStoreMock{
		GetDueFunc: func(ctx context.Context, now time.Time, lookahead time.Duration, maxFailures, limit int) ([]repository.Listing, error) {
			return []repository.Listing{
				{ID: 1, Tier: domain.TierFree, NextCheckAt: now},
				{ID: 2, Tier: domain.TierFree, NextCheckAt: now},
			}, nil
		},
	}
	queueStore := &mocks.QueueStoreMock{
		EnqueueFunc: func(ctx context.Context, entry *repository.QueueEntry) (bool, error) {
			if entry.ListingID == 1 {
				return true, nil
			}
			return false, errors.New("disk I/O error")
		},
	}

	p := &Populator{listings: listingStore, queue: queueStore, lookahead: time.Hour, scanLimit: 500, failureThreshold: 5}
	result, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, result.Enqueued, "partial progress reported with the error")
}
