package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pricewatch/pkg/notifier"
	"github.com/umputun/pricewatch/pkg/repository"
	"github.com/umputun/pricewatch/pkg/scheduler/mocks"
)

func TestAlertEvaluator_Run(t *testing.T) {
	now := time.Now().UTC()

	watchStore := &mocks.WatchStoreMock{
		ActiveWatchesFunc: func(ctx context.Context) ([]repository.Watch, error) {
			return []repository.Watch{
				{ID: 1, UserID: 10, ListingID: 100, TargetPrice: 50}, // latest below target, never notified
				{ID: 2, UserID: 11, ListingID: 200, TargetPrice: 50}, // latest above target
				{ID: 3, UserID: 12, ListingID: 300, TargetPrice: 50}, // no observations yet
			}, nil
		},
		MarkNotifiedFunc: func(ctx context.Context, id int64, now time.Time) error { return nil },
	}
	priceStore := &mocks.PriceStoreMock{
		LatestForListingFunc: func(ctx context.Context, listingID int64) (*repository.PriceObservation, error) {
			switch listingID {
			case 100:
				return &repository.PriceObservation{ListingID: 100, Price: 45, Currency: "USD", ScrapedAt: now}, nil
			case 200:
				return &repository.PriceObservation{ListingID: 200, Price: 60, Currency: "USD", ScrapedAt: now}, nil
			default:
				return nil, nil
			}
		},
	}
	notifierMock := &mocks.NotifierMock{
		SendFunc: func(ctx context.Context, alert notifier.Alert) error { return nil },
	}

	a := &AlertEvaluator{watches: watchStore, prices: priceStore, notifier: notifierMock}
	result, err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Evaluated, "watch without observations not evaluated")
	assert.Equal(t, 1, result.Notified)

	require.Len(t, notifierMock.SendCalls(), 1)
	alert := notifierMock.SendCalls()[0].Alert
	assert.Equal(t, int64(1), alert.WatchID)
	assert.Equal(t, int64(100), alert.ListingID)
	assert.InDelta(t, 45, alert.Price, 0.001)
	assert.InDelta(t, 50, alert.TargetPrice, 0.001)

	require.Len(t, watchStore.MarkNotifiedCalls(), 1)
	assert.Equal(t, int64(1), watchStore.MarkNotifiedCalls()[0].Id)
}

func TestAlertEvaluator_EpisodeDedup(t *testing.T) {
	now := time.Now().UTC()
	notified := now.Add(-time.Hour)

	watchStore := &mocks.WatchStoreMock{
		ActiveWatchesFunc: func(ctx context.Context) ([]repository.Watch, error) {
			return []repository.Watch{
				{ID: 1, ListingID: 100, TargetPrice: 50, LastNotifiedAt: sql.NullTime{Time: notified, Valid: true}},
			}, nil
		},
		MarkNotifiedFunc: func(ctx context.Context, id int64, now time.Time) error { return nil },
	}
	priceStore := &mocks.PriceStoreMock{
		LatestForListingFunc: func(ctx context.Context, listingID int64) (*repository.PriceObservation, error) {
			return &repository.PriceObservation{ListingID: 100, Price: 45, Currency: "USD", ScrapedAt: now}, nil
		},
	}
	notifierMock := &mocks.NotifierMock{
		SendFunc: func(ctx context.Context, alert notifier.Alert) error { return nil },
	}

	a := &AlertEvaluator{watches: watchStore, prices: priceStore, notifier: notifierMock}

	t.Run("still in the same drop episode", func(t *testing.T) {
		priceStore.RoseAboveSinceFunc = func(ctx context.Context, listingID int64, threshold float64, since time.Time) (bool, error) {
			assert.Equal(t, notified, since)
			return false, nil
		}

		result, err := a.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Evaluated)
		assert.Zero(t, result.Notified, "no second notification for the same drop")
		assert.Empty(t, notifierMock.SendCalls())
	})

	t.Run("price recovered, new episode notifies", func(t *testing.T) {
		priceStore.RoseAboveSinceFunc = func(ctx context.Context, listingID int64, threshold float64, since time.Time) (bool, error) {
			return true, nil
		}

		result, err := a.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Notified)
		assert.Len(t, notifierMock.SendCalls(), 1)
	})
}

func TestAlertEvaluator_NotifyFailureRetriesNextRun(t *testing.T) {
	now := time.Now().UTC()

	watchStore := &mocks.WatchStoreMock{
		ActiveWatchesFunc: func(ctx context.Context) ([]repository.Watch, error) {
			return []repository.Watch{{ID: 1, ListingID: 100, TargetPrice: 50}}, nil
		},
		MarkNotifiedFunc: func(ctx context.Context, id int64, now time.Time) error { return nil },
	}
	priceStore := &mocks.PriceStoreMock{
		LatestForListingFunc: func(ctx context.Context, listingID int64) (*repository.PriceObservation, error) {
			return &repository.PriceObservation{ListingID: 100, Price: 45, ScrapedAt: now}, nil
		},
	}
	notifierMock := &mocks.NotifierMock{
		SendFunc: func(ctx context.Context, alert notifier.Alert) error { return errors.New("webhook returned 500") },
	}

	a := &AlertEvaluator{watches: watchStore, prices: priceStore, notifier: notifierMock}
	result, err := a.Run(context.Background())
	require.NoError(t, err, "delivery failure doesn't fail the cycle")

	assert.Zero(t, result.Notified)
	assert.Empty(t, watchStore.MarkNotifiedCalls(), "failed delivery stays unmarked for retry")
}

func TestAlertEvaluator_WatchStoreError(t *testing.T) {
	watchStore := &mocks.WatchStoreMock{
		ActiveWatchesFunc: func(ctx context.Context) ([]repository.Watch, error) {
			return nil, errors.New("database is locked")
		},
	}

	a := &AlertEvaluator{watches: watchStore, prices: &mocks.PriceStoreMock{}, notifier: &mocks.NotifierMock{}}
	_, err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get active watches")
}
