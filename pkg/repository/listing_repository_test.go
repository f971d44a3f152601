package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pricewatch/pkg/domain"
)

func TestListingRepository_Create(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, productID, storeID := makeFixtures(t, repos, domain.TierPremium)

	listing := &Listing{
		ProductID: productID,
		StoreID:   storeID,
		UserID:    userID,
		URL:       "https://example.com/widget",
		Tier:      domain.TierPremium,
	}
	err := repos.Listing.Create(context.Background(), listing)
	require.NoError(t, err)
	assert.NotZero(t, listing.ID)

	retrieved, err := repos.Listing.Get(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.URL, retrieved.URL)
	assert.Equal(t, domain.TierPremium, retrieved.Tier)
	assert.Equal(t, 6, retrieved.CheckIntervalHours, "interval defaults from tier policy")
	assert.True(t, retrieved.IsActive)
	assert.False(t, retrieved.NextCheckAt.IsZero(), "zero next check means due now")
	assert.Zero(t, retrieved.ConsecutiveFailures)
}

func TestListingRepository_GetWithStore(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, time.Now().UTC())

	withStore, err := repos.Listing.GetWithStore(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, withStore.ID)
	assert.Equal(t, "store-free.example.com", withStore.StoreDomain)
	assert.Equal(t, ".price", withStore.PriceSelector)

	_, err = repos.Listing.GetWithStore(context.Background(), 99999)
	assert.Error(t, err)
}

func TestListingRepository_GetDue(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()

	overdue := makeListing(t, repos, userID, storeID, domain.TierFree, now.Add(-2*time.Hour))
	soon := makeListing(t, repos, userID, storeID, domain.TierFree, now.Add(30*time.Minute))
	farFuture := makeListing(t, repos, userID, storeID, domain.TierFree, now.Add(48*time.Hour))

	t.Run("lookahead window includes soon-due listings", func(t *testing.T) {
		due, err := repos.Listing.GetDue(context.Background(), now, time.Hour, 5, 100)
		require.NoError(t, err)
		require.Len(t, due, 2)
		// ordered by next_check_at ascending, most overdue first
		assert.Equal(t, overdue.ID, due[0].ID)
		assert.Equal(t, soon.ID, due[1].ID)
	})

	t.Run("zero lookahead excludes future listings", func(t *testing.T) {
		due, err := repos.Listing.GetDue(context.Background(), now, 0, 5, 100)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, overdue.ID, due[0].ID)
	})

	t.Run("limit caps the scan", func(t *testing.T) {
		due, err := repos.Listing.GetDue(context.Background(), now, time.Hour, 5, 1)
		require.NoError(t, err)
		assert.Len(t, due, 1)
	})

	t.Run("listings at the failure threshold are skipped", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			_, _, err := repos.Listing.MarkFailed(context.Background(), overdue.ID, 100, now)
			require.NoError(t, err)
		}
		due, err := repos.Listing.GetDue(context.Background(), now, time.Hour, 5, 100)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, soon.ID, due[0].ID)
	})

	_ = farFuture
}

func TestListingRepository_MarkChecked(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierPremium)
	now := time.Now().UTC().Truncate(time.Second)
	listing := makeListing(t, repos, userID, storeID, domain.TierPremium, now.Add(-time.Hour))

	// build up a failure streak first
	_, _, err := repos.Listing.MarkFailed(context.Background(), listing.ID, 5, now)
	require.NoError(t, err)

	err = repos.Listing.MarkChecked(context.Background(), listing.ID, now, 6*time.Hour)
	require.NoError(t, err)

	updated, err := repos.Listing.Get(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Zero(t, updated.ConsecutiveFailures, "success resets the streak")
	assert.True(t, updated.LastCheckedAt.Valid)
	assert.Equal(t, now.Add(6*time.Hour), updated.NextCheckAt.UTC())
}

func TestListingRepository_MarkFailed(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)

	for i := 1; i < 5; i++ {
		failures, active, err := repos.Listing.MarkFailed(context.Background(), listing.ID, 5, now)
		require.NoError(t, err)
		assert.Equal(t, i, failures)
		assert.True(t, active, "listing stays active below the threshold")
	}

	// fifth failure hits the threshold
	failures, active, err := repos.Listing.MarkFailed(context.Background(), listing.ID, 5, now)
	require.NoError(t, err)
	assert.Equal(t, 5, failures)
	assert.False(t, active, "listing deactivated at the threshold")

	due, err := repos.Listing.GetDue(context.Background(), now, time.Hour, 5, 100)
	require.NoError(t, err)
	assert.Empty(t, due, "deactivated listing no longer scheduled")
}

func TestListingRepository_Reset(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)

	for i := 0; i < 5; i++ {
		_, _, err := repos.Listing.MarkFailed(context.Background(), listing.ID, 5, now)
		require.NoError(t, err)
	}

	err := repos.Listing.Reset(context.Background(), listing.ID, now)
	require.NoError(t, err)

	updated, err := repos.Listing.Get(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Zero(t, updated.ConsecutiveFailures)

	err = repos.Listing.Reset(context.Background(), 99999, now)
	assert.Error(t, err, "reset of missing listing reports not found")
}

func TestListingRepository_CountActiveForUser(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()

	count, err := repos.Listing.CountActiveForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, count)

	makeListing(t, repos, userID, storeID, domain.TierFree, now)
	deactivated := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	for i := 0; i < 5; i++ {
		_, _, err := repos.Listing.MarkFailed(context.Background(), deactivated.ID, 5, now)
		require.NoError(t, err)
	}

	count, err = repos.Listing.CountActiveForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "deactivated listings don't count against the cap")
}

func TestListingRepository_UpdateTier(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	assert.Equal(t, 24, listing.CheckIntervalHours)

	err := repos.Listing.UpdateTier(context.Background(), listing.ID, domain.TierPremiumPlus, now)
	require.NoError(t, err)

	updated, err := repos.Listing.Get(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TierPremiumPlus, updated.Tier)
	assert.Equal(t, 1, updated.CheckIntervalHours)
}
