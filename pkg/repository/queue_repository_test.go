package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pricewatch/pkg/domain"
)

// enqueueForListing inserts a pending entry with the given schedule and priority
func enqueueForListing(t *testing.T, repos *Repositories, listing *Listing, scheduledFor time.Time, priority int) *QueueEntry {
	t.Helper()

	entry := &QueueEntry{
		ListingID:    listing.ID,
		UserID:       listing.UserID,
		Tier:         listing.Tier,
		ScheduledFor: scheduledFor,
		Priority:     priority,
	}
	inserted, err := repos.Queue.Enqueue(context.Background(), entry)
	require.NoError(t, err)
	require.True(t, inserted)
	return entry
}

func TestQueueRepository_EnqueueIdempotent(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)

	entry := &QueueEntry{
		ListingID:    listing.ID,
		UserID:       userID,
		Tier:         domain.TierFree,
		ScheduledFor: now,
		Priority:     3,
	}
	inserted, err := repos.Queue.Enqueue(context.Background(), entry)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotZero(t, entry.ID)

	// second enqueue for the same listing is a no-op while one is pending
	dup := &QueueEntry{ListingID: listing.ID, UserID: userID, Tier: domain.TierFree, ScheduledFor: now, Priority: 3}
	inserted, err = repos.Queue.Enqueue(context.Background(), dup)
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate pending entry suppressed")

	stats, err := repos.Queue.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pending)
}

func TestQueueRepository_EnqueueAfterResolve(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)

	entry := enqueueForListing(t, repos, listing, now, 3)

	claimed, err := repos.Queue.ClaimBatch(context.Background(), "worker-1", 10, 5*time.Minute, now)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// processing under a live lease still blocks a new entry
	dup := &QueueEntry{ListingID: listing.ID, UserID: userID, Tier: domain.TierFree, ScheduledFor: now, Priority: 3}
	inserted, err := repos.Queue.Enqueue(context.Background(), dup)
	require.NoError(t, err)
	assert.False(t, inserted)

	require.NoError(t, repos.Queue.MarkCompleted(context.Background(), entry.ID, now))

	// terminal entry no longer blocks
	inserted, err = repos.Queue.Enqueue(context.Background(), dup)
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestQueueRepository_EnqueueExpiredLeaseStillBlocks(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	entry := enqueueForListing(t, repos, listing, now, 5)

	claimed, err := repos.Queue.ClaimBatch(context.Background(), "crashed-worker", 10, 5*time.Minute, now)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// an abandoned claim is recovered by ClaimBatch reclaiming the same entry;
	// a second pending row would hand two workers live leases on one listing
	later := now.Add(6 * time.Minute)
	dup := &QueueEntry{ListingID: listing.ID, UserID: userID, Tier: domain.TierFree, ScheduledFor: later, Priority: 5}
	inserted, err := repos.Queue.Enqueue(context.Background(), dup)
	require.NoError(t, err)
	assert.False(t, inserted, "processing entry blocks enqueue even past its lease expiry")

	reclaimed, err := repos.Queue.ClaimBatch(context.Background(), "worker-2", 10, 5*time.Minute, later)
	require.NoError(t, err)
	require.Len(t, reclaimed, 1)
	assert.Equal(t, entry.ID, reclaimed[0].ID)

	// with the reclaim holding a live lease nothing is left for a third worker
	stolen, err := repos.Queue.ClaimBatch(context.Background(), "worker-3", 10, 5*time.Minute, later.Add(time.Second))
	require.NoError(t, err)
	assert.Empty(t, stolen, "exactly one live claim per listing")
}

func TestQueueRepository_ClaimBatch(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierPremium)
	now := time.Now().UTC()

	low := makeListing(t, repos, userID, storeID, domain.TierPremium, now)
	high := makeListing(t, repos, userID, storeID, domain.TierPremium, now)
	future := makeListing(t, repos, userID, storeID, domain.TierPremium, now)

	enqueueForListing(t, repos, low, now.Add(-time.Hour), 2)
	enqueueForListing(t, repos, high, now.Add(-time.Hour), 9)
	enqueueForListing(t, repos, future, now.Add(time.Hour), 9)

	claimed, err := repos.Queue.ClaimBatch(context.Background(), "worker-1", 10, 5*time.Minute, now)
	require.NoError(t, err)
	require.Len(t, claimed, 2, "future entry not claimable yet")

	// highest priority first
	assert.Equal(t, high.ID, claimed[0].ListingID)
	assert.Equal(t, low.ID, claimed[1].ListingID)

	for _, entry := range claimed {
		assert.Equal(t, StatusProcessing, entry.Status)
		assert.Equal(t, 1, entry.Attempts)
		assert.True(t, entry.LockedBy.Valid)
		assert.Contains(t, entry.LockedBy.String, "worker-1")
		assert.True(t, entry.LeaseExpiry.Valid)
	}

	// nothing left for a second claimer
	claimed2, err := repos.Queue.ClaimBatch(context.Background(), "worker-2", 10, 5*time.Minute, now)
	require.NoError(t, err)
	assert.Empty(t, claimed2, "claimed entries invisible to other workers")
}

func TestQueueRepository_ClaimBatchDisjoint(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()

	for i := 0; i < 6; i++ {
		listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)
		enqueueForListing(t, repos, listing, now.Add(-time.Minute), 5)
	}

	first, err := repos.Queue.ClaimBatch(context.Background(), "worker-1", 4, 5*time.Minute, now)
	require.NoError(t, err)
	second, err := repos.Queue.ClaimBatch(context.Background(), "worker-2", 4, 5*time.Minute, now.Add(time.Millisecond))
	require.NoError(t, err)

	assert.Len(t, first, 4)
	assert.Len(t, second, 2)

	seen := make(map[int64]bool)
	for _, entry := range append(first, second...) {
		assert.False(t, seen[entry.ID], "entry %d claimed twice", entry.ID)
		seen[entry.ID] = true
	}
}

func TestQueueRepository_ClaimBatchExpiredLease(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	entry := enqueueForListing(t, repos, listing, now, 5)

	claimed, err := repos.Queue.ClaimBatch(context.Background(), "crashed-worker", 10, 5*time.Minute, now)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// before lease expiry nobody can steal it
	stolen, err := repos.Queue.ClaimBatch(context.Background(), "worker-2", 10, 5*time.Minute, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, stolen)

	// after expiry the entry is reclaimable, attempts keeps growing
	later := now.Add(6 * time.Minute)
	reclaimed, err := repos.Queue.ClaimBatch(context.Background(), "worker-2", 10, 5*time.Minute, later)
	require.NoError(t, err)
	require.Len(t, reclaimed, 1)
	assert.Equal(t, entry.ID, reclaimed[0].ID)
	assert.Equal(t, 2, reclaimed[0].Attempts)
	assert.Contains(t, reclaimed[0].LockedBy.String, "worker-2")
}

func TestQueueRepository_ResolveIdempotent(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	entry := enqueueForListing(t, repos, listing, now, 5)

	_, err := repos.Queue.ClaimBatch(context.Background(), "worker-1", 10, 5*time.Minute, now)
	require.NoError(t, err)

	require.NoError(t, repos.Queue.MarkCompleted(context.Background(), entry.ID, now))

	resolved, err := repos.Queue.Get(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, resolved.Status)
	assert.True(t, resolved.ProcessedAt.Valid)
	assert.False(t, resolved.LockedBy.Valid, "lock cleared on resolve")
	assert.False(t, resolved.LeaseExpiry.Valid)

	// a late failure report from a stale worker changes nothing
	require.NoError(t, repos.Queue.MarkFailed(context.Background(), entry.ID, "stale report", now))

	unchanged, err := repos.Queue.Get(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, unchanged.Status)
	assert.False(t, unchanged.ErrorMessage.Valid)
}

func TestQueueRepository_MarkFailed(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	entry := enqueueForListing(t, repos, listing, now, 5)

	_, err := repos.Queue.ClaimBatch(context.Background(), "worker-1", 10, 5*time.Minute, now)
	require.NoError(t, err)

	require.NoError(t, repos.Queue.MarkFailed(context.Background(), entry.ID, "connection refused", now))

	failed, err := repos.Queue.Get(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "connection refused", failed.ErrorMessage.String)
}

func TestQueueRepository_Stats(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC().Truncate(time.Second)

	stats, err := repos.Queue.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Pending)
	assert.False(t, stats.OldestPending.Valid, "no oldest pending on empty queue")

	oldest := now.Add(-2 * time.Hour)
	l1 := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	l2 := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	l3 := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	enqueueForListing(t, repos, l1, oldest, 5)
	enqueueForListing(t, repos, l2, now, 5)
	e3 := enqueueForListing(t, repos, l3, now.Add(-time.Hour), 9) // claimed first on priority

	_, err = repos.Queue.ClaimBatch(context.Background(), "worker-1", 1, 5*time.Minute, now)
	require.NoError(t, err)
	require.NoError(t, repos.Queue.MarkFailed(context.Background(), e3.ID, "boom", now))

	stats, err = repos.Queue.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 0, stats.Processing)
	assert.Equal(t, 0, stats.Completed)
	assert.Equal(t, 1, stats.Failed)
	require.True(t, stats.OldestPending.Valid)
	assert.Equal(t, oldest, stats.OldestPending.Time.UTC())
}

func TestQueueRepository_DeleteTerminalBefore(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()

	l1 := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	l2 := makeListing(t, repos, userID, storeID, domain.TierFree, now)
	old := enqueueForListing(t, repos, l1, now.Add(-time.Hour), 5)
	fresh := enqueueForListing(t, repos, l2, now.Add(-time.Hour), 5)

	_, err := repos.Queue.ClaimBatch(context.Background(), "worker-1", 10, 5*time.Minute, now)
	require.NoError(t, err)
	require.NoError(t, repos.Queue.MarkCompleted(context.Background(), old.ID, now.Add(-72*time.Hour)))
	require.NoError(t, repos.Queue.MarkCompleted(context.Background(), fresh.ID, now))

	deleted, err := repos.Queue.DeleteTerminalBefore(context.Background(), now.Add(-48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repos.Queue.Get(context.Background(), old.ID)
	assert.Error(t, err, "old terminal entry removed")
	_, err = repos.Queue.Get(context.Background(), fresh.ID)
	assert.NoError(t, err, "recent entry retained")
}

func TestQueueRepository_PendingForListing(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	userID, _, storeID := makeFixtures(t, repos, domain.TierFree)
	now := time.Now().UTC()
	listing := makeListing(t, repos, userID, storeID, domain.TierFree, now)

	pending, err := repos.Queue.PendingForListing(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.False(t, pending)

	enqueueForListing(t, repos, listing, now, 5)

	pending, err = repos.Queue.PendingForListing(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.True(t, pending)
}
