package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pricewatch/pkg/domain"
)

func TestCatalogRepository_Users(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	user := &User{Email: "alice@example.com", Tier: domain.TierPremiumPlus}
	require.NoError(t, repos.Catalog.CreateUser(context.Background(), user))
	assert.NotZero(t, user.ID)

	retrieved, err := repos.Catalog.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", retrieved.Email)
	assert.Equal(t, domain.TierPremiumPlus, retrieved.Tier)

	_, err = repos.Catalog.GetUser(context.Background(), 99999)
	assert.Error(t, err)

	dup := &User{Email: "alice@example.com", Tier: domain.TierFree}
	assert.Error(t, repos.Catalog.CreateUser(context.Background(), dup), "email is unique")
}

func TestCatalogRepository_Stores(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	store := &Store{
		Name:                 "Acme",
		Domain:               "acme.example.com",
		PriceSelector:        ".product-price",
		AvailabilitySelector: ".stock-status",
	}
	require.NoError(t, repos.Catalog.CreateStore(context.Background(), store))
	assert.NotZero(t, store.ID)

	retrieved, err := repos.Catalog.GetStore(context.Background(), store.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme.example.com", retrieved.Domain)
	assert.Equal(t, ".product-price", retrieved.PriceSelector)

	dup := &Store{Name: "Acme Again", Domain: "acme.example.com"}
	assert.Error(t, repos.Catalog.CreateStore(context.Background(), dup), "domain is unique")
}

func TestCatalogRepository_Usage(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	user := &User{Email: "bob@example.com", Tier: domain.TierFree}
	require.NoError(t, repos.Catalog.CreateUser(context.Background(), user))

	count, err := repos.Catalog.GetUsage(context.Background(), user.ID, "2026-01-15")
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := 0; i < 3; i++ {
		require.NoError(t, repos.Catalog.IncrementUsage(context.Background(), user.ID, "2026-01-15"))
	}
	require.NoError(t, repos.Catalog.IncrementUsage(context.Background(), user.ID, "2026-01-16"))

	count, err = repos.Catalog.GetUsage(context.Background(), user.ID, "2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "upsert accumulates per day")

	count, err = repos.Catalog.GetUsage(context.Background(), user.ID, "2026-01-16")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
