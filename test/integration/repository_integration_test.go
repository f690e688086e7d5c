package integration

import (
	"context"
	"testing"
	"time"

	"hedonic/internal/model"
	"hedonic/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns seeded products in insertion order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Pool)

		products, err := repo.GetAll(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, products, 5)
		assert.Equal(t, "P001", products[0].ID)
		assert.Equal(t, "P005", products[4].ID)
	})

	t.Run("GetAll with pagination", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Pool)

		products, err := repo.GetAll(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, products, 2)

		products, err = repo.GetAll(ctx, 2, 2)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("GetByID returns correct product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Pool)

		product, err := repo.GetByID(ctx, "P001")
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "P001", product.ID)
		assert.Equal(t, "Dirty Shirley", product.Name)
		assert.InDelta(t, 29.99, product.Price, 0.001)
	})

	t.Run("GetByID returns nil for non-existent product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product, err := repo.GetByID(ctx, "P999")
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("GetBySlug returns correct product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Pool)

		product, err := repo.GetBySlug(ctx, "spicy-paloma")
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "P004", product.ID)
	})

	t.Run("Count reflects the seeded catalogue", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Pool)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(testDB.Pool, logger)

	ctx := context.Background()

	newOrder := func() *model.Order {
		return &model.Order{
			ID:              uuid.New(),
			CustomerName:    "Ada Lovelace",
			CustomerEmail:   "ada@example.com",
			ShippingAddress: "123 Main St, Austin, TX 78701",
			Items:           `[{"productId":"P001","name":"Dirty Shirley","quantity":2,"price":29.99}]`,
			Total:           63.73,
			Status:          model.OrderStatusPending,
			CreatedAt:       time.Now().UTC(),
		}
	}

	t.Run("Create and GetByID round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		want := newOrder()
		require.NoError(t, repo.Create(ctx, want))

		got, err := repo.GetByID(ctx, want.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.CustomerEmail, got.CustomerEmail)
		assert.Equal(t, want.Items, got.Items)
		assert.InDelta(t, want.Total, got.Total, 0.001)
		assert.Equal(t, model.OrderStatusPending, got.Status)
	})

	t.Run("GetByID returns nil for non-existent order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("GetAll returns newest orders first", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		older := newOrder()
		older.CreatedAt = time.Now().UTC().Add(-time.Hour)
		newer := newOrder()

		require.NoError(t, repo.Create(ctx, older))
		require.NoError(t, repo.Create(ctx, newer))

		orders, err := repo.GetAll(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, newer.ID, orders[0].ID)
		assert.Equal(t, older.ID, orders[1].ID)
	})

	t.Run("Count tracks persisted orders", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		require.NoError(t, repo.Create(ctx, newOrder()))

		count, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
