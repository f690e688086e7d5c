package repository

import (
	"context"
	"testing"
	"time"

	"hedonic/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	createSchema(t, pool)

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// createSchema creates the storefront schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			tagline TEXT NOT NULL,
			description TEXT NOT NULL,
			ingredients TEXT NOT NULL,
			spirit TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
			volume TEXT NOT NULL,
			servings INTEGER NOT NULL,
			abv TEXT NOT NULL,
			image_url TEXT NOT NULL,
			color TEXT NOT NULL,
			featured BOOLEAN NOT NULL DEFAULT FALSE
		);
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			shipping_address TEXT NOT NULL,
			items TEXT NOT NULL,
			total DECIMAL(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	_, err := pool.Exec(ctx, schema)
	require.NoError(t, err)
}

func testProduct(slug string) *model.Product {
	return &model.Product{
		ID:          uuid.NewString(),
		Name:        "Test " + slug,
		Slug:        slug,
		Tagline:     "A test bottle.",
		Description: "Test description.",
		Ingredients: "Water, Sugar",
		Spirit:      "Vodka",
		Price:       29.99,
		Volume:      "750mL",
		Servings:    4,
		ABV:         "8%",
		ImageURL:    "/images/" + slug + ".png",
		Color:       "#ffffff",
		Featured:    false,
	}
}

func TestProductRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	want := testProduct("test-bottle")
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.GetByID(ctx, want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.Slug, got.Slug)
	assert.Equal(t, want.Name, got.Name)
	assert.InDelta(t, want.Price, got.Price, 0.001)
	assert.Equal(t, want.Servings, got.Servings)
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())

	got, err := repo.GetByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepository_GetBySlug(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	want := testProduct("slug-lookup")
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.GetBySlug(ctx, "slug-lookup")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)

	missing, err := repo.GetBySlug(ctx, "no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepository_GetAll_InsertionOrderAndPagination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	slugs := []string{"zeta", "alpha", "mid"}
	for _, slug := range slugs {
		require.NoError(t, repo.Create(ctx, testProduct(slug)))
	}

	all, err := repo.GetAll(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Listing preserves insertion order, not alphabetical order.
	for i, slug := range slugs {
		assert.Equal(t, slug, all[i].Slug)
	}

	page, err := repo.GetAll(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "alpha", page[0].Slug)
	assert.Equal(t, "mid", page[1].Slug)
}

func TestProductRepository_Count(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.Create(ctx, testProduct("one")))
	require.NoError(t, repo.Create(ctx, testProduct("two")))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSeedProducts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, SeedProducts(ctx, repo, zerolog.Nop()))

	products, err := repo.GetAll(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "dirty-shirley", products[0].Slug)
	assert.Equal(t, "orange-julius", products[1].Slug)
	assert.Equal(t, "mezcal-soda", products[2].Slug)

	// Seeding again is a no-op.
	require.NoError(t, SeedProducts(ctx, repo, zerolog.Nop()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
