package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/deppfellow/storefront-admin/internal/database"
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/deppfellow/storefront-admin/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDatabaseURLEnv names a disposable PostgreSQL database. Its products and
// sliders tables are truncated by every test.
const testDatabaseURLEnv = "CATALOG_TEST_DATABASE_URL"

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()

	dsn := os.Getenv(testDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping PostgreSQL repository tests", testDatabaseURLEnv)
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	conn, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, database.MigrateConn(ctx, &logger, conn))
	_, err = conn.Exec(ctx, `TRUNCATE products, sliders`)
	require.NoError(t, err)
	require.NoError(t, conn.Close(ctx))

	poolConfig, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	poolConfig.AfterConnect = database.RegisterTypes

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewRepositories(&server.Server{
		Logger: &logger,
		DB:     database.FromPool(pool, &logger),
	})
}

func mug(price string) model.ProductFields {
	return model.ProductFields{
		Name:        "Mug",
		Price:       decimal.RequireFromString(price),
		Description: "Ceramic",
		Stock:       10,
		Image:       "https://host/x.jpg",
		Category:    "kitchen",
	}
}

func TestProductRepository_InsertKeepsExactPrice(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	for _, price := range []string{"9.999", "0.0001", "12345678901.5"} {
		created, err := repos.Products.Insert(ctx, mug(price))
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString(price).Equal(created.Price), "insert returned %s for %s", created.Price, price)

		got, err := repos.Products.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString(price).Equal(got.Price), "read back %s for %s", got.Price, price)
		assert.Equal(t, created.ID, got.ID)
		assert.False(t, got.CreatedAt.IsZero())
	}
}

func TestProductRepository_FindByCategory(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	kitchen, err := repos.Products.Insert(ctx, mug("9.99"))
	require.NoError(t, err)

	toy := mug("4.50")
	toy.Category = "toys"
	_, err = repos.Products.Insert(ctx, toy)
	require.NoError(t, err)

	found, err := repos.Products.Find(ctx, model.ProductFilter{Category: "kitchen"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, kitchen.ID, found[0].ID)

	all, err := repos.Products.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	created, err := repos.Products.Insert(ctx, mug("9.99"))
	require.NoError(t, err)

	updated, err := repos.Products.UpdateByID(ctx, created.ID, model.ProductFields{Name: "Big Mug"})
	require.NoError(t, err)
	assert.Equal(t, "Big Mug", updated.Name)
	assert.Empty(t, updated.Category)
	assert.True(t, updated.Price.IsZero())

	require.NoError(t, repos.Products.DeleteByID(ctx, created.ID))
	require.NoError(t, repos.Products.DeleteByID(ctx, created.ID))

	_, err = repos.Products.FindByID(ctx, created.ID)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))

	_, err = repos.Products.UpdateByID(ctx, uuid.NewString(), mug("1"))
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestSliderRepository_Lifecycle(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	first, err := repos.Sliders.Insert(ctx, "https://media.example.com/a.jpg", "catalog/a")
	require.NoError(t, err)
	second, err := repos.Sliders.Insert(ctx, "https://media.example.com/b.jpg", "catalog/b")
	require.NoError(t, err)

	all, err := repos.Sliders.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, "catalog/a", all[0].PublicID)

	require.NoError(t, repos.Sliders.DeleteByID(ctx, first.ID))

	err = repos.Sliders.DeleteByID(ctx, first.ID)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))

	got, err := repos.Sliders.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/b.jpg", got.ImageURL)
}
