package repository

import (
	"context"
	"testing"
	"time"

	"befach-store/internal/model"
	"befach-store/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T) ProductRepository {
	t.Helper()
	s, err := store.New(t.TempDir(), zerolog.Nop(), store.CollectionProducts)
	require.NoError(t, err)
	return NewProductRepository(s, zerolog.Nop())
}

func seedProducts(t *testing.T, repo ProductRepository, products ...model.Product) {
	t.Helper()
	_, err := repo.UpsertAll(context.Background(), products)
	require.NoError(t, err)
}

func TestProductRepository_GetAll_EmptyStore(t *testing.T) {
	repo := newProductRepo(t)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products)
}

func TestProductRepository_UpsertAll_AppendsNew(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	total, err := repo.UpsertAll(ctx, []model.Product{
		{ID: "A", Name: "Alpha", Price: 1.00},
		{ID: "B", Name: "Beta", Price: 2.00},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductRepository_UpsertAll_OverwritesMatchingID(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	seedProducts(t, repo,
		model.Product{ID: "A", Name: "Alpha", Price: 1.00, Stock: 5},
		model.Product{ID: "B", Name: "Beta", Price: 2.00},
	)

	total, err := repo.UpsertAll(ctx, []model.Product{
		{ID: "A", Name: "Alpha", Price: 9.99},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total, "overwrite must not grow the set")

	updated, err := repo.GetByID(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 9.99, updated.Price)
	// Candidate wins field by field; its zero stock replaces the old value
	assert.Equal(t, 0, updated.Stock)

	untouched, err := repo.GetByID(ctx, "B")
	require.NoError(t, err)
	require.NotNil(t, untouched)
	assert.Equal(t, 2.00, untouched.Price)
}

func TestProductRepository_UpsertAll_Idempotent(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	batch := []model.Product{
		{ID: "A", Name: "Alpha", CreatedAt: time.Now()},
		{ID: "B", Name: "Beta", CreatedAt: time.Now()},
		{ID: "C", Name: "Gamma", CreatedAt: time.Now()},
	}

	first, err := repo.UpsertAll(ctx, batch)
	require.NoError(t, err)

	second, err := repo.UpsertAll(ctx, batch)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-ingesting an identical batch must not duplicate rows")
	assert.Equal(t, 3, second)
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	seedProducts(t, repo, model.Product{ID: "A", Name: "Alpha"})

	found, err := repo.GetByID(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alpha", found.Name)

	missing, err := repo.GetByID(ctx, "Z")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepository_DeleteByID(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	seedProducts(t, repo,
		model.Product{ID: "A"},
		model.Product{ID: "B"},
	)

	total, deleted, err := repo.DeleteByID(ctx, "A")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, total)

	total, deleted, err = repo.DeleteByID(ctx, "A")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, total)
}

func TestProductRepository_DeleteByIDs(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	seedProducts(t, repo,
		model.Product{ID: "A"},
		model.Product{ID: "B"},
		model.Product{ID: "C"},
	)

	deleted, total, err := repo.DeleteByIDs(ctx, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, 1, total)

	remaining, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "C", remaining[0].ID)

	// Same ids again match nothing
	deleted, total, err = repo.DeleteByIDs(ctx, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
	assert.Equal(t, 1, total)
}

func TestProductRepository_DeleteByIDs_Empty(t *testing.T) {
	repo := newProductRepo(t)

	deleted, total, err := repo.DeleteByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
	assert.Equal(t, 0, total)
}

func TestProductRepository_DeleteByIDs_UnknownIDsIgnored(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	seedProducts(t, repo, model.Product{ID: "A"}, model.Product{ID: "B"})

	deleted, total, err := repo.DeleteByIDs(ctx, []string{"A", "does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, 1, total)
}
