package repository

import (
	"context"

	"befach-store/internal/model"
	"befach-store/internal/store"

	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface on top of
// the JSON-file record store.
type productRepository struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewProductRepository creates a new file-backed product repository.
func NewProductRepository(s *store.Store, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		store:  s,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves the full stored product set.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	r.store.Read(store.CollectionProducts, &products)
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var products []model.Product
	r.store.Read(store.CollectionProducts, &products)

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	r.logger.Debug().Str("product_id", id).Msg("product not found")
	return nil, nil
}

// UpsertAll merges candidates into the stored set under the collection
// lock so the whole read-modify-write cycle is serialised in-process.
// The store is written exactly once, after the full merge.
func (r *productRepository) UpsertAll(ctx context.Context, candidates []model.Product) (int, error) {
	r.store.Lock(store.CollectionProducts)
	defer r.store.Unlock(store.CollectionProducts)

	var products []model.Product
	r.store.Read(store.CollectionProducts, &products)

	updated := 0
	for _, candidate := range candidates {
		replaced := false
		for i := range products {
			if products[i].ID == candidate.ID {
				// Candidate wins field by field; the normaliser
				// populates every field, so this is a full overwrite.
				products[i] = candidate
				replaced = true
				updated++
				break
			}
		}
		if !replaced {
			products = append(products, candidate)
		}
	}

	if err := r.store.Write(store.CollectionProducts, products); err != nil {
		r.logger.Error().Err(err).Int("candidates", len(candidates)).Msg("failed to persist merged product set")
		return 0, model.ErrStorageUnavailable
	}

	r.logger.Info().
		Int("candidates", len(candidates)).
		Int("updated", updated).
		Int("total", len(products)).
		Msg("merged product batch")

	return len(products), nil
}

// DeleteByID removes a single product.
func (r *productRepository) DeleteByID(ctx context.Context, id string) (int, bool, error) {
	r.store.Lock(store.CollectionProducts)
	defer r.store.Unlock(store.CollectionProducts)

	var products []model.Product
	r.store.Read(store.CollectionProducts, &products)

	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			if err := r.store.Write(store.CollectionProducts, products); err != nil {
				r.logger.Error().Err(err).Str("product_id", id).Msg("failed to persist product deletion")
				return 0, false, model.ErrStorageUnavailable
			}
			return len(products), true, nil
		}
	}

	return len(products), false, nil
}

// DeleteByIDs removes every product whose id is in ids.
func (r *productRepository) DeleteByIDs(ctx context.Context, ids []string) (int, int, error) {
	if len(ids) == 0 {
		return 0, 0, nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.store.Lock(store.CollectionProducts)
	defer r.store.Unlock(store.CollectionProducts)

	var products []model.Product
	r.store.Read(store.CollectionProducts, &products)

	kept := products[:0]
	for _, p := range products {
		if _, ok := wanted[p.ID]; !ok {
			kept = append(kept, p)
		}
	}

	deleted := len(products) - len(kept)
	if deleted == 0 {
		return 0, len(products), nil
	}

	if err := r.store.Write(store.CollectionProducts, kept); err != nil {
		r.logger.Error().Err(err).Int("requested", len(ids)).Msg("failed to persist bulk product deletion")
		return 0, 0, model.ErrStorageUnavailable
	}

	r.logger.Info().
		Int("requested", len(ids)).
		Int("deleted", deleted).
		Int("total", len(kept)).
		Msg("deleted products")

	return deleted, len(kept), nil
}
