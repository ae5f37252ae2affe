package repository

import (
	"context"

	"befach-store/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves the full stored product set.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// UpsertAll merges a batch of candidate products into the stored set:
	// a candidate whose id matches an existing product overwrites it
	// field by field, any other candidate is appended. Returns the size
	// of the stored set after the merge.
	UpsertAll(ctx context.Context, candidates []model.Product) (int, error)

	// DeleteByID removes a single product. Returns the new total and
	// whether the product existed.
	DeleteByID(ctx context.Context, id string) (int, bool, error)

	// DeleteByIDs removes every product whose id is in ids. Returns the
	// number removed and the new total.
	DeleteByIDs(ctx context.Context, ids []string) (int, int, error)
}

// SlideRepository defines the interface for hero slide data access operations.
type SlideRepository interface {
	// GetAll retrieves all slides in stored order.
	GetAll(ctx context.Context) ([]model.Slide, error)

	// Create appends a new slide.
	Create(ctx context.Context, slide model.Slide) error

	// Update applies a partial edit to a slide; empty update fields keep
	// the stored value. Returns nil when the slide does not exist.
	Update(ctx context.Context, id string, update model.SlideUpdate) (*model.Slide, error)

	// Delete removes a slide. Returns whether the slide existed.
	Delete(ctx context.Context, id string) (bool, error)
}
