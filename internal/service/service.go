package service

import (
	"context"

	"befach-store/internal/model"
)

// ProductService defines read and delete operations over the catalogue.
type ProductService interface {
	// GetAll retrieves all products, optionally filtered by a
	// case-insensitive search term over name, SKU and category.
	GetAll(ctx context.Context, search string) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// DeleteByID removes one product and returns the new total.
	DeleteByID(ctx context.Context, id string) (int, error)

	// DeleteByIDs removes every product in ids and reports how many
	// actually matched.
	DeleteByIDs(ctx context.Context, ids []string) (*model.DeleteResult, error)
}

// SlideService defines hero slide lifecycle operations.
type SlideService interface {
	// GetAll retrieves all slides in stored order.
	GetAll(ctx context.Context) ([]model.Slide, error)

	// Create adds a new slide; title and subtitle fall back to the
	// storefront defaults when empty.
	Create(ctx context.Context, image, title, subtitle string) (*model.Slide, error)

	// Update applies a partial edit; empty fields keep stored values.
	Update(ctx context.Context, id string, update model.SlideUpdate) (*model.Slide, error)

	// Delete removes a slide.
	Delete(ctx context.Context, id string) error
}

// CatalogService defines the catalogue synchronization pipeline.
type CatalogService interface {
	// Ingest parses an uploaded CSV/XLSX file, normalises every row and
	// upserts the batch into the stored product set.
	Ingest(ctx context.Context, data []byte, filename string) (*model.IngestResult, error)

	// IngestFromSource runs Ingest against the configured catalogue
	// source file (local path or S3 object).
	IngestFromSource(ctx context.Context) (*model.IngestResult, error)
}
