package service

import (
	"context"
	"fmt"
	"strings"

	"befach-store/internal/model"
	"befach-store/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products, optionally filtered by a search term.
func (s *productService) GetAll(ctx context.Context, search string) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.SKU), term) ||
				strings.Contains(strings.ToLower(p.Category), term) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("search", search).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// DeleteByID removes one product and returns the new total.
func (s *productService) DeleteByID(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, model.ErrProductNotFound
	}

	total, deleted, err := s.productRepo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return 0, fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Str("product_id", id).Msg("product not found for deletion")
		return 0, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Int("total", total).Msg("deleted product")
	return total, nil
}

// DeleteByIDs removes every product in ids.
func (s *productService) DeleteByIDs(ctx context.Context, ids []string) (*model.DeleteResult, error) {
	deleted, total, err := s.productRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to delete products")
		return nil, fmt.Errorf("failed to delete products: %w", err)
	}

	if deleted == 0 {
		s.logger.Debug().Int("requested", len(ids)).Msg("no products matched for deletion")
		return nil, model.ErrNothingDeleted
	}

	return &model.DeleteResult{DeletedCount: deleted, Total: total}, nil
}
