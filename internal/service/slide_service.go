package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"befach-store/internal/model"
	"befach-store/internal/repository"

	"github.com/rs/zerolog"
)

// Defaults applied when a new slide omits its copy.
const (
	defaultSlideTitle    = "Welcome to BEFACH"
	defaultSlideSubtitle = "Empowering Your Business Growth"
)

// slideService implements SlideService.
type slideService struct {
	slideRepo repository.SlideRepository
	logger    zerolog.Logger
}

// NewSlideService creates a new slide service.
func NewSlideService(slideRepo repository.SlideRepository, logger zerolog.Logger) SlideService {
	return &slideService{
		slideRepo: slideRepo,
		logger:    logger.With().Str("service", "slide").Logger(),
	}
}

// GetAll retrieves all slides in stored order.
func (s *slideService) GetAll(ctx context.Context) ([]model.Slide, error) {
	slides, err := s.slideRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get slides")
		return nil, fmt.Errorf("failed to get slides: %w", err)
	}
	return slides, nil
}

// Create adds a new slide with defaulted copy and a time-derived id.
func (s *slideService) Create(ctx context.Context, image, title, subtitle string) (*model.Slide, error) {
	if image == "" {
		return nil, model.ErrImageRequired
	}

	if title == "" {
		title = defaultSlideTitle
	}
	if subtitle == "" {
		subtitle = defaultSlideSubtitle
	}

	slide := model.Slide{
		ID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
		Image:    image,
		Title:    title,
		Subtitle: subtitle,
	}

	if err := s.slideRepo.Create(ctx, slide); err != nil {
		s.logger.Error().Err(err).Str("slide_id", slide.ID).Msg("failed to create slide")
		return nil, fmt.Errorf("failed to create slide: %w", err)
	}

	return &slide, nil
}

// Update applies a partial edit to a slide.
func (s *slideService) Update(ctx context.Context, id string, update model.SlideUpdate) (*model.Slide, error) {
	if id == "" {
		return nil, model.ErrSlideNotFound
	}

	slide, err := s.slideRepo.Update(ctx, id, update)
	if err != nil {
		s.logger.Error().Err(err).Str("slide_id", id).Msg("failed to update slide")
		return nil, fmt.Errorf("failed to update slide: %w", err)
	}

	if slide == nil {
		s.logger.Debug().Str("slide_id", id).Msg("slide not found")
		return nil, model.ErrSlideNotFound
	}

	s.logger.Info().Str("slide_id", id).Msg("updated slide")
	return slide, nil
}

// Delete removes a slide.
func (s *slideService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrSlideNotFound
	}

	deleted, err := s.slideRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("slide_id", id).Msg("failed to delete slide")
		return fmt.Errorf("failed to delete slide: %w", err)
	}

	if !deleted {
		s.logger.Debug().Str("slide_id", id).Msg("slide not found for deletion")
		return model.ErrSlideNotFound
	}

	s.logger.Info().Str("slide_id", id).Msg("deleted slide")
	return nil
}
