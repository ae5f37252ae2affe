package repository

import (
	"context"

	"befach-store/internal/model"
	"befach-store/internal/store"

	"github.com/rs/zerolog"
)

// slideRepository implements the SlideRepository interface on top of the
// JSON-file record store.
type slideRepository struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewSlideRepository creates a new file-backed slide repository.
func NewSlideRepository(s *store.Store, logger zerolog.Logger) SlideRepository {
	return &slideRepository{
		store:  s,
		logger: logger.With().Str("repository", "slide").Logger(),
	}
}

// GetAll retrieves all slides in stored order.
func (r *slideRepository) GetAll(ctx context.Context) ([]model.Slide, error) {
	slides := []model.Slide{}
	r.store.Read(store.CollectionSlider, &slides)
	return slides, nil
}

// Create appends a new slide.
func (r *slideRepository) Create(ctx context.Context, slide model.Slide) error {
	r.store.Lock(store.CollectionSlider)
	defer r.store.Unlock(store.CollectionSlider)

	var slides []model.Slide
	r.store.Read(store.CollectionSlider, &slides)

	slides = append(slides, slide)

	if err := r.store.Write(store.CollectionSlider, slides); err != nil {
		r.logger.Error().Err(err).Str("slide_id", slide.ID).Msg("failed to persist new slide")
		return model.ErrStorageUnavailable
	}

	r.logger.Info().Str("slide_id", slide.ID).Int("total", len(slides)).Msg("created slide")
	return nil
}

// Update applies a partial edit; empty update fields keep the stored value.
func (r *slideRepository) Update(ctx context.Context, id string, update model.SlideUpdate) (*model.Slide, error) {
	r.store.Lock(store.CollectionSlider)
	defer r.store.Unlock(store.CollectionSlider)

	var slides []model.Slide
	r.store.Read(store.CollectionSlider, &slides)

	for i := range slides {
		if slides[i].ID != id {
			continue
		}

		if update.Title != "" {
			slides[i].Title = update.Title
		}
		if update.Subtitle != "" {
			slides[i].Subtitle = update.Subtitle
		}
		if update.Image != "" {
			slides[i].Image = update.Image
		}

		if err := r.store.Write(store.CollectionSlider, slides); err != nil {
			r.logger.Error().Err(err).Str("slide_id", id).Msg("failed to persist slide update")
			return nil, model.ErrStorageUnavailable
		}

		return &slides[i], nil
	}

	r.logger.Debug().Str("slide_id", id).Msg("slide not found")
	return nil, nil
}

// Delete removes a slide.
func (r *slideRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.store.Lock(store.CollectionSlider)
	defer r.store.Unlock(store.CollectionSlider)

	var slides []model.Slide
	r.store.Read(store.CollectionSlider, &slides)

	for i := range slides {
		if slides[i].ID == id {
			slides = append(slides[:i], slides[i+1:]...)
			if err := r.store.Write(store.CollectionSlider, slides); err != nil {
				r.logger.Error().Err(err).Str("slide_id", id).Msg("failed to persist slide deletion")
				return false, model.ErrStorageUnavailable
			}
			return true, nil
		}
	}

	return false, nil
}
