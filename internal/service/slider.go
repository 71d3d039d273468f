package service

import (
	"context"

	"github.com/deppfellow/storefront-admin/internal/errs"
	"github.com/deppfellow/storefront-admin/internal/media"
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/rs/zerolog"
)

type SliderService struct {
	logger *zerolog.Logger
	store  SliderStore
	media  media.Host
	purger PurgeEnqueuer
}

func NewSliderService(logger *zerolog.Logger, store SliderStore, host media.Host, purger PurgeEnqueuer) *SliderService {
	return &SliderService{
		logger: logger,
		store:  store,
		media:  host,
		purger: purger,
	}
}

// Upload stores the binary on the Media Host and records it as a slider.
// If the record cannot be saved the uploaded binary is destroyed again.
func (s *SliderService) Upload(ctx context.Context, localPath string) (*model.Slider, error) {
	log := loggerFrom(ctx, s.logger)

	res, err := s.media.Upload(ctx, localPath)
	if err != nil {
		return nil, errs.NewUploadError("Server error", err)
	}

	slider, err := s.store.Insert(ctx, res.SecureURL, res.PublicID)
	if err != nil {
		if derr := s.media.Destroy(ctx, res.PublicID); derr != nil {
			log.Error().
				Err(derr).
				Str("public_id", res.PublicID).
				Msg("failed to remove uploaded slider image after insert failure")
		}
		return nil, persistenceError("Server error", err)
	}

	log.Info().
		Str("event", "slider_uploaded").
		Str("slider_id", slider.ID).
		Str("public_id", slider.PublicID).
		Msg("slider image uploaded")

	return slider, nil
}

// Delete destroys the binary first and removes the record only once that
// succeeded. A record whose delete fails after the binary is gone is handed
// to a background purge and reported as a partial failure.
func (s *SliderService) Delete(ctx context.Context, id string) error {
	log := loggerFrom(ctx, s.logger).With().Str("slider_id", id).Logger()

	slider, err := s.store.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return errs.NewNotFoundError("Image not found", true, nil)
		}
		return persistenceError("Server error", err)
	}

	if slider.PublicID == "" {
		log.Warn().Msg("slider has no public id, skipping media host delete")
	} else if err := s.media.Destroy(ctx, slider.PublicID); err != nil {
		return errs.NewMediaDeleteError("Failed to delete image from media host", err)
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		if isNotFound(err) {
			// Removed concurrently; the end state is what the caller asked for.
			return nil
		}

		log.Error().
			Err(err).
			Str("public_id", slider.PublicID).
			Msg("slider image destroyed but record delete failed")

		if s.purger != nil {
			if qerr := s.purger.EnqueueSliderPurge(ctx, id, slider.PublicID); qerr != nil {
				log.Error().Err(qerr).Msg("failed to enqueue slider purge")
			}
		}

		return errs.NewPartialFailureError("Image deleted from media host but its record could not be removed", err)
	}

	log.Info().
		Str("event", "slider_deleted").
		Str("public_id", slider.PublicID).
		Msg("slider image deleted")

	return nil
}

// List returns every slider in insertion order, or an empty slice.
func (s *SliderService) List(ctx context.Context) ([]model.Slider, error) {
	sliders, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, persistenceError("Server error", err)
	}

	if sliders == nil {
		sliders = []model.Slider{}
	}
	return sliders, nil
}
