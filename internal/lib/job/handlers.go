package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
)

// InitHandlers wires the dependencies task handlers need. Call before Start.
func (j *JobService) InitHandlers(sliders SliderDeleter) {
	j.sliders = sliders
}

// handleSliderPurgeTask deletes the slider record named in the payload.
// A record that is already gone completes the task.
func (j *JobService) handleSliderPurgeTask(ctx context.Context, t *asynq.Task) error {
	var p SliderPurgePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal slider purge payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.SliderID == "" {
		return fmt.Errorf("slider purge payload without slider_id: %w", asynq.SkipRetry)
	}
	if j.sliders == nil {
		return errors.New("slider purge handler not initialized")
	}

	log := j.logger.With().
		Str("type", TaskSliderPurge).
		Str("slider_id", p.SliderID).
		Str("public_id", p.PublicID).
		Logger()

	log.Info().Msg("processing slider purge task")

	err := j.sliders.DeleteByID(ctx, p.SliderID)
	switch {
	case err == nil:
		log.Info().Msg("purged dangling slider record")
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		log.Info().Msg("slider record already removed")
		return nil
	default:
		log.Error().Err(err).Msg("failed to purge slider record")
		return err
	}
}
