package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskSliderPurge removes a slider record whose binary was already destroyed.
	TaskSliderPurge = "slider:purge_record"
)

// SliderPurgePayload is the JSON payload of a TaskSliderPurge task.
type SliderPurgePayload struct {
	SliderID string `json:"slider_id"`
	PublicID string `json:"public_id"`
}

// NewSliderPurgeTask builds the purge task. The task id is derived from the
// slider id so repeated enqueues for the same record collapse into one.
func NewSliderPurgeTask(sliderID, publicID string) (*asynq.Task, error) {
	payload, err := json.Marshal(SliderPurgePayload{
		SliderID: sliderID,
		PublicID: publicID,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskSliderPurge,
		payload,
		asynq.MaxRetry(10),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
		asynq.TaskID(TaskSliderPurge+":"+sliderID),
	), nil
}

// EnqueueSliderPurge schedules removal of a dangling slider record.
// A purge already queued for the same slider counts as success.
func (j *JobService) EnqueueSliderPurge(ctx context.Context, sliderID, publicID string) error {
	task, err := NewSliderPurgeTask(sliderID, publicID)
	if err != nil {
		return fmt.Errorf("failed to build slider purge task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue slider purge task: %w", err)
	}

	j.logger.Info().
		Str("type", TaskSliderPurge).
		Str("task_id", info.ID).
		Str("slider_id", sliderID).
		Msg("enqueued slider purge task")

	return nil
}
