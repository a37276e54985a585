// Package scheduler moves estimate archiving off the request path. The API
// enqueues one asynq task per completed estimate and cmd/worker writes it to
// Postgres.
package scheduler

import (
	"encoding/json"
	"errors"
	"fmt"

	"homeverse_backend/internal/history/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskPersistEstimate archives one estimate.
const TaskPersistEstimate = "estimates.persist"

var errInvalidEstimate = errors.New("invalid estimate payload")

type PersistEstimatePayload struct {
	Estimate repository.Estimate `json:"estimate"`
}

func (p PersistEstimatePayload) validate() error {
	switch {
	case p.Estimate.ID == uuid.Nil:
		return fmt.Errorf("%w: missing id", errInvalidEstimate)
	case p.Estimate.FinalPrice <= 0:
		return fmt.Errorf("%w: non-positive price", errInvalidEstimate)
	}
	return nil
}

func NewPersistEstimateTask(payload PersistEstimatePayload) (*asynq.Task, error) {
	if err := payload.validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPersistEstimate, data), nil
}

// ParsePersistEstimatePayload decodes and validates a task payload. Errors
// are permanent; retrying the same bytes cannot succeed.
func ParsePersistEstimatePayload(task *asynq.Task) (PersistEstimatePayload, error) {
	var payload PersistEstimatePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return PersistEstimatePayload{}, fmt.Errorf("%w: %v", errInvalidEstimate, err)
	}
	if err := payload.validate(); err != nil {
		return PersistEstimatePayload{}, err
	}
	return payload, nil
}
