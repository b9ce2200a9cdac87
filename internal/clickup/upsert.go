package clickup

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Action outcome tag of one task upsert
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionProtected Action = "protected"
)

// UpsertResult tagged result of UpsertTask
type UpsertResult struct {
	TaskID string `json:"taskId"`
	Action Action `json:"action"`
}

// UpsertError both the update attempt and the create fallback failed
type UpsertError struct {
	UpdateErr error
	CreateErr error
}

func (e *UpsertError) Error() string {
	return fmt.Sprintf("both update and create failed: update: %v; create: %v", e.UpdateErr, e.CreateErr)
}

func (e *UpsertError) Unwrap() error { return e.CreateErr }

// Upserter idempotent create-or-update of one task
type Upserter interface {
	UpsertTask(ctx context.Context, payload TaskPayload, knownTaskID string, listID string) (UpsertResult, error)
}

var _ Upserter = (*Client)(nil)

// UpsertTask performs an idempotent create-or-update against ClickUp.
//
// No known task id: create. Known task id: try update; when ClickUp
// reports the task missing (deleted out-of-band by a human) fall back to
// create so the sync self-heals instead of aborting. Any other update
// failure also falls back to create as a last resort; if that create
// fails too, the returned error carries both causes.
//
// Persisting the returned task id into the domain store is the caller's
// responsibility.
func (c *Client) UpsertTask(ctx context.Context, payload TaskPayload, knownTaskID string, listID string) (UpsertResult, error) {
	if knownTaskID == "" {
		c.logger.Info("No existing task, creating new",
			zap.String("list_id", listID),
			zap.String("task_name", payload.Name),
		)
		taskID, err := c.CreateTask(ctx, listID, payload)
		if err != nil {
			return UpsertResult{}, err
		}
		return UpsertResult{TaskID: taskID, Action: ActionCreated}, nil
	}

	updateErr := c.UpdateTask(ctx, knownTaskID, payload)
	if updateErr == nil {
		return UpsertResult{TaskID: knownTaskID, Action: ActionUpdated}, nil
	}

	if errors.Is(updateErr, ErrTaskNotFound) {
		c.logger.Warn("Task deleted in ClickUp, creating new",
			zap.String("task_id", knownTaskID),
			zap.String("list_id", listID),
		)
	} else {
		c.logger.Error("Update failed, falling back to create",
			zap.String("task_id", knownTaskID),
			zap.Error(updateErr),
		)
	}

	taskID, createErr := c.CreateTask(ctx, listID, payload)
	if createErr != nil {
		return UpsertResult{}, &UpsertError{UpdateErr: updateErr, CreateErr: createErr}
	}
	return UpsertResult{TaskID: taskID, Action: ActionCreated}, nil
}
