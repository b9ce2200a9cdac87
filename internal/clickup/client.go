package clickup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrTaskNotFound the task id no longer exists in ClickUp
// (deleted out-of-band by a human in the workspace)
var ErrTaskNotFound = errors.New("clickup task not found")

// TaskPayload display payload of one ClickUp task
type TaskPayload struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Status       string        `json:"status,omitempty"`
	Priority     *int          `json:"priority,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
}

// CustomField one {field-id, value} pair; order is preserved on the wire
type CustomField struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

// createTaskResponse response of POST /list/{id}/task
type createTaskResponse struct {
	ID string `json:"id"`
}

// Client ClickUp API client
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient creates a ClickUp client
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Authorization", apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		logger:     logger,
	}
}

// CreateTask creates a new task in the given list and returns its id
func (c *Client) CreateTask(ctx context.Context, listID string, payload TaskPayload) (string, error) {
	var result createTaskResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post(fmt.Sprintf("/list/%s/task", listID))

	if err != nil {
		return "", fmt.Errorf("failed to call ClickUp create: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ClickUp create failed %d: %s", resp.StatusCode(), resp.String())
	}
	if result.ID == "" {
		return "", fmt.Errorf("ClickUp create returned no task id")
	}

	c.logger.Info("Created ClickUp task",
		zap.String("list_id", listID),
		zap.String("task_id", result.ID),
	)
	return result.ID, nil
}

// UpdateTask updates an existing task.
// Returns ErrTaskNotFound when ClickUp reports the id no longer exists.
func (c *Client) UpdateTask(ctx context.Context, taskID string, payload TaskPayload) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Put(fmt.Sprintf("/task/%s", taskID))

	if err != nil {
		return fmt.Errorf("failed to call ClickUp update: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("task %s: %w", taskID, ErrTaskNotFound)
	}
	if resp.IsError() {
		return fmt.Errorf("ClickUp update failed %d: %s", resp.StatusCode(), resp.String())
	}

	c.logger.Info("Updated ClickUp task", zap.String("task_id", taskID))
	return nil
}
