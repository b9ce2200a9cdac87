package mqtt

import (
	"context"
	"encoding/json"
	"fmt"

	"golfsync/internal/store"
	syncsvc "golfsync/internal/sync"

	"go.uber.org/zap"
)

// CourseSyncer is the orchestrator surface the trigger needs
type CourseSyncer interface {
	SyncCourse(ctx context.Context, req syncsvc.Request) (*syncsvc.Report, error)
}

// Trigger consumes enrichment-complete events as an alternative to the
// HTTP webhook. The pipeline publishes the same JSON body to the topic
// that it would post to /sync/api/v1/courses/sync; behavior is
// identical except there is no response channel, so the report only
// lands in the cache.
type Trigger struct {
	client *Client
	topic  string
	syncer CourseSyncer
	kv     store.KV
	logger *zap.Logger
}

func NewTrigger(client *Client, topic string, syncer CourseSyncer, kv store.KV, logger *zap.Logger) *Trigger {
	return &Trigger{
		client: client,
		topic:  topic,
		syncer: syncer,
		kv:     kv,
		logger: logger,
	}
}

// Start subscribes and blocks until the context is canceled
func (t *Trigger) Start(ctx context.Context) error {
	if err := t.client.Subscribe(t.topic, 1, t.handleMessage); err != nil {
		return fmt.Errorf("failed to subscribe to trigger topic: %w", err)
	}

	t.logger.Info("MQTT trigger started", zap.String("topic", t.topic))

	<-ctx.Done()
	return nil
}

func (t *Trigger) Stop(ctx context.Context) error {
	if err := t.client.Unsubscribe(t.topic); err != nil {
		t.logger.Error("Failed to unsubscribe", zap.Error(err))
	}

	t.logger.Info("MQTT trigger stopped")
	return nil
}

func (t *Trigger) handleMessage(topic string, payload []byte) error {
	var req syncsvc.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal trigger message: %w", err)
	}
	if req.CourseID <= 0 {
		return fmt.Errorf("trigger message missing course_id: %s", string(payload))
	}

	t.logger.Info("Enrichment-complete event received",
		zap.String("topic", topic),
		zap.Int64("course_id", req.CourseID),
	)

	ctx := context.Background()
	report, err := t.syncer.SyncCourse(ctx, req)
	if err != nil {
		return fmt.Errorf("sync failed for course %d: %w", req.CourseID, err)
	}

	if raw, err := json.Marshal(report); err == nil {
		if err := t.kv.Set(ctx, store.ReportKey(report.CourseID), string(raw), store.ReportTTL); err != nil {
			t.logger.Warn("Report cache write failed",
				zap.Int64("course_id", report.CourseID),
				zap.Error(err),
			)
		}
	}

	t.logger.Info("Sync triggered by MQTT complete",
		zap.Int64("course_id", req.CourseID),
		zap.Bool("success", report.Success),
		zap.Int("errors", len(report.Results.Errors)),
	)
	return nil
}
