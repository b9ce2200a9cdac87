package domain

import "time"

// Sync status values recorded on outreach_activities.clickup_sync_status
const (
	SyncStatusSynced = "synced"
	SyncStatusError  = "error"
)

// OutreachActivity one sales engagement opportunity per course
// (outreach_activities table, UNIQUE(golf_course_id)).
// A row with a non-null ClickUpTaskID represents a human-managed sales
// workflow and must never be overwritten by a re-sync (protection).
type OutreachActivity struct {
	// Primary key
	ActivityID int64 `db:"activity_id"` // BIGSERIAL, PRIMARY KEY

	// Owning course, at most one activity per course
	GolfCourseID int64 `db:"golf_course_id"` // BIGINT, NOT NULL, UNIQUE, FK golf_courses(id)

	// ClickUp linkage
	ClickUpTaskID     *string    `db:"clickup_task_id"`     // VARCHAR(20), nullable
	ClickUpSyncedAt   *time.Time `db:"clickup_synced_at"`   // TIMESTAMPTZ, nullable
	ClickUpSyncStatus string     `db:"clickup_sync_status"` // VARCHAR(20), nullable ('synced','error')
	ClickUpSyncError  *string    `db:"clickup_sync_error"`  // TEXT, nullable

	// Sales workflow
	OutreachType string `db:"outreach_type"` // VARCHAR(50), derived from top-scored opportunity
	Status       string `db:"status"`        // VARCHAR(30), free-form ('scheduled','contacted',...)
	Region       string `db:"region"`        // VARCHAR(50), nullable
	StateCode    string `db:"state_code"`    // VARCHAR(2)
}
