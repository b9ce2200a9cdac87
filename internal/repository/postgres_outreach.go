package repository

import (
	"context"
	"database/sql"
	"fmt"

	"golfsync/internal/domain"
)

// PostgresOutreachRepository outreach_activities repository implementation
type PostgresOutreachRepository struct {
	db *sql.DB
}

// NewPostgresOutreachRepository creates the outreach repository
func NewPostgresOutreachRepository(db *sql.DB) *PostgresOutreachRepository {
	return &PostgresOutreachRepository{db: db}
}

var _ OutreachRepository = (*PostgresOutreachRepository)(nil)

// GetByCourse loads the zero-or-one outreach row of a course.
// Returns (nil, nil) when the course has no outreach activity yet.
func (r *PostgresOutreachRepository) GetByCourse(ctx context.Context, courseID int64) (*domain.OutreachActivity, error) {
	query := `
		SELECT
			activity_id,
			golf_course_id,
			clickup_task_id,
			clickup_synced_at,
			COALESCE(clickup_sync_status, ''),
			clickup_sync_error,
			COALESCE(outreach_type, ''),
			COALESCE(status, ''),
			COALESCE(region, ''),
			COALESCE(state_code, '')
		FROM outreach_activities
		WHERE golf_course_id = $1`

	var a domain.OutreachActivity
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(
		&a.ActivityID,
		&a.GolfCourseID,
		&a.ClickUpTaskID,
		&a.ClickUpSyncedAt,
		&a.ClickUpSyncStatus,
		&a.ClickUpSyncError,
		&a.OutreachType,
		&a.Status,
		&a.Region,
		&a.StateCode,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get outreach activity: %w", err)
	}
	return &a, nil
}

// Upsert inserts or updates the outreach row keyed by golf_course_id
func (r *PostgresOutreachRepository) Upsert(ctx context.Context, a *domain.OutreachActivity) (int64, error) {
	query := `
		INSERT INTO outreach_activities (
			golf_course_id, clickup_task_id, clickup_synced_at,
			clickup_sync_status, clickup_sync_error,
			outreach_type, status, region, state_code
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (golf_course_id)
		DO UPDATE SET clickup_task_id = EXCLUDED.clickup_task_id,
		              clickup_synced_at = EXCLUDED.clickup_synced_at,
		              clickup_sync_status = EXCLUDED.clickup_sync_status,
		              clickup_sync_error = EXCLUDED.clickup_sync_error,
		              outreach_type = EXCLUDED.outreach_type,
		              status = EXCLUDED.status,
		              region = EXCLUDED.region,
		              state_code = EXCLUDED.state_code
		RETURNING activity_id`

	var activityID int64
	err := r.db.QueryRowContext(ctx, query,
		a.GolfCourseID,
		a.ClickUpTaskID,
		a.ClickUpSyncedAt,
		a.ClickUpSyncStatus,
		a.ClickUpSyncError,
		a.OutreachType,
		a.Status,
		a.Region,
		a.StateCode,
	).Scan(&activityID)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert outreach activity: %w", err)
	}
	return activityID, nil
}
