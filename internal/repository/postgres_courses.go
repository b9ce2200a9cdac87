package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golfsync/internal/domain"
)

// PostgresCoursesRepository golf_courses repository implementation
type PostgresCoursesRepository struct {
	db *sql.DB
}

// NewPostgresCoursesRepository creates the courses repository
func NewPostgresCoursesRepository(db *sql.DB) *PostgresCoursesRepository {
	return &PostgresCoursesRepository{db: db}
}

var _ CoursesRepository = (*PostgresCoursesRepository)(nil)

const courseColumns = `
		id,
		course_name,
		COALESCE(city, ''),
		state_code,
		COALESCE(region, ''),
		COALESCE(website, ''),
		COALESCE(phone, ''),
		COALESCE(segment, ''),
		COALESCE(segment_confidence, 0),
		segment_signals,
		water_hazards,
		COALESCE(water_hazard_rating, ''),
		opportunities,
		COALESCE(agent_cost_usd, 0),
		clickup_task_id,
		clickup_synced_at`

// GetCourse loads one course row by id
func (r *PostgresCoursesRepository) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	query := `SELECT` + courseColumns + `
		FROM golf_courses
		WHERE id = $1`

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// ListCourses loads all courses ordered by id
func (r *PostgresCoursesRepository) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT` + courseColumns + `
		FROM golf_courses
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

// SetClickUpTask persists the ClickUp task id and sync timestamp
func (r *PostgresCoursesRepository) SetClickUpTask(ctx context.Context, id int64, taskID string, syncedAt time.Time) error {
	query := `
		UPDATE golf_courses
		SET clickup_task_id = $2, clickup_synced_at = $3
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, taskID, syncedAt)
	if err != nil {
		return fmt.Errorf("failed to update course clickup task: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var course domain.Course
	err := row.Scan(
		&course.ID,
		&course.CourseName,
		&course.City,
		&course.StateCode,
		&course.Region,
		&course.Website,
		&course.Phone,
		&course.Segment,
		&course.SegmentConfidence,
		(*[]byte)(&course.SegmentSignals),
		&course.WaterHazards,
		&course.WaterHazardRating,
		(*[]byte)(&course.Opportunities),
		&course.AgentCostUSD,
		&course.ClickUpTaskID,
		&course.ClickUpSyncedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}
