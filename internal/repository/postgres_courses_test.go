package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCoursesMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresCoursesRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewPostgresCoursesRepository(db)
}

func courseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "course_name", "city", "state_code", "region", "website", "phone",
		"segment", "segment_confidence", "segment_signals",
		"water_hazards", "water_hazard_rating", "opportunities", "agent_cost_usd",
		"clickup_task_id", "clickup_synced_at",
	})
}

func TestGetCourse_Success(t *testing.T) {
	db, mock, repo := setupCoursesMock(t)
	defer db.Close()

	rows := courseRows().AddRow(
		int64(42), "Pine Valley", "Richmond", "VA", "Mid-Atlantic",
		"https://pinevalley.example.com", "804-555-0101",
		"high-end", 8.5, []byte(`["private club"]`),
		6, "high", []byte(`{"ball_retrieval":8,"primary_pitch":"Premium range program"}`), 1.23,
		"task-abc", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	)

	mock.ExpectQuery(`SELECT(.+)FROM golf_courses`).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	course, err := repo.GetCourse(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), course.ID)
	assert.Equal(t, "Pine Valley", course.CourseName)
	assert.Equal(t, "VA", course.StateCode)
	assert.Equal(t, "high-end", course.Segment)
	assert.Equal(t, 8.5, course.SegmentConfidence)
	require.NotNil(t, course.WaterHazards)
	assert.Equal(t, 6, *course.WaterHazards)
	require.NotNil(t, course.ClickUpTaskID)
	assert.Equal(t, "task-abc", *course.ClickUpTaskID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourse_NotFound(t *testing.T) {
	db, mock, repo := setupCoursesMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.+)FROM golf_courses`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	course, err := repo.GetCourse(context.Background(), 99)

	assert.Nil(t, course)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourse_NullableColumns(t *testing.T) {
	db, mock, repo := setupCoursesMock(t)
	defer db.Close()

	rows := courseRows().AddRow(
		int64(7), "Muni Links", "", "MD", "", "", "",
		"unknown", 0.0, nil,
		nil, "", nil, 0.0,
		nil, nil,
	)

	mock.ExpectQuery(`SELECT(.+)FROM golf_courses`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	course, err := repo.GetCourse(context.Background(), 7)

	require.NoError(t, err)
	assert.Nil(t, course.WaterHazards)
	assert.Nil(t, course.ClickUpTaskID)
	assert.Nil(t, course.ClickUpSyncedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetClickUpTask_Course(t *testing.T) {
	db, mock, repo := setupCoursesMock(t)
	defer db.Close()

	syncedAt := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE golf_courses`).
		WithArgs(int64(42), "task-abc", syncedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetClickUpTask(context.Background(), 42, "task-abc", syncedAt)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetClickUpTask_CourseMissing(t *testing.T) {
	db, mock, repo := setupCoursesMock(t)
	defer db.Close()

	syncedAt := time.Now()
	mock.ExpectExec(`UPDATE golf_courses`).
		WithArgs(int64(99), "task-abc", syncedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetClickUpTask(context.Background(), 99, "task-abc", syncedAt)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCourses_Success(t *testing.T) {
	db, mock, repo := setupCoursesMock(t)
	defer db.Close()

	rows := courseRows().
		AddRow(int64(1), "Pine Valley", "Richmond", "VA", "", "", "",
			"high-end", 8.5, nil, 6, "high", nil, 0.9, nil, nil).
		AddRow(int64(2), "Muni Links", "Baltimore", "MD", "", "", "",
			"budget", 6.0, nil, 2, "low", nil, 0.5, nil, nil)

	mock.ExpectQuery(`SELECT(.+)FROM golf_courses(.+)ORDER BY id`).
		WillReturnRows(rows)

	courses, err := repo.ListCourses(context.Background())

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Pine Valley", courses[0].CourseName)
	assert.Equal(t, "Muni Links", courses[1].CourseName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
