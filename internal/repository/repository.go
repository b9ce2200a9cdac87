package repository

import (
	"context"
	"errors"
	"time"

	"golfsync/internal/domain"
)

// ErrNotFound is returned when a referenced domain row does not exist
var ErrNotFound = errors.New("not found")

// CoursesRepository data access for golf_courses
// Repository layer only does data access; sync semantics live in the
// sync package.
type CoursesRepository interface {
	// GetCourse loads one course row by id (ErrNotFound when absent)
	GetCourse(ctx context.Context, id int64) (*domain.Course, error)

	// ListCourses loads all courses ordered by id (lead export)
	ListCourses(ctx context.Context) ([]*domain.Course, error)

	// SetClickUpTask persists the external task id and sync timestamp
	// after a successful upsert
	SetClickUpTask(ctx context.Context, id int64, taskID string, syncedAt time.Time) error
}

// ContactsRepository data access for golf_course_contacts
type ContactsRepository interface {
	// ListByCourse loads all contacts of a course ordered by contact_id.
	// Insertion order under the serial key defines the "primary contact"
	// convention (element 0) used by the outreach projection. There is no
	// explicit primary flag in the schema; callers should treat ordering
	// here as load-bearing.
	ListByCourse(ctx context.Context, courseID int64) ([]*domain.Contact, error)

	// ListContacts loads all contacts ordered by contact_id (lead export)
	ListContacts(ctx context.Context) ([]*domain.Contact, error)

	// SetClickUpTask persists the external task id and sync timestamp
	SetClickUpTask(ctx context.Context, contactID int64, taskID string, syncedAt time.Time) error
}

// OutreachRepository data access for outreach_activities
type OutreachRepository interface {
	// GetByCourse loads the zero-or-one outreach row of a course;
	// returns (nil, nil) when no row exists
	GetByCourse(ctx context.Context, courseID int64) (*domain.OutreachActivity, error)

	// Upsert inserts or updates the outreach row keyed by golf_course_id
	// and returns the activity id
	Upsert(ctx context.Context, a *domain.OutreachActivity) (int64, error)
}
