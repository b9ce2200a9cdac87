package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golfsync/internal/domain"
)

// PostgresContactsRepository golf_course_contacts repository implementation
type PostgresContactsRepository struct {
	db *sql.DB
}

// NewPostgresContactsRepository creates the contacts repository
func NewPostgresContactsRepository(db *sql.DB) *PostgresContactsRepository {
	return &PostgresContactsRepository{db: db}
}

var _ ContactsRepository = (*PostgresContactsRepository)(nil)

const contactColumns = `
		contact_id,
		golf_course_id,
		contact_name,
		contact_title,
		contact_email,
		email_confidence_score,
		email_discovery_method,
		contact_phone,
		phone_source,
		linkedin_url,
		tenure_years,
		tenure_start_date,
		previous_clubs,
		enriched_at,
		clickup_task_id,
		clickup_synced_at`

// ListByCourse loads all contacts of a course.
// Ordered by contact_id so element 0 is the primary contact by the
// insertion-order convention.
func (r *PostgresContactsRepository) ListByCourse(ctx context.Context, courseID int64) ([]*domain.Contact, error) {
	query := `SELECT` + contactColumns + `
		FROM golf_course_contacts
		WHERE golf_course_id = $1
		ORDER BY contact_id`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

// ListContacts loads all contacts ordered by contact_id
func (r *PostgresContactsRepository) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	query := `SELECT` + contactColumns + `
		FROM golf_course_contacts
		ORDER BY contact_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

// SetClickUpTask persists the ClickUp task id and sync timestamp
func (r *PostgresContactsRepository) SetClickUpTask(ctx context.Context, contactID int64, taskID string, syncedAt time.Time) error {
	query := `
		UPDATE golf_course_contacts
		SET clickup_task_id = $2, clickup_synced_at = $3
		WHERE contact_id = $1`

	result, err := r.db.ExecContext(ctx, query, contactID, taskID, syncedAt)
	if err != nil {
		return fmt.Errorf("failed to update contact clickup task: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("contact %d: %w", contactID, ErrNotFound)
	}
	return nil
}

func collectContacts(rows *sql.Rows) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	for rows.Next() {
		var c domain.Contact
		err := rows.Scan(
			&c.ContactID,
			&c.GolfCourseID,
			&c.ContactName,
			&c.ContactTitle,
			&c.ContactEmail,
			&c.EmailConfidenceScore,
			&c.EmailDiscoveryMethod,
			&c.ContactPhone,
			&c.PhoneSource,
			&c.LinkedInURL,
			&c.TenureYears,
			&c.TenureStartDate,
			(*[]byte)(&c.PreviousClubs),
			&c.EnrichedAt,
			&c.ClickUpTaskID,
			&c.ClickUpSyncedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}
