package domain

import (
	"encoding/json"
	"time"
)

// Contact decision-maker at a course (golf_course_contacts table)
type Contact struct {
	// Primary key
	ContactID int64 `db:"contact_id"` // BIGSERIAL, PRIMARY KEY

	// Owning course
	GolfCourseID int64 `db:"golf_course_id"` // BIGINT, NOT NULL, FK golf_courses(id)

	// Identity
	ContactName  string `db:"contact_name"`  // VARCHAR(255), NOT NULL
	ContactTitle string `db:"contact_title"` // VARCHAR(255), NOT NULL

	// Reach channels, each nullable with verification metadata
	ContactEmail         *string `db:"contact_email"`          // VARCHAR(255), nullable
	EmailConfidenceScore *int    `db:"email_confidence_score"` // INT, nullable (0-100)
	EmailDiscoveryMethod *string `db:"email_discovery_method"` // VARCHAR(50), nullable ('hunter','apollo',...)
	ContactPhone         *string `db:"contact_phone"`          // VARCHAR(25), nullable
	PhoneSource          *string `db:"phone_source"`           // VARCHAR(50), nullable
	LinkedInURL          *string `db:"linkedin_url"`           // VARCHAR(255), nullable

	// Tenure and history
	TenureYears     *float64        `db:"tenure_years"`      // NUMERIC, nullable
	TenureStartDate *string         `db:"tenure_start_date"` // VARCHAR(20), nullable
	PreviousClubs   json.RawMessage `db:"previous_clubs"`    // JSONB, nullable (string array)

	// Enrichment timestamp
	EnrichedAt *time.Time `db:"enriched_at"` // TIMESTAMPTZ, nullable

	// ClickUp linkage, written only by the sync orchestrator
	ClickUpTaskID   *string    `db:"clickup_task_id"`   // VARCHAR(20), nullable until first sync
	ClickUpSyncedAt *time.Time `db:"clickup_synced_at"` // TIMESTAMPTZ, nullable
}
