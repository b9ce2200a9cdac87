package domain

import (
	"encoding/json"
	"time"
)

// Course golf course domain model (golf_courses table)
// Enrichment columns are written by the research-ingestion step; this
// service only mutates clickup_task_id / clickup_synced_at after an upsert.
type Course struct {
	// Primary key
	ID int64 `db:"id"` // BIGSERIAL, PRIMARY KEY

	// Identity / location
	CourseName string `db:"course_name"` // VARCHAR(255), NOT NULL
	City       string `db:"city"`        // VARCHAR(100), nullable
	StateCode  string `db:"state_code"`  // VARCHAR(2), NOT NULL
	Region     string `db:"region"`      // VARCHAR(50), nullable
	Website    string `db:"website"`     // VARCHAR(255), nullable
	Phone      string `db:"phone"`       // VARCHAR(25), nullable

	// Segmentation (agent 6)
	Segment           string          `db:"segment"`            // VARCHAR(20), nullable ('high-end','budget','both','unknown')
	SegmentConfidence float64         `db:"segment_confidence"` // NUMERIC, 0-10
	SegmentSignals    json.RawMessage `db:"segment_signals"`    // JSONB, nullable (string array)

	// Water features (agent 7)
	WaterHazards      *int   `db:"water_hazards"`       // INT, nullable
	WaterHazardRating string `db:"water_hazard_rating"` // VARCHAR(20), nullable ('high','medium','low')

	// Opportunity scores keyed by opportunity name (0-10),
	// plus a "primary_pitch" string entry
	Opportunities json.RawMessage `db:"opportunities"` // JSONB, nullable

	// Research cost accumulated across agents
	AgentCostUSD float64 `db:"agent_cost_usd"` // NUMERIC, nullable

	// ClickUp linkage, written only by the sync orchestrator
	ClickUpTaskID   *string    `db:"clickup_task_id"`   // VARCHAR(20), nullable until first sync
	ClickUpSyncedAt *time.Time `db:"clickup_synced_at"` // TIMESTAMPTZ, nullable
}
