package sync

import (
	"fmt"
	"strings"

	"golfsync/internal/clickup"
	"golfsync/internal/domain"
)

// ProjectCourse builds the Golf Courses list payload for one course.
// Pure function of the course row, the trigger state code and the field
// map; status is left unset so ClickUp applies the list default.
func ProjectCourse(course *domain.Course, stateCode string, fm clickup.FieldMap) clickup.TaskPayload {
	segment := strings.ToLower(course.Segment)
	if segment == "" {
		segment = "unknown"
	}

	var waterHazards any
	if course.WaterHazards != nil {
		waterHazards = *course.WaterHazards
	}

	return clickup.TaskPayload{
		Name:        fmt.Sprintf("🏌️ %s", course.CourseName),
		Description: fmt.Sprintf("%s, %s", course.City, stateCode),
		CustomFields: []clickup.CustomField{
			{ID: fm.CourseSegmentField, Value: fm.SegmentOptions[segment]},
			{ID: fm.CourseSegmentConfidenceField, Value: course.SegmentConfidence},
			{ID: fm.CourseWaterHazardsField, Value: waterHazards},
			// ClickUp currency fields take minor units
			{ID: fm.CourseAgentCostField, Value: course.AgentCostUSD * 100},
			{ID: fm.CourseWebsiteField, Value: course.Website},
			{ID: fm.StateField, Value: stateOption(fm, stateCode)},
		},
		Tags: []string{"golf course", strings.ToLower(stateCode)},
	}
}

// stateOption resolves the State dropdown index. States outside the
// mapped territory leave the field unset; the zero index is a real
// option (VA) and must never stand in for "unmapped".
func stateOption(fm clickup.FieldMap, stateCode string) any {
	if idx, ok := fm.StateOptions[stateCode]; ok {
		return idx
	}
	return nil
}
