package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"golfsync/internal/domain"
	"golfsync/internal/repository"

	"go.uber.org/zap"
)

// ExportHandler serves the leads workbook for the sales team
type ExportHandler struct {
	courses  repository.CoursesRepository
	contacts repository.ContactsRepository
	logger   *zap.Logger
}

func NewExportHandler(courses repository.CoursesRepository, contacts repository.ContactsRepository, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{courses: courses, contacts: contacts, logger: logger}
}

// GET /sync/api/v1/leads/export
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	courses, err := h.courses.ListCourses(ctx)
	if err != nil {
		h.logger.Error("Lead export: courses query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load courses")
		return
	}
	contacts, err := h.contacts.ListContacts(ctx)
	if err != nil {
		h.logger.Error("Lead export: contacts query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load contacts")
		return
	}

	rows := buildLeadRows(courses, contacts)
	data, err := GenerateLeadExport(rows)
	if err != nil {
		h.logger.Error("Lead export: workbook generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="golf-leads.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// buildLeadRows joins every contact with its course; a course with no
// contacts still gets one row so unenriched leads stay visible.
func buildLeadRows(courses []*domain.Course, contacts []*domain.Contact) []LeadRow {
	byCourse := make(map[int64][]*domain.Contact, len(courses))
	for _, c := range contacts {
		byCourse[c.GolfCourseID] = append(byCourse[c.GolfCourseID], c)
	}

	var rows []LeadRow
	for _, course := range courses {
		base := LeadRow{
			CourseID:          course.ID,
			CourseName:        course.CourseName,
			City:              course.City,
			State:             course.StateCode,
			Region:            course.Region,
			Segment:           course.Segment,
			SegmentConfidence: course.SegmentConfidence,
			WaterHazards:      formatWaterHazards(course),
			CourseTaskID:      strValue(course.ClickUpTaskID),
			CourseSyncedAt:    course.ClickUpSyncedAt,
		}

		list := byCourse[course.ID]
		if len(list) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, contact := range list {
			row := base
			row.ContactName = contact.ContactName
			row.ContactTitle = contact.ContactTitle
			row.Email = strValue(contact.ContactEmail)
			row.Phone = strValue(contact.ContactPhone)
			if contact.TenureYears != nil {
				row.TenureYears = strconv.FormatFloat(*contact.TenureYears, 'f', -1, 64)
			}
			row.ContactTaskID = strValue(contact.ClickUpTaskID)
			row.ContactSyncedAt = contact.ClickUpSyncedAt
			rows = append(rows, row)
		}
	}
	return rows
}

func formatWaterHazards(course *domain.Course) string {
	if course.WaterHazards == nil {
		return ""
	}
	if course.WaterHazardRating != "" {
		return fmt.Sprintf("%d (%s)", *course.WaterHazards, course.WaterHazardRating)
	}
	return strconv.Itoa(*course.WaterHazards)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
