package httpapi

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// LeadExportHeader column order of the leads workbook
var LeadExportHeader = []string{
	"Course ID",
	"Course Name",
	"City",
	"State",
	"Region",
	"Segment",
	"Segment Confidence",
	"Water Hazards",
	"Course Task",
	"Course Synced At",
	"Contact Name",
	"Contact Title",
	"Email",
	"Phone",
	"Tenure (years)",
	"Contact Task",
	"Contact Synced At",
}

// LeadRow one export row: a course joined with one of its contacts.
// Courses without contacts still export with the contact columns empty.
type LeadRow struct {
	CourseID          int64
	CourseName        string
	City              string
	State             string
	Region            string
	Segment           string
	SegmentConfidence float64
	WaterHazards      string
	CourseTaskID      string
	CourseSyncedAt    *time.Time
	ContactName       string
	ContactTitle      string
	Email             string
	Phone             string
	TenureYears       string
	ContactTaskID     string
	ContactSyncedAt   *time.Time
}

// GenerateLeadExport builds the leads workbook
func GenerateLeadExport(rows []LeadRow) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on the error paths

	sheetName := "Leads"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range LeadExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	columnWidths := []float64{
		10, // Course ID
		28, // Course Name
		16, // City
		8,  // State
		14, // Region
		12, // Segment
		16, // Segment Confidence
		14, // Water Hazards
		14, // Course Task
		20, // Course Synced At
		22, // Contact Name
		24, // Contact Title
		28, // Email
		16, // Phone
		14, // Tenure (years)
		14, // Contact Task
		20, // Contact Synced At
	}
	for i := range LeadExportHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if i < len(columnWidths) && columnWidths[i] > 0 {
			if err := f.SetColWidth(sheetName, col, col, columnWidths[i]); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}

	for rowIdx, item := range rows {
		row := rowIdx + 2
		values := []any{
			item.CourseID,
			item.CourseName,
			item.City,
			item.State,
			item.Region,
			item.Segment,
			item.SegmentConfidence,
			item.WaterHazards,
			item.CourseTaskID,
			formatSyncedAt(item.CourseSyncedAt),
			item.ContactName,
			item.ContactTitle,
			item.Email,
			item.Phone,
			item.TenureYears,
			item.ContactTaskID,
			formatSyncedAt(item.ContactSyncedAt),
		}
		for col, value := range values {
			if value == nil || value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value at row %d, col %d: %w", row, col+1, err)
			}
		}
	}

	// freeze the header row
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return buf.Bytes(), nil
}

func formatSyncedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
