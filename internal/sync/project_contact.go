package sync

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golfsync/internal/clickup"
	"golfsync/internal/domain"
)

// ProjectContact builds the Contacts list payload for one contact.
// courseTaskID is the course's ClickUp task id used for relational
// linking; empty when the course stage failed. now supplies the
// enrichment date fallback for rows without enriched_at.
func ProjectContact(contact *domain.Contact, stateCode, courseTaskID string, now time.Time, fm clickup.FieldMap) clickup.TaskPayload {
	courseLink := []string{}
	if courseTaskID != "" {
		courseLink = []string{courseTaskID}
	}

	var tenureValue any
	if contact.TenureYears != nil {
		tenureValue = *contact.TenureYears
	}

	var previousClubsValue any
	if len(contact.PreviousClubs) > 0 {
		previousClubsValue = string(contact.PreviousClubs)
	}

	return clickup.TaskPayload{
		Name:        fmt.Sprintf("👤 %s - %s", contact.ContactName, contact.ContactTitle),
		Description: contactDescription(contact, now),
		CustomFields: []clickup.CustomField{
			{ID: fm.ContactEmailField, Value: strPtrValue(contact.ContactEmail)},
			// Phone is description-only: the list's phone field rejects
			// unverified formats
			{ID: fm.ContactLinkedInField, Value: strPtrValue(contact.LinkedInURL)},
			{ID: fm.ContactTenureYearsField, Value: tenureValue},
			{ID: fm.ContactPreviousClubsField, Value: previousClubsValue},
			{ID: fm.ContactCourseLinkField, Value: courseLink},
			{ID: fm.ContactEnrichedField, Value: true},
			{ID: fm.ContactIsActiveField, Value: true},
			{ID: fm.StateField, Value: stateOption(fm, stateCode)},
		},
		Tags: []string{"contact", strings.ToLower(stateCode), "enriched"},
	}
}

func contactDescription(contact *domain.Contact, now time.Time) string {
	var b strings.Builder

	email := strPtrOr(contact.ContactEmail, "Not found")
	b.WriteString("Email: " + email)
	if contact.EmailConfidenceScore != nil {
		fmt.Fprintf(&b, " (%d%% confidence, verified)", *contact.EmailConfidenceScore)
	}
	b.WriteString("\n")
	b.WriteString("Phone: " + strPtrOr(contact.ContactPhone, "Not found") + "\n")
	b.WriteString("LinkedIn: " + strPtrOr(contact.LinkedInURL, "Not found") + "\n\n")

	if contact.TenureYears != nil {
		fmt.Fprintf(&b, "Tenure: %s years", formatFloat(*contact.TenureYears))
	} else {
		b.WriteString("Tenure: Unknown")
	}
	if contact.TenureStartDate != nil && *contact.TenureStartDate != "" {
		fmt.Fprintf(&b, " (Since %s)", *contact.TenureStartDate)
	}
	b.WriteString("\n")
	if len(contact.PreviousClubs) > 0 {
		fmt.Fprintf(&b, "Previous Clubs: %s\n", string(contact.PreviousClubs))
	}

	b.WriteString("\nEnrichment Status:\n")
	if contact.EmailDiscoveryMethod != nil && *contact.EmailDiscoveryMethod != "" {
		fmt.Fprintf(&b, "Email verified via %s\n", *contact.EmailDiscoveryMethod)
	}
	if contact.EmailConfidenceScore != nil {
		fmt.Fprintf(&b, "Confidence Score: %d%%\n", *contact.EmailConfidenceScore)
	}

	enriched := now
	if contact.EnrichedAt != nil {
		enriched = *contact.EnrichedAt
	}
	fmt.Fprintf(&b, "Enriched: %s", enriched.UTC().Format("2006-01-02"))

	return b.String()
}

func strPtrValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func strPtrOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// formatFloat renders tenure the way the sheet shows it (12 not 12.0)
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
