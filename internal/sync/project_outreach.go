package sync

import (
	"fmt"
	"strings"

	"golfsync/internal/clickup"
	"golfsync/internal/domain"
)

const sectionDivider = "═══════════════════════════════════════════════════════════"

// longTenureYears threshold flagging relationship strength
const longTenureYears = 15

// ProjectOutreach builds the Outreach Activities list payload for one
// course, aggregating every contact into a single sales briefing.
// contactTaskIDs holds the ClickUp ids of successfully synced contacts
// for relational linking; courseTaskID may be empty if that stage failed.
func ProjectOutreach(course *domain.Course, contacts []*domain.Contact, stateCode, courseTaskID string, contactTaskIDs []string, fm clickup.FieldMap) clickup.TaskPayload {
	opps := courseOpportunities(course)
	top := opps.Top(2)

	pitch := opps.PrimaryPitch
	if pitch == "" {
		pitch = "Outreach"
	}

	// High-value top opportunity bumps task priority
	priority := 3
	if len(top) > 0 && top[0].Score >= 8 {
		priority = 2
	}

	courseLink := []string{}
	if courseTaskID != "" {
		courseLink = []string{courseTaskID}
	}
	if contactTaskIDs == nil {
		contactTaskIDs = []string{}
	}

	var targetSegment any
	if idx, ok := fm.TargetSegmentOptions[strings.ToLower(course.Segment)]; ok {
		targetSegment = idx
	}

	var top1Name, top1Score, top2Name, top2Score any
	if len(top) > 0 {
		top1Name, top1Score = top[0].Name, top[0].Score
	}
	if len(top) > 1 {
		top2Name, top2Score = top[1].Name, top[1].Score
	}

	return clickup.TaskPayload{
		Name:        fmt.Sprintf("%s - %s", course.CourseName, pitch),
		Description: outreachDescription(course, contacts, stateCode, opps),
		Priority:    &priority,
		CustomFields: []clickup.CustomField{
			{ID: fm.OutreachCourseLinkField, Value: courseLink},
			{ID: fm.OutreachContactsLinkField, Value: contactTaskIDs},
			{ID: fm.OutreachTargetSegmentField, Value: targetSegment},
			{ID: fm.OutreachTopOpp1Field, Value: top1Name},
			{ID: fm.OutreachTopOpp1ScoreField, Value: top1Score},
			{ID: fm.OutreachTopOpp2Field, Value: top2Name},
			{ID: fm.OutreachTopOpp2ScoreField, Value: top2Score},
			{ID: fm.StateField, Value: stateOption(fm, stateCode)},
		},
		Tags: []string{"agent-enriched", strings.ToLower(stateCode)},
	}
}

func outreachDescription(course *domain.Course, contacts []*domain.Contact, stateCode string, opps Opportunities) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 👥 DECISION-MAKERS (%d contacts)\n\n", len(contacts))

	sections := make([]string, 0, len(contacts))
	for i, contact := range contacts {
		sections = append(sections, contactSection(contact, i == 0))
	}
	b.WriteString(strings.Join(sections, "\n\n---\n\n"))

	b.WriteString("\n\n" + sectionDivider + "\n\n")
	b.WriteString("## 🏌️ COURSE INTELLIGENCE\n\n")
	fmt.Fprintf(&b, "**%s**\n", course.CourseName)
	fmt.Fprintf(&b, "🌐 Website: %s\n", orNA(course.Website))
	fmt.Fprintf(&b, "📞 Main: %s\n", orNA(course.Phone))
	city := course.City
	if city == "" {
		city = course.CourseName
	}
	fmt.Fprintf(&b, "📍 %s, %s\n\n", city, stateCode)

	segment := strings.ToUpper(course.Segment)
	if segment == "" {
		segment = "UNKNOWN"
	}
	fmt.Fprintf(&b, "**Segment:** %s (%s/10 confidence)\n", segment, formatFloat(course.SegmentConfidence))
	if len(course.SegmentSignals) > 0 {
		fmt.Fprintf(&b, "- Signals: %s\n", string(course.SegmentSignals))
	}

	b.WriteString("\n**Water Features:**\n")
	rating := strings.ToUpper(course.WaterHazardRating)
	if rating == "" {
		rating = "Unknown"
	}
	fmt.Fprintf(&b, "- Rating: %s\n", rating)
	if course.WaterHazards != nil {
		fmt.Fprintf(&b, "- Count: %d\n", *course.WaterHazards)
	}
	if retrieval, ok := opps.Score("ball_retrieval"); ok {
		fmt.Fprintf(&b, "- Retrieval Opportunity: %s/10\n", formatFloat(retrieval))
	} else {
		b.WriteString("- Retrieval Opportunity: N/A/10\n")
	}

	b.WriteString("\n**Top Opportunities:**\n")
	if len(opps.Ranked) == 0 {
		b.WriteString("No specific opportunities scored\n")
	} else {
		for i, opp := range opps.Ranked {
			fmt.Fprintf(&b, "%d. %s: %s/10\n", i+1, FormatOpportunityName(opp.Name), formatFloat(opp.Score))
		}
	}

	pitch := opps.PrimaryPitch
	if pitch == "" {
		pitch = "Custom ball program consultation"
	}
	fmt.Fprintf(&b, "\n**Primary Pitch:** %s\n", pitch)

	b.WriteString("\n" + sectionDivider + "\n\n")
	b.WriteString("## 💡 NEXT ACTIONS\n\n")
	for i, action := range nextActions(course, contacts, opps) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, action)
	}

	return b.String()
}

func contactSection(contact *domain.Contact, isPrimary bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### 👤 %s - %s", contact.ContactName, contact.ContactTitle)
	if isPrimary {
		b.WriteString(" ⭐ PRIMARY")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "📧 Email: %s", strPtrOr(contact.ContactEmail, "Not found"))
	if contact.EmailConfidenceScore != nil {
		method := strPtrOr(contact.EmailDiscoveryMethod, "unknown")
		fmt.Fprintf(&b, " (%d%% confidence, verified via %s)", *contact.EmailConfidenceScore, method)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "📱 Phone: %s", strPtrOr(contact.ContactPhone, "Not found"))
	if contact.PhoneSource != nil && *contact.PhoneSource != "" {
		fmt.Fprintf(&b, " (verified via %s)", *contact.PhoneSource)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "💼 LinkedIn: %s\n", strPtrOr(contact.LinkedInURL, "Not found"))

	if contact.TenureYears != nil {
		fmt.Fprintf(&b, "⏱️ Tenure: %s years", formatFloat(*contact.TenureYears))
	} else {
		b.WriteString("⏱️ Tenure: Unknown")
	}
	if contact.TenureStartDate != nil && *contact.TenureStartDate != "" {
		fmt.Fprintf(&b, " (since %s)", *contact.TenureStartDate)
	}
	if contact.TenureYears != nil && *contact.TenureYears > longTenureYears {
		b.WriteString(" ⭐ LONG TENURE!")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**Why Contact:** %s", ContactRationale(contact.ContactTitle, isPrimary))

	return b.String()
}

// nextActions applies the threshold rules producing the ranked checklist
func nextActions(course *domain.Course, contacts []*domain.Contact, opps Opportunities) []string {
	actions := make([]string, 0, 5)

	if course.SegmentConfidence < 7 {
		actions = append(actions, "⚠️ LOW CONFIDENCE SEGMENT - Manual research needed")
	} else {
		actions = append(actions, "Review segment classification")
	}

	if len(contacts) > 0 {
		first := contacts[0]
		actions = append(actions, fmt.Sprintf("Start outreach with %s (%s)", first.ContactName, first.ContactTitle))
		if first.LinkedInURL != nil && *first.LinkedInURL != "" {
			actions = append(actions, "✅ LinkedIn available for multi-channel approach")
		} else {
			actions = append(actions, "📧 Email/phone only")
		}
	}

	if retrieval, ok := opps.Score("ball_retrieval"); ok && retrieval >= 7 {
		actions = append(actions, "🎯 CROSS-SELL: High ball retrieval opportunity!")
	}

	for _, contact := range contacts {
		if contact.TenureYears != nil && *contact.TenureYears > longTenureYears {
			actions = append(actions, "⭐ Long-tenured contacts = strong relationships, personalize accordingly")
			break
		}
	}

	return actions
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
