package sync

import "strings"

// ContactRationale returns the canned "why contact" line for a title.
// Deterministic: the same title text always yields the same string.
// The first contact of a course is the primary contact; primary-only
// rules match budget-authority titles, the rest match support roles.
func ContactRationale(title string, isPrimary bool) string {
	lower := strings.ToLower(title)

	if isPrimary {
		if strings.Contains(lower, "general manager") || strings.Contains(lower, "gm") {
			return "General Manager = budget authority + purchasing decisions"
		}
		if strings.Contains(lower, "director of golf") {
			return "Director of Golf = oversees golf operations including ranges"
		}
		if strings.Contains(lower, "head professional") || strings.Contains(lower, "head golf") {
			return "Head Professional = manages golf operations, likely decision-maker"
		}
	}

	if strings.Contains(lower, "superintendent") {
		return "Manages course maintenance. Good for retrieval cross-sell opportunity"
	}
	if strings.Contains(lower, "director of instruction") || strings.Contains(lower, "teaching") {
		return "Heavy range user, can influence range ball decisions"
	}
	if strings.Contains(lower, "assistant") {
		return "Can provide operational context, may escalate to decision-maker"
	}

	return "Secondary contact - may have input or can forward to decision-maker"
}
