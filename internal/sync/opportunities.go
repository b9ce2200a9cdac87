package sync

import (
	"encoding/json"
	"sort"
	"strings"

	"golfsync/internal/domain"
)

// RankedOpportunity one scored opportunity of a course
type RankedOpportunity struct {
	Name  string
	Score float64
}

// Opportunities parsed view of golf_courses.opportunities
type Opportunities struct {
	// Ranked is sorted by score descending, name ascending on ties,
	// "primary*" keys excluded
	Ranked []RankedOpportunity
	// PrimaryPitch is the synthesized pitch string, empty when absent
	PrimaryPitch string
}

// ParseOpportunities decodes the opportunities JSONB of a course.
// Malformed or absent JSON yields an empty value, never an error: a
// course without scored opportunities still syncs.
func ParseOpportunities(raw json.RawMessage) Opportunities {
	var opps Opportunities
	if len(raw) == 0 {
		return opps
	}

	var entries map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return opps
	}

	for key, value := range entries {
		if key == "primary_pitch" {
			if pitch, ok := value.(string); ok {
				opps.PrimaryPitch = pitch
			}
			continue
		}
		if strings.Contains(key, "primary") {
			continue
		}
		if score, ok := value.(float64); ok {
			opps.Ranked = append(opps.Ranked, RankedOpportunity{Name: key, Score: score})
		}
	}

	sort.Slice(opps.Ranked, func(i, j int) bool {
		if opps.Ranked[i].Score != opps.Ranked[j].Score {
			return opps.Ranked[i].Score > opps.Ranked[j].Score
		}
		return opps.Ranked[i].Name < opps.Ranked[j].Name
	})

	return opps
}

// Score returns the score of a named opportunity, ok=false when unscored
func (o Opportunities) Score(name string) (float64, bool) {
	for _, r := range o.Ranked {
		if r.Name == name {
			return r.Score, true
		}
	}
	return 0, false
}

// Top returns the n highest-ranked opportunities
func (o Opportunities) Top(n int) []RankedOpportunity {
	if len(o.Ranked) < n {
		n = len(o.Ranked)
	}
	return o.Ranked[:n]
}

// FormatOpportunityName turns a snake_case opportunity key into a
// display name ("ball_retrieval" -> "Ball Retrieval")
func FormatOpportunityName(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// courseOpportunities parses the opportunities column of a course
func courseOpportunities(course *domain.Course) Opportunities {
	return ParseOpportunities(course.Opportunities)
}
