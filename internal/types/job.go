// Package types defines the shared value records that flow through the
// shortlisting pipeline. All records are produced once per run and never
// mutated afterwards.
package types

import (
	"sort"
	"strings"
)

// JobRequirements is the structured form of a free-text job description.
type JobRequirements struct {
	// RequiredSkills contains only skills the posting treats as required.
	// Nice-to-have skills are excluded at parse time. Entries are
	// normalized: lower-case, trimmed, deduplicated.
	RequiredSkills []string `json:"required_skills"`

	// MinDegree is the minimum qualification named by the posting, verbatim.
	MinDegree string `json:"min_degree"`

	// YearsRequired is the minimum years of professional experience. When
	// the posting is not explicit, the parser infers a point estimate from
	// seniority language (Junior 0-2, Mid 3-5, Senior 5-8, Lead 8+).
	YearsRequired float64 `json:"years_required"`

	// Responsibilities preserves the posting's ordering.
	Responsibilities []string `json:"responsibilities"`
}

// HasSkill reports whether the normalized form of skill is required.
func (j *JobRequirements) HasSkill(skill string) bool {
	needle := NormalizeSkill(skill)
	for _, s := range j.RequiredSkills {
		if s == needle {
			return true
		}
	}
	return false
}

// NormalizeSkill lower-cases and trims a skill name.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSkills normalizes, deduplicates, and sorts a skill list. Empty
// entries are dropped.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		n := NormalizeSkill(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
