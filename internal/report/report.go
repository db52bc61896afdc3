// Package report sorts and partitions candidate scores into the final
// shortlisting report. Persisting the report is the caller's concern.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sandesh/shortlist-agent/internal/types"
)

// DefaultThreshold is the shortlisting cutoff on the 0-100 final scale.
const DefaultThreshold = 70.0

// Generator builds ShortlistReports for a fixed threshold.
type Generator struct {
	threshold float64
}

// NewGenerator builds a Generator. A non-positive threshold selects the
// default of 70.
func NewGenerator(threshold float64) *Generator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Generator{threshold: threshold}
}

// Generate sorts candidates by final score descending (stable, so ties keep
// input order) and partitions them at the threshold. A candidate exactly at
// the threshold is shortlisted.
func (g *Generator) Generate(runID string, scores []types.CandidateScore) *types.ShortlistReport {
	sorted := make([]types.CandidateScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FinalScore > sorted[j].FinalScore
	})

	shortlisted := make([]types.CandidateScore, 0, len(sorted))
	rejected := make([]types.CandidateScore, 0, len(sorted))
	for _, cs := range sorted {
		if cs.FinalScore >= g.threshold {
			shortlisted = append(shortlisted, cs)
		} else {
			rejected = append(rejected, cs)
		}
	}

	return &types.ShortlistReport{
		RunID:           runID,
		GeneratedAt:     time.Now().UTC(),
		TotalCandidates: len(sorted),
		Threshold:       g.threshold,
		Shortlisted:     shortlisted,
		Rejected:        rejected,
	}
}

// Summary renders the human-readable companion to the JSON report: every
// candidate with source file, final score and all five sub-scores.
func Summary(r *types.ShortlistReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "CANDIDATE SHORTLISTING REPORT\n")
	fmt.Fprintf(&sb, "Run:         %s\n", r.RunID)
	fmt.Fprintf(&sb, "Generated:   %s\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Candidates:  %d\n", r.TotalCandidates)
	fmt.Fprintf(&sb, "Threshold:   %.1f\n", r.Threshold)

	writeSection(&sb, fmt.Sprintf("SHORTLISTED (%d)", len(r.Shortlisted)), r.Shortlisted)
	writeSection(&sb, fmt.Sprintf("REJECTED (%d)", len(r.Rejected)), r.Rejected)

	return sb.String()
}

func writeSection(sb *strings.Builder, title string, candidates []types.CandidateScore) {
	fmt.Fprintf(sb, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
	if len(candidates) == 0 {
		fmt.Fprintf(sb, "(none)\n")
		return
	}

	for i, cs := range candidates {
		fmt.Fprintf(sb, "\n%d. %s — %.2f/100\n", i+1, cs.SourceFile, cs.FinalScore)
		for _, c := range types.AllCriteria() {
			score, _ := cs.Breakdown.ByCriterion(c)
			fmt.Fprintf(sb, "   %-18s %5.2f/10  %s\n", string(c)+":", score.Score, score.Justification)
		}
		if len(cs.Breakdown.MatchedSkills) > 0 {
			fmt.Fprintf(sb, "   matched skills:    %s\n", strings.Join(cs.Breakdown.MatchedSkills, ", "))
		}
		if cs.Breakdown.DegreeCategory != "" {
			fmt.Fprintf(sb, "   degree category:   %s\n", cs.Breakdown.DegreeCategory)
		}
	}
}
