package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh/shortlist-agent/internal/types"
)

func candidate(source string, score float64) types.CandidateScore {
	return types.CandidateScore{
		SourceFile: source,
		FinalScore: score,
		Breakdown: types.CandidateBreakdown{
			Skills:        types.EvaluationScore{Score: score / 10, Justification: "skills"},
			Experience:    types.EvaluationScore{Score: score / 10, Justification: "experience"},
			WorkAlignment: types.EvaluationScore{Score: score / 10, Justification: "work"},
			Projects:      types.EvaluationScore{Score: score / 10, Justification: "projects"},
			Qualification: types.EvaluationScore{Score: score / 10, Justification: "qualification"},
		},
	}
}

func TestGenerate_SortsAndPartitions(t *testing.T) {
	g := NewGenerator(70)
	scores := []types.CandidateScore{
		candidate("low.txt", 42.5),
		candidate("top.txt", 91.0),
		candidate("mid.txt", 76.3),
	}

	r := g.Generate("run-1", scores)

	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, 3, r.TotalCandidates)
	assert.Equal(t, 70.0, r.Threshold)
	require.Len(t, r.Shortlisted, 2)
	require.Len(t, r.Rejected, 1)
	assert.Equal(t, "top.txt", r.Shortlisted[0].SourceFile)
	assert.Equal(t, "mid.txt", r.Shortlisted[1].SourceFile)
	assert.Equal(t, "low.txt", r.Rejected[0].SourceFile)
	assert.False(t, r.GeneratedAt.IsZero())
}

func TestGenerate_ThresholdBoundaryIsShortlisted(t *testing.T) {
	g := NewGenerator(70)

	r := g.Generate("run-1", []types.CandidateScore{
		candidate("exact.txt", 70.0),
		candidate("below.txt", 69.999),
	})

	require.Len(t, r.Shortlisted, 1)
	assert.Equal(t, "exact.txt", r.Shortlisted[0].SourceFile)
	require.Len(t, r.Rejected, 1)
}

func TestGenerate_TiesKeepInputOrder(t *testing.T) {
	g := NewGenerator(50)

	r := g.Generate("run-1", []types.CandidateScore{
		candidate("first.txt", 80),
		candidate("second.txt", 80),
		candidate("third.txt", 80),
	})

	require.Len(t, r.Shortlisted, 3)
	assert.Equal(t, "first.txt", r.Shortlisted[0].SourceFile)
	assert.Equal(t, "second.txt", r.Shortlisted[1].SourceFile)
	assert.Equal(t, "third.txt", r.Shortlisted[2].SourceFile)
}

func TestGenerate_PartitionIsComplete(t *testing.T) {
	g := NewGenerator(70)
	scores := []types.CandidateScore{
		candidate("a.txt", 88),
		candidate("b.txt", 70),
		candidate("c.txt", 12),
		candidate("d.txt", 69),
	}

	r := g.Generate("run-1", scores)

	assert.Equal(t, len(scores), len(r.Shortlisted)+len(r.Rejected))
	assert.Equal(t, len(scores), r.TotalCandidates)
}

func TestGenerate_Empty(t *testing.T) {
	r := NewGenerator(70).Generate("run-1", nil)

	assert.Equal(t, 0, r.TotalCandidates)
	assert.Empty(t, r.Shortlisted)
	assert.Empty(t, r.Rejected)
}

func TestNewGenerator_DefaultThreshold(t *testing.T) {
	r := NewGenerator(0).Generate("run-1", []types.CandidateScore{candidate("a.txt", 70)})

	assert.Equal(t, DefaultThreshold, r.Threshold)
	assert.Len(t, r.Shortlisted, 1)
}

func TestSummary(t *testing.T) {
	g := NewGenerator(70)
	r := g.Generate("run-1", []types.CandidateScore{
		candidate("jane.txt", 80),
		candidate("john.txt", 40),
	})
	r.Shortlisted[0].Breakdown.MatchedSkills = []string{"go", "postgres"}
	r.Shortlisted[0].Breakdown.DegreeCategory = "CSIT"

	text := Summary(r)

	assert.Contains(t, text, "SHORTLISTED (1)")
	assert.Contains(t, text, "REJECTED (1)")
	assert.Contains(t, text, "jane.txt — 80.00/100")
	assert.Contains(t, text, "matched skills:    go, postgres")
	assert.Contains(t, text, "degree category:   CSIT")
	for _, c := range types.AllCriteria() {
		assert.True(t, strings.Contains(text, string(c)+":"), "summary should list %s", c)
	}
}
