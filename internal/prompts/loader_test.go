package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, tc := range []struct{ file, key string }{
		{"parsing.json", "extract-job-requirements"},
		{"resume.json", "extract-resume"},
		{"evaluation.json", "judge-work-alignment"},
		{"evaluation.json", "judge-project-alignment"},
		{"evaluation.json", "classify-degree"},
	} {
		tmpl, err := Get(tc.file, tc.key)
		require.NoError(t, err, "%s/%s", tc.file, tc.key)
		assert.NotEmpty(t, tmpl)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("parsing.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "anything")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	got := Format("Job: {{.JobText}} / Resume: {{.ResumeText}}", map[string]string{
		"JobText":    "backend engineer",
		"ResumeText": "five years of Go",
	})
	assert.Equal(t, "Job: backend engineer / Resume: five years of Go", got)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	got := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", got)
}

func TestPromptsCarryPolicies(t *testing.T) {
	// The seniority inference policy is part of the parser contract.
	jd := MustGet("parsing.json", "extract-job-requirements")
	assert.True(t, strings.Contains(jd, "Junior 0-2"))
	assert.True(t, strings.Contains(jd, "nice-to-have"))

	// The work-alignment rubric sub-weights guide the judgement.
	work := MustGet("evaluation.json", "judge-work-alignment")
	assert.True(t, strings.Contains(work, "40%"))
}
