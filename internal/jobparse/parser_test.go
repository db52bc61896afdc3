package jobparse

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh/shortlist-agent/internal/llm"
	"github.com/sandesh/shortlist-agent/internal/schemas"
)

// fakeExtractor fills out from a canned JSON document and records the request.
type fakeExtractor struct {
	doc  string
	err  error
	last llm.Request
}

func (f *fakeExtractor) Extract(_ context.Context, req llm.Request, out any) error {
	f.last = req
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.doc), out)
}

func TestParse(t *testing.T) {
	fake := &fakeExtractor{doc: `{
		"required_skills": [" Python ", "AWS", "python"],
		"min_degree": "  BSc Computer Science ",
		"years_required": 3,
		"responsibilities": ["Design APIs", "  ", "Review code"]
	}`}
	p := NewParser(fake)

	req, err := p.Parse(context.Background(), "Senior Backend Engineer, 3+ years")

	require.NoError(t, err)
	assert.Equal(t, []string{"aws", "python"}, req.RequiredSkills)
	assert.Equal(t, "BSc Computer Science", req.MinDegree)
	assert.Equal(t, 3.0, req.YearsRequired)
	assert.Equal(t, []string{"Design APIs", "Review code"}, req.Responsibilities)

	assert.Equal(t, schemas.JobRequirements, fake.last.Schema)
	assert.Equal(t, llm.TierAdvanced, fake.last.Tier)
	assert.Contains(t, fake.last.Prompt, "Senior Backend Engineer")
}

func TestParse_EmptyText(t *testing.T) {
	p := NewParser(&fakeExtractor{})

	_, err := p.Parse(context.Background(), "   \n  ")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Nil(t, perr.Cause)
}

func TestParse_ExtractionFailureIsTerminal(t *testing.T) {
	boom := errors.New("extraction failed after 3 attempts")
	p := NewParser(&fakeExtractor{err: boom})

	_, err := p.Parse(context.Background(), "some job description")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, boom)
}

func TestParse_ClampsNegativeYears(t *testing.T) {
	fake := &fakeExtractor{doc: `{"required_skills": [], "min_degree": "", "years_required": -2, "responsibilities": []}`}
	p := NewParser(fake)

	req, err := p.Parse(context.Background(), "jd text")

	require.NoError(t, err)
	assert.Equal(t, 0.0, req.YearsRequired)
}
