package resume

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh/shortlist-agent/internal/docproc"
	"github.com/sandesh/shortlist-agent/internal/llm"
	"github.com/sandesh/shortlist-agent/internal/schemas"
)

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

func writeResume(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStructure(t *testing.T) {
	path := writeResume(t, "jane_doe.txt", "Jane Doe\nSkills: Go, Postgres\n5 years at Acme")
	fake := &fakeExtractor{doc: `{
		"skills": ["go", "postgres"],
		"work_experience": [{"company": "Acme", "position": "Engineer", "duration_text": "2019-2024", "responsibilities": ["built APIs"]}],
		"education": [{"degree": "BE Computer", "institution": "TU", "year": 2018}],
		"years_experience": 5,
		"projects": []
	}`}
	s := NewStructurer(docproc.NewProcessor(nil, nil, nil), fake)

	got, err := s.Structure(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "jane_doe.txt", got.SourceFile)
	assert.Equal(t, []string{"go", "postgres"}, got.Resume.Skills)
	assert.Equal(t, 5.0, got.Resume.YearsExperience)

	assert.Equal(t, schemas.Resume, fake.last.Schema)
	assert.Equal(t, llm.TierStandard, fake.last.Tier)
	assert.Contains(t, fake.last.Prompt, "Skills: Go, Postgres")
}

func TestStructure_UnsupportedFormat(t *testing.T) {
	path := writeResume(t, "resume.xlsx", "cells")
	s := NewStructurer(docproc.NewProcessor(nil, nil, nil), &fakeExtractor{})

	_, err := s.Structure(context.Background(), path)

	var ferr *docproc.UnsupportedFormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestStructure_ExtractionFailure(t *testing.T) {
	path := writeResume(t, "jane.txt", "some resume text")
	boom := errors.New("extraction failed after 3 attempts")
	s := NewStructurer(docproc.NewProcessor(nil, nil, nil), &fakeExtractor{err: boom})

	_, err := s.Structure(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "jane.txt")
}

func TestStructure_ClampsNegativeYears(t *testing.T) {
	path := writeResume(t, "jane.txt", "resume text")
	fake := &fakeExtractor{doc: `{"skills": [], "work_experience": [], "education": [], "years_experience": -1, "projects": []}`}
	s := NewStructurer(docproc.NewProcessor(nil, nil, nil), fake)

	got, err := s.Structure(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Resume.YearsExperience)
}
