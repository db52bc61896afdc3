// Package resume turns one resume file into a structured candidate record:
// document processing first, then structured extraction.
package resume

import (
	"context"
	"fmt"

	"github.com/sandesh/shortlist-agent/internal/docproc"
	"github.com/sandesh/shortlist-agent/internal/llm"
	"github.com/sandesh/shortlist-agent/internal/prompts"
	"github.com/sandesh/shortlist-agent/internal/schemas"
	"github.com/sandesh/shortlist-agent/internal/types"
)

// Structurer extracts a ResumeStructured from a resume file.
//
// The aggregate years_experience comes straight from the extraction
// capability, which is instructed not to double count overlapping roles.
// This component trusts that aggregate and performs no date arithmetic.
type Structurer struct {
	processor *docproc.Processor
	extractor llm.Extractor
}

// NewStructurer builds a Structurer.
func NewStructurer(processor *docproc.Processor, extractor llm.Extractor) *Structurer {
	return &Structurer{processor: processor, extractor: extractor}
}

// Structure processes one resume file. Any error (unsupported format,
// unreadable file, non-conforming extraction) is returned to the caller; the
// orchestrator logs it with the filename and skips the resume.
func (s *Structurer) Structure(ctx context.Context, path string) (*types.ExtractedResume, error) {
	sourceFile, text, err := s.processor.Process(path)
	if err != nil {
		return nil, err
	}

	prompt := prompts.Format(
		prompts.MustGet("resume.json", "extract-resume"),
		map[string]string{"ResumeText": text},
	)

	var structured types.ResumeStructured
	err = s.extractor.Extract(ctx, llm.Request{
		Prompt: prompt,
		Schema: schemas.Resume,
		Tier:   llm.TierStandard,
	}, &structured)
	if err != nil {
		return nil, fmt.Errorf("structure resume %s: %w", sourceFile, err)
	}

	if structured.YearsExperience < 0 {
		structured.YearsExperience = 0
	}

	return &types.ExtractedResume{
		SourceFile: sourceFile,
		Resume:     structured,
	}, nil
}
