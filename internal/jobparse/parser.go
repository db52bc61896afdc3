// Package jobparse turns free-text job descriptions into structured
// JobRequirements records via the structured-extraction capability.
package jobparse

import (
	"context"
	"strings"

	"github.com/sandesh/shortlist-agent/internal/llm"
	"github.com/sandesh/shortlist-agent/internal/prompts"
	"github.com/sandesh/shortlist-agent/internal/schemas"
	"github.com/sandesh/shortlist-agent/internal/types"
)

// Parser extracts JobRequirements from job description text. The extraction
// prompt carries the seniority inference policy (Junior 0-2, Mid 3-5,
// Senior 5-8, Lead 8+) and the required-vs-nice-to-have skill distinction;
// this layer only normalizes the result.
type Parser struct {
	extractor llm.Extractor
}

// NewParser builds a Parser over the extraction capability.
func NewParser(extractor llm.Extractor) *Parser {
	return &Parser{extractor: extractor}
}

// Parse extracts structured requirements from a job description. A
// non-conforming extraction result, after the extractor's own retries, is a
// terminal *ParseError; no retry happens at this layer.
func (p *Parser) Parse(ctx context.Context, jdText string) (*types.JobRequirements, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, &ParseError{Message: "job description text is empty"}
	}

	prompt := prompts.Format(
		prompts.MustGet("parsing.json", "extract-job-requirements"),
		map[string]string{"JobText": jdText},
	)

	var req types.JobRequirements
	err := p.extractor.Extract(ctx, llm.Request{
		Prompt: prompt,
		Schema: schemas.JobRequirements,
		Tier:   llm.TierAdvanced,
	}, &req)
	if err != nil {
		return nil, &ParseError{Message: "structured extraction returned no conforming result", Cause: err}
	}

	normalize(&req)
	return &req, nil
}

func normalize(req *types.JobRequirements) {
	req.RequiredSkills = types.NormalizeSkills(req.RequiredSkills)
	req.MinDegree = strings.TrimSpace(req.MinDegree)
	if req.YearsRequired < 0 {
		req.YearsRequired = 0
	}

	kept := req.Responsibilities[:0]
	for _, r := range req.Responsibilities {
		if r = strings.TrimSpace(r); r != "" {
			kept = append(kept, r)
		}
	}
	req.Responsibilities = kept
}
