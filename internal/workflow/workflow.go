// Package workflow wires the shortlisting pipeline into a fixed sequence of
// typed stages: parse JD, extract resumes, evaluate all criteria, aggregate,
// report. Fan-out/fan-in is an explicit parallel map-then-join; stages
// exchange immutable values, never shared mutable state.
package workflow

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sandesh/shortlist-agent/internal/evaluate"
	"github.com/sandesh/shortlist-agent/internal/types"
)

// State names one stage of a run. States advance strictly forward; failed is
// terminal and reachable from any stage.
type State string

// Workflow states in execution order.
const (
	StateParsingJD         State = "parsing_jd"
	StateExtractingResumes State = "extracting_resumes"
	StateEvaluating        State = "evaluating"
	StateAggregating       State = "aggregating"
	StateReporting         State = "reporting"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

// JobParser parses a job description into structured requirements.
type JobParser interface {
	Parse(ctx context.Context, jdText string) (*types.JobRequirements, error)
}

// ResumeStructurer turns one resume file into a structured candidate record.
type ResumeStructurer interface {
	Structure(ctx context.Context, path string) (*types.ExtractedResume, error)
}

// Aggregator combines one candidate's criterion results into a final score.
type Aggregator interface {
	Aggregate(sourceFile string, results []evaluate.Result) (types.CandidateScore, error)
}

// Reporter builds the terminal report from all candidate scores.
type Reporter interface {
	Generate(runID string, scores []types.CandidateScore) *types.ShortlistReport
}

// Options configures an Orchestrator.
type Options struct {
	Parser     JobParser
	Structurer ResumeStructurer
	Evaluators []evaluate.Evaluator
	Aggregator Aggregator
	Reporter   Reporter
	Logger     *zap.Logger
	// MaxConcurrentResumes bounds the resume fan-out. Zero means 4.
	MaxConcurrentResumes int
}

const defaultMaxConcurrentResumes = 4

// Orchestrator runs the shortlisting workflow end to end.
type Orchestrator struct {
	parser        JobParser
	structurer    ResumeStructurer
	evaluators    []evaluate.Evaluator
	aggregator    Aggregator
	reporter      Reporter
	log           *zap.Logger
	maxConcurrent int
}

// New builds an Orchestrator from its collaborators.
func New(opts Options) *Orchestrator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxConcurrent := opts.MaxConcurrentResumes
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentResumes
	}
	return &Orchestrator{
		parser:        opts.Parser,
		structurer:    opts.Structurer,
		evaluators:    opts.Evaluators,
		aggregator:    opts.Aggregator,
		reporter:      opts.Reporter,
		log:           log,
		maxConcurrent: maxConcurrent,
	}
}

// candidateResults pairs a candidate with its completed criterion results.
type candidateResults struct {
	resume  *types.ExtractedResume
	results []evaluate.Result
}

// Run executes the full workflow. Per-resume and per-candidate failures are
// contained and logged; JD parse failure, zero surviving resumes, and
// cancellation fail the run as a whole — no partial report is ever returned.
func (o *Orchestrator) Run(ctx context.Context, jobDescriptionText string, resumePaths []string) (*types.ShortlistReport, error) {
	runID := uuid.New().String()
	log := o.log.With(zap.String("run_id", runID))

	log.Info("workflow state", zap.String("state", string(StateParsingJD)))
	job, err := o.parser.Parse(ctx, jobDescriptionText)
	if err != nil {
		log.Error("workflow state", zap.String("state", string(StateFailed)), zap.Error(err))
		return nil, err
	}

	log.Info("workflow state", zap.String("state", string(StateExtractingResumes)), zap.Int("resumes", len(resumePaths)))
	resumes, err := o.extractResumes(ctx, log, resumePaths)
	if err != nil {
		log.Error("workflow state", zap.String("state", string(StateFailed)), zap.Error(err))
		return nil, err
	}

	log.Info("workflow state", zap.String("state", string(StateEvaluating)), zap.Int("candidates", len(resumes)))
	evaluated, err := o.evaluateCandidates(ctx, log, job, jobDescriptionText, resumes)
	if err != nil {
		log.Error("workflow state", zap.String("state", string(StateFailed)), zap.Error(err))
		return nil, err
	}

	log.Info("workflow state", zap.String("state", string(StateAggregating)))
	scores := make([]types.CandidateScore, 0, len(evaluated))
	for _, cr := range evaluated {
		score, err := o.aggregator.Aggregate(cr.resume.SourceFile, cr.results)
		if err != nil {
			// Fatal for this candidate only.
			log.Warn("candidate excluded at aggregation",
				zap.String("source_file", cr.resume.SourceFile),
				zap.Error(err),
			)
			continue
		}
		scores = append(scores, score)
	}

	log.Info("workflow state", zap.String("state", string(StateReporting)), zap.Int("scored", len(scores)))
	rep := o.reporter.Generate(runID, scores)

	log.Info("workflow state", zap.String("state", string(StateDone)),
		zap.Int("shortlisted", len(rep.Shortlisted)),
		zap.Int("rejected", len(rep.Rejected)),
	)
	return rep, nil
}

// extractResumes structures every input file, skipping per-file failures.
// Input order is preserved for the survivors.
func (o *Orchestrator) extractResumes(ctx context.Context, log *zap.Logger, paths []string) ([]*types.ExtractedResume, error) {
	extracted := make([]*types.ExtractedResume, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxConcurrent)
	for i, path := range paths {
		g.Go(func() error {
			res, err := o.structurer.Structure(gctx, path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				// Documented skip policy: this resume is lost, the run
				// continues.
				log.Warn("resume skipped", zap.String("file", path), zap.Error(err))
				return nil
			}
			extracted[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(paths))
	survivors := make([]*types.ExtractedResume, 0, len(paths))
	for _, res := range extracted {
		if res == nil {
			continue
		}
		// source_file is the join key for everything downstream; a second
		// file with the same base name cannot be represented.
		if seen[res.SourceFile] {
			log.Warn("resume skipped, duplicate source file", zap.String("source_file", res.SourceFile))
			continue
		}
		seen[res.SourceFile] = true
		survivors = append(survivors, res)
	}

	if len(survivors) == 0 {
		return nil, &NoCandidatesError{Submitted: len(paths)}
	}
	return survivors, nil
}

// evaluateCandidates fans out all five evaluators per candidate, and across
// candidates. A single evaluator failure excludes that candidate with a
// warning; it never fails the run.
func (o *Orchestrator) evaluateCandidates(
	ctx context.Context,
	log *zap.Logger,
	job *types.JobRequirements,
	jobText string,
	resumes []*types.ExtractedResume,
) ([]candidateResults, error) {
	var mu sync.Mutex
	evaluated := make([]candidateResults, 0, len(resumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxConcurrent)
	for _, res := range resumes {
		g.Go(func() error {
			results, err := o.evaluateOne(gctx, job, jobText, res)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn("candidate excluded, evaluator failed",
					zap.String("source_file", res.SourceFile),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			evaluated = append(evaluated, candidateResults{resume: res, results: results})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Fan-out completion order is nondeterministic; restore input order so
	// downstream tie-breaking is stable.
	order := make(map[string]int, len(resumes))
	for i, res := range resumes {
		order[res.SourceFile] = i
	}
	sort.Slice(evaluated, func(i, j int) bool {
		return order[evaluated[i].resume.SourceFile] < order[evaluated[j].resume.SourceFile]
	})

	return evaluated, nil
}

// evaluateOne runs the five evaluators for one candidate concurrently. The
// first evaluator error cancels the rest; all five must succeed.
func (o *Orchestrator) evaluateOne(
	ctx context.Context,
	job *types.JobRequirements,
	jobText string,
	res *types.ExtractedResume,
) ([]evaluate.Result, error) {
	in := evaluate.Input{
		Job:        job,
		JobText:    jobText,
		Resume:     res.Resume,
		SourceFile: res.SourceFile,
	}

	results := make([]evaluate.Result, len(o.evaluators))
	g, gctx := errgroup.WithContext(ctx)
	for i, ev := range o.evaluators {
		g.Go(func() error {
			r, err := ev.Evaluate(gctx, in)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
