package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandesh/shortlist-agent/internal/aggregate"
	"github.com/sandesh/shortlist-agent/internal/config"
	"github.com/sandesh/shortlist-agent/internal/docproc"
	"github.com/sandesh/shortlist-agent/internal/evaluate"
	"github.com/sandesh/shortlist-agent/internal/jobparse"
	"github.com/sandesh/shortlist-agent/internal/llm"
	"github.com/sandesh/shortlist-agent/internal/logger"
	"github.com/sandesh/shortlist-agent/internal/report"
	"github.com/sandesh/shortlist-agent/internal/resume"
	"github.com/sandesh/shortlist-agent/internal/types"
	"github.com/sandesh/shortlist-agent/internal/workflow"
)

// Report filenames are a convention, not a contract; callers embedding the
// workflow can persist the returned report however they like.
const (
	reportFileName  = "shortlist_report.json"
	summaryFileName = "shortlist_summary.txt"
)

var runCmd = &cobra.Command{
	Use:   "run [resume files...]",
	Short: "Run the shortlisting workflow over a job description and a set of resumes",
	Long: `Parses the job description, structures every resume (.pdf, .docx, .txt),
evaluates each candidate against five criteria (skills, experience years,
work alignment, project alignment, qualification), aggregates weighted
scores, and writes shortlist_report.json and shortlist_summary.txt.

Resumes are given as positional arguments, via --resumes-dir, or both.`,
	RunE: runShortlisting,
}

var (
	runConfigPath string
	runJobPath    string
	runResumesDir string
	runOutDir     string
	runThreshold  float64
	runAPIKey     string
	runJSONLogs   bool
	runDebug      bool
)

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to a YAML/JSON config file (flags override it)")
	runCmd.Flags().StringVarP(&runJobPath, "job", "j", "", "Path to the job description text file (required)")
	runCmd.Flags().StringVarP(&runResumesDir, "resumes-dir", "r", "", "Directory to scan for resume files")
	runCmd.Flags().StringVarP(&runOutDir, "out-dir", "o", ".", "Directory to write the report files into")
	runCmd.Flags().Float64VarP(&runThreshold, "threshold", "t", 0, "Shortlisting threshold on the 0-100 scale (default 70)")
	runCmd.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	runCmd.Flags().BoolVar(&runJSONLogs, "json", false, "JSON log output")
	runCmd.Flags().BoolVarP(&runDebug, "debug", "d", false, "Verbose debug logging")
	_ = runCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(runCmd)
}

func runShortlisting(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := logger.New(runJSONLogs, runDebug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = runThreshold
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jdText, err := os.ReadFile(runJobPath)
	if err != nil {
		return fmt.Errorf("read job description %s: %w", runJobPath, err)
	}

	resumePaths, err := collectResumePaths(args, runResumesDir)
	if err != nil {
		return err
	}
	if len(resumePaths) == 0 {
		return fmt.Errorf("no resume files given; pass paths or --resumes-dir")
	}

	orchestrator, cleanup, err := buildOrchestrator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	rep, err := orchestrator.Run(ctx, string(jdText), resumePaths)
	if err != nil {
		return err
	}

	if err := writeReport(rep, runOutDir); err != nil {
		return err
	}
	log.Info("report written",
		zap.String("dir", runOutDir),
		zap.Int("total_candidates", rep.TotalCandidates),
		zap.Int("shortlisted", len(rep.Shortlisted)),
	)
	return nil
}

// buildOrchestrator wires the workflow from configuration. The returned
// cleanup closes the LLM client.
func buildOrchestrator(ctx context.Context, cfg *config.Config, log *zap.Logger) (*workflow.Orchestrator, func(), error) {
	llmConfig := llm.DefaultConfig()
	for tier, model := range cfg.Models {
		llmConfig.Models[llm.ModelTier(tier)] = model
	}

	client, err := llm.NewGeminiClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, err
	}
	extractor := llm.NewSchemaExtractor(client, cfg.ExtractionRetries, cfg.ExtractionTimeout, log)

	processor := docproc.NewProcessor(
		docproc.NewFormatConverter(),
		docproc.NewRegexRedactor(cfg.RedactionAllowlist),
		log,
	)

	aggregator, err := aggregate.New(cfg.Weights)
	if err != nil {
		return nil, nil, err
	}

	orchestrator := workflow.New(workflow.Options{
		Parser:     jobparse.NewParser(extractor),
		Structurer: resume.NewStructurer(processor, extractor),
		Evaluators: evaluate.DefaultEvaluators(evaluate.Deps{
			Extractor:           extractor,
			DegreeWeights:       cfg.DegreeWeights,
			DefaultDegreeWeight: cfg.DegreeFallbackWeight,
		}),
		Aggregator:           aggregator,
		Reporter:             report.NewGenerator(cfg.Threshold),
		Logger:               log,
		MaxConcurrentResumes: cfg.MaxConcurrentResumes,
	})

	return orchestrator, func() { _ = client.Close() }, nil
}

// collectResumePaths merges explicit paths with a directory scan. Unsupported
// files in the directory are ignored here; explicitly named files are passed
// through so the workflow can log their rejection.
func collectResumePaths(args []string, dir string) ([]string, error) {
	paths := append([]string{}, args...)
	if dir == "" {
		return paths, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read resumes dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".docx", ".txt":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

func writeReport(rep *types.ShortlistReport, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, reportFileName), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", reportFileName, err)
	}

	summary := report.Summary(rep)
	if err := os.WriteFile(filepath.Join(outDir, summaryFileName), []byte(summary), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", summaryFileName, err)
	}
	return nil
}
