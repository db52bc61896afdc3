package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sandesh/shortlist-agent/internal/logger"
	"github.com/sandesh/shortlist-agent/internal/schemas"
)

// Request describes one structured-extraction call: a fully rendered prompt,
// the embedded schema the response must conform to, and the model tier.
type Request struct {
	Prompt string
	Schema string
	Tier   ModelTier
}

// Extractor is the narrow structured-extraction capability the pipeline
// depends on. Any implementation that fills out with a schema-conforming
// instance is substitutable; tests use a deterministic fake.
type Extractor interface {
	Extract(ctx context.Context, req Request, out any) error
}

const (
	defaultRetries = 3
	defaultTimeout = 60 * time.Second
	promptPreview  = 200
)

// SchemaExtractor implements Extractor on a Client. Each call carries its own
// timeout; non-conforming responses are retried up to the configured bound.
// Retry policy lives here and nowhere else: callers treat a returned error
// as terminal for their unit of work.
type SchemaExtractor struct {
	client  Client
	retries int
	timeout time.Duration
	log     *zap.Logger
}

// NewSchemaExtractor wires an Extractor over a Client. Zero retries or
// timeout select the defaults (3 attempts, 60s per call).
func NewSchemaExtractor(client Client, retries int, timeout time.Duration, log *zap.Logger) *SchemaExtractor {
	if retries <= 0 {
		retries = defaultRetries
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SchemaExtractor{client: client, retries: retries, timeout: timeout, log: log}
}

// Extract generates JSON for the request, validates it against the target
// schema, and unmarshals it into out.
func (e *SchemaExtractor) Extract(ctx context.Context, req Request, out any) error {
	var lastErr error

	for attempt := 1; attempt <= e.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		e.log.Debug("structured extraction attempt",
			zap.String("schema", req.Schema),
			zap.Int("attempt", attempt),
			zap.String("prompt_preview", logger.Truncate(req.Prompt, promptPreview)),
		)

		raw, err := e.generate(ctx, req)
		if err != nil {
			// A dead parent context will fail every remaining attempt too.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			continue
		}

		if err := schemas.Validate(req.Schema, []byte(raw)); err != nil {
			lastErr = err
			e.log.Debug("extraction response rejected",
				zap.String("schema", req.Schema),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}

		if err := json.Unmarshal([]byte(raw), out); err != nil {
			lastErr = fmt.Errorf("unmarshal extraction response: %w", err)
			continue
		}
		return nil
	}

	return fmt.Errorf("extraction failed after %d attempts: %w", e.retries, lastErr)
}

func (e *SchemaExtractor) generate(ctx context.Context, req Request) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.client.GenerateJSON(callCtx, req.Prompt, req.Tier)
}
