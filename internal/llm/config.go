// Package llm wraps the external structured-extraction capability: an LLM
// that, given a prompt and a target schema, returns a conforming JSON
// instance. Everything above this package treats the capability as opaque
// and substitutable.
package llm

// ModelTier represents the capability level required for a task.
type ModelTier string

const (
	// TierLite is for cheap classification tasks (degree mapping).
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction (resumes, judgements).
	TierStandard ModelTier = "standard"
	// TierAdvanced is for extraction that needs reasoning (job parsing).
	TierAdvanced ModelTier = "advanced"
)

// Config maps model tiers to concrete provider models.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// Model returns the model for a tier, falling back to standard then lite.
func (c *Config) Model(tier ModelTier) string {
	if m, ok := c.Models[tier]; ok {
		return m
	}
	if m, ok := c.Models[TierStandard]; ok {
		return m
	}
	return c.Models[TierLite]
}
