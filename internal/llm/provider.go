package llm

import "context"

// Provider defines the interface for LLM providers
// All providers MUST support structured output (JSON Schema) for reliable response parsing
type Provider interface {
	// Generate issues a single request to the LLM with structured output.
	// The provider MUST enforce the OutputSchema so the returned text is valid JSON
	// of the requested shape.
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for one generation call
type GenerationRequest struct {
	Model        string
	SystemPrompt string
	InputArray   []map[string]any

	// Sampling temperature. Zero means "let the provider default apply".
	Temperature float64

	// Hard cap on output tokens for this call. Zero means no explicit cap.
	MaxOutputTokens int64

	// Structured output schema - REQUIRED for reliable JSON parsing
	OutputSchema *OutputSchema
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	// RawOutput is the schema-conformant JSON text returned by the provider.
	RawOutput string `json:"-"`
	// Usage holds provider-specific token accounting, normalized via UsageTokens.
	Usage UsageTokens `json:"usage"`
}

// UsageTokens is a provider-agnostic token usage summary
type UsageTokens struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Map converts the usage summary to a generic map for logging and tracing
func (u UsageTokens) Map() map[string]interface{} {
	return map[string]interface{}{
		"input_tokens":  u.InputTokens,
		"output_tokens": u.OutputTokens,
		"total_tokens":  u.TotalTokens,
	}
}
