package observability

import (
	"testing"

	"github.com/plotforge/plotforge-api/internal/llm"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCost_KnownModel(t *testing.T) {
	usage := llm.UsageTokens{InputTokens: 1000, OutputTokens: 1000, TotalTokens: 2000}

	cost := CalculateCost("gpt-5-mini", usage)

	assert.InDelta(t, 0.00025+0.002, cost, 1e-9)
}

func TestCalculateCost_UnknownModelFallsBack(t *testing.T) {
	usage := llm.UsageTokens{InputTokens: 2000, OutputTokens: 500}

	cost := CalculateCost("totally-unknown-model", usage)

	// Unknown models price as gpt-5-mini
	assert.InDelta(t, CalculateCost("gpt-5-mini", usage), cost, 1e-12)
}

func TestCalculateCost_ZeroUsage(t *testing.T) {
	assert.Zero(t, CalculateCost("gpt-5", llm.UsageTokens{}))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.002250", FormatCost(0.00225))
	assert.Equal(t, "$0.000000", FormatCost(0))
}
