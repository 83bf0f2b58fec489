package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMProviderTypeIsValid(t *testing.T) {
	assert.True(t, LLMProviderTypeOpenRouter.IsValid())
	assert.True(t, LLMProviderTypeGRPC.IsValid())
	assert.False(t, LLMProviderType("openai").IsValid())
	assert.False(t, LLMProviderType("").IsValid())
}

func TestOutputModeIsValid(t *testing.T) {
	assert.True(t, OutputModePerspectives.IsValid())
	assert.True(t, OutputModeSynthesis.IsValid())
	assert.True(t, OutputModeBoth.IsValid())
	assert.False(t, OutputMode("everything").IsValid())
}

func TestOutputModeWantsSynthesis(t *testing.T) {
	assert.False(t, OutputModePerspectives.WantsSynthesis())
	assert.True(t, OutputModeSynthesis.WantsSynthesis())
	assert.True(t, OutputModeBoth.WantsSynthesis())
}

func TestAggregationMethodIsValid(t *testing.T) {
	assert.True(t, AggregationBorda.IsValid())
	assert.True(t, AggregationBradleyTerry.IsValid())
	assert.True(t, AggregationELO.IsValid())
	assert.False(t, AggregationMethod("coin_flip").IsValid())
}
