package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-insights-go/internal/types"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a": 1}`, `{"a": 1}`},
		{"fenced json", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"nested braces", `noise {"a": {"b": 2}} trailing`, `{"a": {"b": 2}}`},
		{"no object", "just words", ""},
		{"empty", "", ""},
		{"unbalanced", `{"a": 1`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

func TestExtractContentFromChoices(t *testing.T) {
	body := []byte(`{"choices":[{"message":{"content":"Here you go:\n{\"summary\":\"short\"}"}}]}`)
	assert.Equal(t, `{"summary":"short"}`, extractContentFromChoices(body))

	assert.Empty(t, extractContentFromChoices([]byte(`{"choices":[]}`)))
	assert.Empty(t, extractContentFromChoices([]byte(`not json`)))
}

func TestBuildSummaryPromptEmbedsInputs(t *testing.T) {
	report := types.AnalysisReport{
		Topics:       []string{"brake"},
		SalesMetrics: types.SalesMetrics{Outcome: types.OutcomeQuotedService},
	}

	prompt := BuildSummaryPrompt("my brakes squeak", report)

	assert.Contains(t, prompt, "my brakes squeak")
	assert.Contains(t, prompt, types.OutcomeQuotedService)
	assert.Contains(t, prompt, "followup_recommendation")
}

func TestSummarizeMockMode(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "true")

	summary, err := Summarize("transcript", types.AnalysisReport{})

	require.NoError(t, err)
	assert.NotEmpty(t, summary.Summary)
	assert.NotEmpty(t, summary.ResolutionStatus)
}

func TestSummarizeUnconfiguredGateway(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "false")
	t.Setenv("LLM_GATEWAY_URL", "")
	t.Setenv("LLM_API_KEY", "")

	_, err := Summarize("transcript", types.AnalysisReport{})

	assert.Error(t, err)
}

func TestEnabled(t *testing.T) {
	t.Setenv("USE_MOCK_LLM", "false")
	t.Setenv("LLM_GATEWAY_URL", "")
	t.Setenv("LLM_API_KEY", "")
	assert.False(t, Enabled())

	t.Setenv("USE_MOCK_LLM", "true")
	assert.True(t, Enabled())

	t.Setenv("USE_MOCK_LLM", "false")
	t.Setenv("LLM_GATEWAY_URL", "http://localhost:9999/v1/chat/completions")
	t.Setenv("LLM_API_KEY", "test-key")
	assert.True(t, Enabled())
}
