package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-insights-go/internal/analyzer"
	"call-insights-go/internal/types"
)

func TestProcessCallMockPipeline(t *testing.T) {
	t.Setenv("USE_MOCK_TRANSCRIBE", "true")
	t.Setenv("USE_MOCK_LLM", "true")

	rec := types.CallRecord{
		CallID:        "c-001",
		AudioURL:      "https://cdn.example.com/c-001.mp3",
		CallDirection: types.DirectionInbound,
		CustomerName:  "unknown",
	}

	res, err := ProcessCall(analyzer.NewDefault(), rec)

	require.NoError(t, err)
	assert.Empty(t, res.Error)
	assert.Equal(t, "c-001", res.CallID)
	assert.NotEmpty(t, res.Transcript)
	assert.GreaterOrEqual(t, res.DurationMs, int64(0))

	assert.InDelta(t, 100.0, res.Report.ScriptCompliance.Score, 1e-9)
	assert.Equal(t, types.OutcomeAppointmentScheduled, res.Report.SalesMetrics.Outcome)
	assert.True(t, res.Report.SalesMetrics.AppointmentScheduled)

	require.NotNil(t, res.Summary)
	assert.NotEmpty(t, res.Summary.Summary)
}

func TestProcessCallDefaultsDirectionInbound(t *testing.T) {
	t.Setenv("USE_MOCK_TRANSCRIBE", "true")
	t.Setenv("USE_MOCK_LLM", "false")
	t.Setenv("LLM_GATEWAY_URL", "")
	t.Setenv("LLM_API_KEY", "")

	res, err := ProcessCall(analyzer.NewDefault(), types.CallRecord{
		AudioURL: "https://cdn.example.com/c-002.mp3",
	})

	require.NoError(t, err)
	assert.Nil(t, res.Summary, "summary disabled when no gateway is configured")
	// Mock diarization carries channel 0 for the employee on inbound calls.
	assert.NotEmpty(t, res.Report.Speakers[types.RoleEmployee].Utterances)
}

func TestProcessCallTranscriptionFailure(t *testing.T) {
	t.Setenv("USE_MOCK_TRANSCRIBE", "false")
	t.Setenv("DEEPGRAM_API_KEY", "")

	res, err := ProcessCall(analyzer.NewDefault(), types.CallRecord{
		AudioURL: "https://cdn.example.com/c-003.mp3",
	})

	assert.Error(t, err)
	assert.Contains(t, res.Error, "transcription error")
	assert.Empty(t, res.Transcript)
}
