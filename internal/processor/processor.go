// Package processor runs the per-call pipeline: transcribe, analyze, and
// optionally summarize, with a timed result envelope.
package processor

import (
	"fmt"
	"time"

	"call-insights-go/internal/analyzer"
	"call-insights-go/internal/extractor"
	"call-insights-go/internal/logger"
	"call-insights-go/internal/transcription"
	"call-insights-go/internal/types"
)

// CallResult is the envelope returned for one processed call.
type CallResult struct {
	CallID     string               `json:"call_id,omitempty"`
	AudioURL   string               `json:"audio_url"`
	Transcript string               `json:"transcript"`
	Report     types.AnalysisReport `json:"report"`
	Summary    *types.CallSummary   `json:"summary,omitempty"`
	DurationMs int64                `json:"duration_ms"`
	Error      string               `json:"error,omitempty"`
}

// ProcessCall transcribes and analyzes one recorded call. A failed summary
// enrichment is logged and dropped, never fatal; a failed transcription is.
func ProcessCall(an *analyzer.Analyzer, rec types.CallRecord) (CallResult, error) {
	log := logger.New().WithField("component", "processor").WithField("audio_url", rec.AudioURL)
	start := time.Now()
	res := CallResult{CallID: rec.CallID, AudioURL: rec.AudioURL}

	tr, err := transcription.GetTranscription(rec.AudioURL)
	if err != nil {
		res.Error = fmt.Sprintf("transcription error: %v", err)
		res.DurationMs = time.Since(start).Milliseconds()
		return res, err
	}
	res.Transcript = tr.Transcript

	direction := rec.CallDirection
	if direction == "" {
		direction = types.DirectionInbound
	}
	call := types.CallContext{
		CallDirection:   direction,
		CustomerName:    rec.CustomerName,
		DurationSeconds: rec.DurationSec,
	}
	res.Report = an.Analyze(tr, call)

	if extractor.Enabled() {
		summary, err := extractor.Summarize(tr.Transcript, res.Report)
		if err != nil {
			log.WithError(err).Warn("summary enrichment failed, continuing without it")
		} else {
			res.Summary = &summary
		}
	}

	res.DurationMs = time.Since(start).Milliseconds()
	log.WithField("duration_ms", res.DurationMs).
		WithField("outcome", res.Report.SalesMetrics.Outcome).
		Info("call processed")
	return res, nil
}
