// Package extractor produces an optional LLM narrative summary for an
// analyzed call through an OpenAI-compatible gateway. The heuristic report is
// the ground truth; the LLM only narrates it.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"call-insights-go/internal/logger"
	"call-insights-go/internal/types"
)

// Enabled reports whether summary enrichment can run (gateway configured or
// mock mode on).
func Enabled() bool {
	if os.Getenv("USE_MOCK_LLM") == "true" {
		return true
	}
	return os.Getenv("LLM_GATEWAY_URL") != "" && os.Getenv("LLM_API_KEY") != ""
}

// BuildSummaryPrompt embeds the transcript and the computed metrics so the
// model cannot invent numbers: it summarizes, the analyzers measure.
func BuildSummaryPrompt(transcript string, report types.AnalysisReport) string {
	metrics := map[string]any{
		"script_compliance": report.ScriptCompliance,
		"sales_metrics":     report.SalesMetrics,
		"quality_metrics":   report.QualityMetrics,
		"sentiment":         report.Sentiment.BySpeaker,
		"topics":            report.Topics,
	}
	metricsJSON, _ := json.MarshalIndent(metrics, "", "  ")

	prompt := `You are a call-center quality reviewer for an automotive service business.

You are given a call transcript and the metrics already computed for it.
The metrics are ground truth: do NOT recompute or contradict them, and do NOT
invent numbers that are not present.

Return ONLY a JSON object with exactly these keys:
{
  "summary": "",
  "customer_intent": "",
  "resolution_status": "",
  "followup_recommendation": ""
}

Do not include commentary. Do not wrap the JSON in backticks.

COMPUTED METRICS:
%s

TRANSCRIPT:
%s
`
	return fmt.Sprintf(prompt, string(metricsJSON), transcript)
}

// Summarize calls the LLM gateway with retry/backoff and parses the JSON it
// returns. Mock mode (USE_MOCK_LLM=true) returns a deterministic summary.
func Summarize(transcript string, report types.AnalysisReport) (types.CallSummary, error) {
	log := logger.New().WithField("component", "extractor-summary")

	if os.Getenv("USE_MOCK_LLM") == "true" {
		log.Info("mock LLM mode ON - returning deterministic summary")
		return types.CallSummary{
			Summary:                "Customer called about a brake noise; advisor quoted brake pads and booked a Thursday appointment.",
			CustomerIntent:         "Diagnose and fix a brake noise",
			ResolutionStatus:       "appointment booked",
			FollowUpRecommendation: "Confirm the appointment the day before",
		}, nil
	}

	var (
		httpTimeout  = 25 * time.Second
		maxRetryTime = 45 * time.Second
		gatewayURL   = os.Getenv("LLM_GATEWAY_URL")
		model        = os.Getenv("LLM_MODEL")
		apiKey       = os.Getenv("LLM_API_KEY")
	)

	if gatewayURL == "" || apiKey == "" {
		return types.CallSummary{}, fmt.Errorf("llm gateway not configured")
	}

	reqBody := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": BuildSummaryPrompt(transcript, report)},
		},
		"temperature": 0.0,
	}
	data, _ := json.Marshal(reqBody)

	var summary types.CallSummary
	var lastErr error

	op := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), httpTimeout)
		defer cancel()

		req, _ := http.NewRequestWithContext(ctx, "POST", gatewayURL, bytes.NewReader(data))
		req.Header.Set("Authorization", "Bearer "+apiKey)
		req.Header.Set("Content-Type", "application/json")

		client := &http.Client{Timeout: httpTimeout}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			log.WithError(err).Warn("llm request failed")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		log.WithField("http_status", resp.StatusCode).Debug("llm raw response")

		if inner := extractContentFromChoices(body); inner != "" {
			if err := json.Unmarshal([]byte(inner), &summary); err == nil {
				lastErr = nil
				return nil
			}
		}
		if fallback := extractJSON(string(body)); fallback != "" {
			if err := json.Unmarshal([]byte(fallback), &summary); err == nil {
				lastErr = nil
				return nil
			}
		}

		lastErr = fmt.Errorf("no JSON found in LLM output")
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(lastErr)
		}
		return lastErr
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxRetryTime

	if err := backoff.Retry(op, b); err != nil {
		return types.CallSummary{}, fmt.Errorf("llm summary failed: %w", lastErr)
	}
	return summary, nil
}

// extractContentFromChoices reads openai-style choices[0].message.content and
// pulls the first JSON object out of it.
func extractContentFromChoices(body []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return ""
	}
	c0, _ := choices[0].(map[string]any)
	if c0 == nil {
		return ""
	}
	msg, _ := c0["message"].(map[string]any)
	if msg == nil {
		return ""
	}
	content, _ := msg["content"].(string)
	return extractJSON(content)
}

// extractJSON finds the first balanced JSON object in a string, stripping
// common markdown fences first.
func extractJSON(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, fence := range []string{"```json", "```yaml", "```text", "```", "`json", "`"} {
		s = strings.ReplaceAll(s, fence, "")
	}

	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return ""
}
