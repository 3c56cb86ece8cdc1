// Package transcription fetches diarized transcriptions from Deepgram's
// prerecorded API and converts them into the internal DTO at the boundary,
// so the rest of the system never touches the provider schema.
package transcription

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"call-insights-go/internal/logger"
	"call-insights-go/internal/types"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

const defaultListenURL = "https://api.deepgram.com/v1/listen"

// deepgramResponse mirrors the slice of the prerecorded response we read.
type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
				Words      []struct {
					Word    string  `json:"word"`
					Start   float64 `json:"start"`
					End     float64 `json:"end"`
					Speaker int     `json:"speaker"`
				} `json:"words"`
			} `json:"alternatives"`
		} `json:"channels"`
		Utterances []struct {
			Transcript string  `json:"transcript"`
			Start      float64 `json:"start"`
			End        float64 `json:"end"`
			Confidence float64 `json:"confidence"`
			Channel    int     `json:"channel"`
		} `json:"utterances"`
	} `json:"results"`
}

// GetTranscription transcribes a hosted recording. Supports offline demo via
// USE_MOCK_TRANSCRIBE=true.
func GetTranscription(audioURL string) (types.TranscriptionResult, error) {
	if os.Getenv("USE_MOCK_TRANSCRIBE") == "true" {
		return mockResult(), nil
	}

	log := logger.New().WithField("module", "transcription")

	apiKey := os.Getenv("DEEPGRAM_API_KEY")
	if apiKey == "" {
		return types.TranscriptionResult{}, errors.New("DEEPGRAM_API_KEY not set")
	}
	listenURL := os.Getenv("DEEPGRAM_LISTEN_URL")
	if listenURL == "" {
		listenURL = defaultListenURL
	}

	u, err := url.Parse(listenURL)
	if err != nil {
		return types.TranscriptionResult{}, fmt.Errorf("bad listen url: %w", err)
	}
	q := u.Query()
	q.Set("model", "nova-2")
	q.Set("punctuate", "true")
	q.Set("smart_format", "true")
	q.Set("diarize", "true")
	q.Set("utterances", "true")
	q.Set("multichannel", "true")
	q.Set("language", "en-US")
	u.RawQuery = q.Encode()

	payload, _ := json.Marshal(map[string]string{"url": audioURL})

	var resp deepgramResponse
	if err := doJSON("POST", u.String(), apiKey, payload, &resp); err != nil {
		log.WithError(err).Error("deepgram request failed")
		return types.TranscriptionResult{}, err
	}

	result := adapt(resp)
	log.WithField("utterances", len(result.Utterances)).Info("transcription complete")
	return result, nil
}

// adapt converts a provider response into the internal DTO.
func adapt(resp deepgramResponse) types.TranscriptionResult {
	out := types.TranscriptionResult{}

	if len(resp.Results.Channels) > 0 && len(resp.Results.Channels[0].Alternatives) > 0 {
		alt := resp.Results.Channels[0].Alternatives[0]
		out.Transcript = alt.Transcript
		out.Confidence = alt.Confidence
		for _, w := range alt.Words {
			out.Words = append(out.Words, types.Word{
				Word:           w.Word,
				SpeakerChannel: w.Speaker,
				Start:          w.Start,
				End:            w.End,
			})
		}
	}

	for _, u := range resp.Results.Utterances {
		out.Utterances = append(out.Utterances, types.RawUtterance{
			SpeakerChannel: u.Channel,
			Text:           u.Transcript,
			Start:          u.Start,
			End:            u.End,
			Confidence:     u.Confidence,
		})
	}
	return out
}

// doJSON posts a JSON payload with retry/backoff. Client errors are permanent;
// server errors and decode failures retry until the backoff budget runs out.
func doJSON(method, endpoint, apiKey string, payload []byte, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 45 * time.Second

	var lastErr error
	op := func() error {
		req, err := http.NewRequest(method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Token "+apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			lastErr = fmt.Errorf("client error %d: %s", resp.StatusCode, string(body))
			return backoff.Permanent(lastErr)
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
			return lastErr
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, string(body))
			return lastErr
		}
		return nil
	}

	if err := backoff.Retry(op, bo); err != nil {
		return lastErr
	}
	return nil
}

// mockResult is a deterministic two-speaker call for offline demos.
func mockResult() types.TranscriptionResult {
	return types.TranscriptionResult{
		Transcript: "Thank you for calling, how can I help? My car is making a grinding sound when I brake. " +
			"We recommend new brake pads, that will be $180. Okay, sounds good. " +
			"You're scheduled for Thursday at 9 am. Anything else I can help with?",
		Confidence: 0.94,
		Utterances: []types.RawUtterance{
			{SpeakerChannel: 0, Text: "Thank you for calling, how can I help?", Start: 0.0, End: 2.8, Confidence: 0.97},
			{SpeakerChannel: 1, Text: "My car is making a grinding sound when I brake.", Start: 3.1, End: 6.4, Confidence: 0.95},
			{SpeakerChannel: 0, Text: "We recommend new brake pads, that will be $180.", Start: 6.9, End: 10.5, Confidence: 0.96},
			{SpeakerChannel: 1, Text: "Okay, sounds good.", Start: 10.8, End: 11.9, Confidence: 0.93},
			{SpeakerChannel: 0, Text: "You're scheduled for Thursday at 9 am. Anything else I can help with?", Start: 12.2, End: 16.7, Confidence: 0.95},
		},
	}
}
