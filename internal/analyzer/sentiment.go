package analyzer

import (
	"strings"

	"call-insights-go/internal/types"
)

// scoreText applies the lexical polarity formula to already-lowered text.
// Each lexicon word contributes at most once: presence, not frequency. Text
// with no listed words scores exactly 0.
func (a *Analyzer) scoreText(lower string) float64 {
	pos, neg := 0, 0
	for _, w := range a.lex.PositiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range a.lex.NegativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

// analyzeSentiment scores the whole transcript, each role's concatenated
// speech, and every utterance individually for the timeline. All values are
// in [-1, 1] by construction.
func (a *Analyzer) analyzeSentiment(lowerTranscript string, utts []types.Utterance) types.Sentiment {
	s := types.Sentiment{
		Overall: a.scoreText(lowerTranscript),
		BySpeaker: map[string]float64{
			types.RoleEmployee: a.scoreText(strings.ToLower(roleText(utts, types.RoleEmployee))),
			types.RoleCustomer: a.scoreText(strings.ToLower(roleText(utts, types.RoleCustomer))),
		},
		Timeline: make([]types.SentimentPoint, 0, len(utts)),
	}
	for _, u := range utts {
		s.Timeline = append(s.Timeline, types.SentimentPoint{
			Time:      u.Start,
			Speaker:   u.Speaker,
			Sentiment: a.scoreText(strings.ToLower(u.Text)),
		})
	}
	return s
}
