// Package analyzer turns a diarized transcription plus call metadata into a
// structured analytics report. Everything here is rule-based text scanning:
// no vendor calls, no persistence, no shared mutable state.
package analyzer

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"call-insights-go/internal/lexicon"
	"call-insights-go/internal/logger"
	"call-insights-go/internal/types"
)

// Thresholds are the tunable cutoffs used by the quality analyzer and the
// insight synthesizer.
type Thresholds struct {
	// SilenceGapSeconds is the adjacent-utterance gap that counts as a
	// silence period (strictly greater than).
	SilenceGapSeconds float64

	// UpsellAcceptWindowChars bounds how far past an upsell phrase the
	// acceptance scan looks.
	UpsellAcceptWindowChars int

	// CoachingComplianceBelow flags script adherence coaching.
	CoachingComplianceBelow float64

	// CoachingInterruptionsAbove flags active-listening coaching.
	CoachingInterruptionsAbove int

	// CustomerSentimentActionBelow triggers a high-priority follow-up.
	CustomerSentimentActionBelow float64
}

// DefaultThresholds returns the production cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SilenceGapSeconds:            3.0,
		UpsellAcceptWindowChars:      200,
		CoachingComplianceBelow:      80,
		CoachingInterruptionsAbove:   3,
		CustomerSentimentActionBelow: 0,
	}
}

// Analyzer runs the full post-call analysis pass. One instance is safe for
// concurrent use across calls.
type Analyzer struct {
	lex     lexicon.Lexicon
	thr     Thresholds
	priceRe *regexp.Regexp
	timeRe  *regexp.Regexp
	log     *logrus.Entry
}

// New builds an Analyzer from an explicit lexicon and thresholds.
func New(lex lexicon.Lexicon, thr Thresholds) *Analyzer {
	return &Analyzer{
		lex:     lex,
		thr:     thr,
		priceRe: regexp.MustCompile(lex.PricePattern),
		timeRe:  regexp.MustCompile(lex.TimePattern),
		log:     logger.New().WithField("component", "analyzer"),
	}
}

// NewDefault builds an Analyzer with the standard vocabulary and cutoffs.
func NewDefault() *Analyzer {
	return New(lexicon.Default(), DefaultThresholds())
}

// Analyze produces a fresh AnalysisReport for one call. Missing diarization is
// not an error: role-keyed fields simply stay empty and the transcript-level
// scans still run.
func (a *Analyzer) Analyze(tr types.TranscriptionResult, call types.CallContext) types.AnalysisReport {
	utterances, speakers := a.assignRoles(tr, call.CallDirection)
	utterances = a.sanitize(utterances)

	lower := strings.ToLower(tr.Transcript)

	report := types.AnalysisReport{
		Transcript: tr.Transcript,
		Confidence: tr.Confidence,
		Speakers:   speakers,
		Utterances: utterances,
		Topics:     a.extractTopics(lower),
		Entities:   a.extractEntities(lower, call),
	}
	report.Sentiment = a.analyzeSentiment(lower, utterances)
	report.ScriptCompliance = a.checkCompliance(roleText(utterances, types.RoleEmployee))
	report.SalesMetrics = a.extractSales(lower)
	report.QualityMetrics = a.analyzeQuality(utterances)
	report.Insights = a.synthesize(&report)
	return report
}

// sanitize clamps malformed timestamps (end before start) to zero duration so
// one bad utterance cannot push negative durations into the timing math.
func (a *Analyzer) sanitize(utts []types.Utterance) []types.Utterance {
	for i := range utts {
		if utts[i].End < utts[i].Start {
			a.log.WithFields(logrus.Fields{
				"index": i,
				"start": utts[i].Start,
				"end":   utts[i].End,
			}).Warn("utterance ends before it starts, clamping")
			utts[i].End = utts[i].Start
		}
	}
	return utts
}

// roleText joins one role's utterance texts in order.
func roleText(utts []types.Utterance, role string) string {
	var parts []string
	for _, u := range utts {
		if u.Speaker == role {
			parts = append(parts, u.Text)
		}
	}
	return strings.Join(parts, " ")
}

// dedup keeps the first occurrence of each value, preserving order.
func dedup(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
