package types

// SpeakerTrack groups one role's channel and its ordered utterance texts.
type SpeakerTrack struct {
	Channel    int      `json:"channel"`
	Utterances []string `json:"utterances"`
}

// SentimentPoint is one per-utterance sentiment estimate on the call timeline.
type SentimentPoint struct {
	Time      float64 `json:"time"`
	Speaker   string  `json:"speaker"`
	Sentiment float64 `json:"sentiment"`
}

// Sentiment holds the lexical polarity scores. Overall and per-speaker values
// are bounded to [-1, 1] by construction.
type Sentiment struct {
	Overall   float64            `json:"overall"`
	BySpeaker map[string]float64 `json:"by_speaker"`
	Timeline  []SentimentPoint   `json:"timeline"`
}

// ComplianceDetail records how a single script component was (or wasn't) hit.
type ComplianceDetail struct {
	Found    bool     `json:"found"`
	Keyword  string   `json:"keyword,omitempty"`
	Expected []string `json:"expected,omitempty"`
}

// ScriptCompliance reports coverage of the fixed script component set.
// FoundComponents and MissingComponents always partition that set.
type ScriptCompliance struct {
	Score             float64                     `json:"score"`
	FoundComponents   []string                    `json:"found_components"`
	MissingComponents []string                    `json:"missing_components"`
	Details           map[string]ComplianceDetail `json:"details"`
}

// Coarse call outcomes, assigned by first-matching priority.
const (
	OutcomeAppointmentScheduled = "appointment_scheduled"
	OutcomeQuotedService        = "quoted_service"
	OutcomeFollowUpNeeded       = "follow_up_needed"
	OutcomeUnknown              = "unknown"
)

// SalesMetrics captures the sales-related signals scanned from the transcript.
type SalesMetrics struct {
	AppointmentScheduled bool     `json:"appointment_scheduled"`
	ServicesMentioned    []string `json:"services_mentioned"`
	PriceDiscussed       bool     `json:"price_discussed"`
	PricesMentioned      []string `json:"prices_mentioned"`
	UpsellAttempted      bool     `json:"upsell_attempted"`
	UpsellAccepted       bool     `json:"upsell_accepted"`
	CompetitorMentioned  bool     `json:"competitor_mentioned"`
	FollowUpScheduled    bool     `json:"follow_up_scheduled"`
	Outcome              string   `json:"outcome"`
}

// QualityMetrics captures interaction quality derived from utterance timing
// and employee word choice.
type QualityMetrics struct {
	Interruptions        int                `json:"interruptions"`
	SilencePeriods       int                `json:"silence_periods"`
	TalkRatio            map[string]float64 `json:"talk_ratio"`
	EmpathyIndicators    int                `json:"empathy_indicators"`
	ProfessionalismScore float64            `json:"professionalism_score"`
}

// CoachingOpportunity is one area flagged for agent coaching.
type CoachingOpportunity struct {
	Area           string   `json:"area"`
	Score          float64  `json:"score,omitempty"`
	Observation    string   `json:"observation,omitempty"`
	Missing        []string `json:"missing,omitempty"`
	Recommendation string   `json:"recommendation"`
}

// ActionItem is a follow-up task derived from the analysis.
type ActionItem struct {
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

// BusinessIntelligence mirrors the sales and topic signals for reporting.
type BusinessIntelligence struct {
	ServicesDiscussed    []string `json:"services_discussed"`
	PriceSensitivity     string   `json:"price_sensitivity"`
	ConversionLikelihood string   `json:"conversion_likelihood"`
	CustomerTopics       []string `json:"customer_topics"`
}

// Insights is the synthesized coaching/action layer over the raw metrics.
type Insights struct {
	KeyFindings           []string              `json:"key_findings"`
	ActionItems           []ActionItem          `json:"action_items"`
	CoachingOpportunities []CoachingOpportunity `json:"coaching_opportunities"`
	BusinessIntelligence  BusinessIntelligence  `json:"business_intelligence"`
}

// AnalysisReport is the aggregate analytics record for one call. It is created
// fresh per analysis and never mutated after return.
type AnalysisReport struct {
	Transcript       string                  `json:"transcript"`
	Confidence       float64                 `json:"confidence"`
	Speakers         map[string]SpeakerTrack `json:"speakers"`
	Utterances       []Utterance             `json:"utterances"`
	Sentiment        Sentiment               `json:"sentiment"`
	Topics           []string                `json:"topics"`
	Entities         map[string][]string     `json:"entities"`
	ScriptCompliance ScriptCompliance        `json:"script_compliance"`
	SalesMetrics     SalesMetrics            `json:"sales_metrics"`
	QualityMetrics   QualityMetrics          `json:"quality_metrics"`
	Insights         Insights                `json:"insights"`
}
