package types

// Speaker roles assigned to utterances once the channel mapping is known.
const (
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

// Call directions. Direction decides which audio channel carries the employee.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Word is a single recognized word with word-level diarization. Only used as a
// fallback when the provider returns no utterance segmentation.
type Word struct {
	Word           string  `json:"word"`
	SpeakerChannel int     `json:"speaker_channel"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
}

// RawUtterance is a provider utterance before any role assignment.
type RawUtterance struct {
	SpeakerChannel int     `json:"speaker_channel"`
	Text           string  `json:"text"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
}

// Utterance is one continuous speech segment attributed to a single role.
type Utterance struct {
	Speaker    string  `json:"speaker"`
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
	Channel    int     `json:"channel"`
}

// TranscriptionResult is the provider-agnostic transcription DTO. Provider
// responses are converted into this shape once, at the boundary, so the
// analyzers never see vendor-specific schemas.
type TranscriptionResult struct {
	Transcript string         `json:"transcript"`
	Confidence float64        `json:"confidence"`
	Utterances []RawUtterance `json:"utterances"`
	Words      []Word         `json:"words,omitempty"`
}

// CallContext is the call metadata needed to interpret a transcript.
type CallContext struct {
	CallDirection   string `json:"call_direction"`
	CustomerName    string `json:"customer_name"`
	DurationSeconds int    `json:"duration_seconds"`
}

// CallRecord is one row of a call log spreadsheet.
type CallRecord struct {
	CallID        string `json:"call_id"`
	AudioURL      string `json:"audio_url"`
	CallDirection string `json:"call_direction,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	DurationSec   int    `json:"duration_seconds,omitempty"`
}

// CallSummary is the optional LLM enrichment layered on top of an analysis.
type CallSummary struct {
	Summary                string `json:"summary"`
	CustomerIntent         string `json:"customer_intent"`
	ResolutionStatus       string `json:"resolution_status"`
	FollowUpRecommendation string `json:"followup_recommendation"`
}
