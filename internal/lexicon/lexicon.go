// Package lexicon holds the fixed vocabulary tables the analyzers scan with.
// Tables are plain data injected at construction time so they can be tuned or
// localized without touching analyzer logic.
package lexicon

// ScriptComponent is one expected conversational component and the phrases
// that count as hitting it.
type ScriptComponent struct {
	Name     string
	Triggers []string
}

// Lexicon bundles every word/phrase table used across the analyzers.
type Lexicon struct {
	// ServiceTopics feed the topic extractor.
	ServiceTopics []string

	// SalesServices feed the services_mentioned scan (broader than topics).
	SalesServices []string

	// Sentiment polarity word lists.
	PositiveWords []string
	NegativeWords []string

	// Script components, in expected call order. Order is informational only;
	// compliance checks presence, not sequencing.
	ScriptComponents []ScriptComponent

	// Sales signal phrase lists.
	AppointmentPhrases []string
	UpsellPhrases      []string
	AcceptancePhrases  []string
	FollowUpPhrases    []string
	CompetitorPhrases  []string

	// Quality word lists, scanned over employee speech only.
	EmpathyPhrases      []string
	ProfessionalWords   []string
	UnprofessionalWords []string

	// PricePattern matches dollar amounts and spoken prices.
	PricePattern string

	// TimePattern is a best-effort matcher for scheduling mentions.
	TimePattern string
}

// Default returns the standard automotive service-call vocabulary.
func Default() Lexicon {
	return Lexicon{
		ServiceTopics: []string{
			"oil change", "brake", "tire", "battery", "inspection", "alignment",
		},
		SalesServices: []string{
			"oil change", "brake", "tire", "alignment", "inspection",
			"diagnostic", "battery", "filter", "fluid", "rotation",
		},
		PositiveWords: []string{
			"thank", "great", "perfect", "excellent", "happy", "good", "yes",
		},
		NegativeWords: []string{
			"problem", "issue", "no", "cannot", "sorry", "unfortunately",
		},
		ScriptComponents: []ScriptComponent{
			{Name: "greeting", Triggers: []string{
				"thank you for calling", "thanks for calling",
			}},
			{Name: "qualification", Triggers: []string{
				"how can i help", "what can i do for you", "what brings you in",
			}},
			{Name: "recommendation", Triggers: []string{
				"recommend", "we suggest", "you should consider",
			}},
			{Name: "booking", Triggers: []string{
				"scheduled for", "booked for", "confirm your appointment", "we'll see you",
			}},
			{Name: "closing", Triggers: []string{
				"anything else", "thank you for choosing", "have a great day",
			}},
		},
		AppointmentPhrases: []string{
			"scheduled for", "appointment on", "see you on", "come in on", "booked for",
		},
		UpsellPhrases: []string{
			"also recommend", "while you're here", "might as well",
			"should also", "suggest checking",
		},
		AcceptancePhrases: []string{
			"yes", "sure", "okay", "sounds good", "let's do",
		},
		FollowUpPhrases: []string{
			"call back", "think about it", "follow up",
		},
		CompetitorPhrases: []string{
			"another shop", "other shop", "somewhere else", "competitor",
			"down the street", "got a quote from",
		},
		EmpathyPhrases: []string{
			"understand", "sorry to hear", "appreciate", "thank you",
			"happy to help", "no problem", "absolutely",
		},
		ProfessionalWords: []string{
			"sir", "ma'am", "please", "thank you", "appreciate",
			"certainly", "absolutely", "happy to",
		},
		UnprofessionalWords: []string{
			"yeah", "nah", "dunno", "gonna", "wanna",
		},
		PricePattern: `\$[\d,]+(\.\d{2})?|\b\d+\s*dollars?\b`,
		TimePattern:  `\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|tomorrow|today)\b|\b\d{1,2}(:\d{2})?\s*(am|pm)\b`,
	}
}
