package analyzer

import (
	"strings"

	"call-insights-go/internal/types"
)

// extractSales runs the single-pass sales scan over the lowered transcript:
// appointment confirmation, services, prices, upsell attempt/acceptance,
// competitor and follow-up mentions, then the first-match outcome chain.
func (a *Analyzer) extractSales(lower string) types.SalesMetrics {
	m := types.SalesMetrics{
		ServicesMentioned: []string{},
		PricesMentioned:   []string{},
		Outcome:           types.OutcomeUnknown,
	}

	for _, p := range a.lex.AppointmentPhrases {
		if strings.Contains(lower, p) {
			m.AppointmentScheduled = true
			break
		}
	}

	for _, svc := range a.lex.SalesServices {
		if strings.Contains(lower, svc) {
			m.ServicesMentioned = append(m.ServicesMentioned, svc)
		}
	}
	m.ServicesMentioned = dedup(m.ServicesMentioned)

	if prices := a.priceRe.FindAllString(lower, -1); len(prices) > 0 {
		m.PriceDiscussed = true
		m.PricesMentioned = prices
	}

	// Upsell: first trigger phrase wins; acceptance is searched in a bounded
	// forward window from the trigger's position.
	for _, p := range a.lex.UpsellPhrases {
		idx := strings.Index(lower, p)
		if idx < 0 {
			continue
		}
		m.UpsellAttempted = true
		end := idx + a.thr.UpsellAcceptWindowChars
		if end > len(lower) {
			end = len(lower)
		}
		window := lower[idx:end]
		for _, accept := range a.lex.AcceptancePhrases {
			if strings.Contains(window, accept) {
				m.UpsellAccepted = true
				break
			}
		}
		break
	}

	for _, p := range a.lex.CompetitorPhrases {
		if strings.Contains(lower, p) {
			m.CompetitorMentioned = true
			break
		}
	}
	for _, p := range a.lex.FollowUpPhrases {
		if strings.Contains(lower, p) {
			m.FollowUpScheduled = true
			break
		}
	}

	switch {
	case m.AppointmentScheduled:
		m.Outcome = types.OutcomeAppointmentScheduled
	case len(m.ServicesMentioned) > 0 && m.PriceDiscussed:
		m.Outcome = types.OutcomeQuotedService
	case strings.Contains(lower, "call back") || strings.Contains(lower, "think about it"):
		m.Outcome = types.OutcomeFollowUpNeeded
	}
	return m
}
