// Package aggregator rolls many per-call reports into fleet-level metrics.
package aggregator

import "call-insights-go/internal/types"

// Dashboard summarizes a batch of analyzed calls.
type Dashboard struct {
	TotalCalls           int            `json:"total_calls"`
	AvgComplianceScore   float64        `json:"avg_compliance_score"`
	AppointmentRate      float64        `json:"appointment_rate"`
	UpsellAttempts       int            `json:"upsell_attempts"`
	UpsellSuccessRate    float64        `json:"upsell_success_rate"`
	AvgCustomerSentiment float64        `json:"avg_customer_sentiment"`
	InterruptionsPerCall float64        `json:"interruptions_per_call"`
	OutcomeCounts        map[string]int `json:"outcome_counts"`
	TopTopics            map[string]int `json:"top_topics"`
}

// Aggregate computes the dashboard over a slice of reports. An empty slice
// yields a zero dashboard with initialized maps.
func Aggregate(reports []types.AnalysisReport) Dashboard {
	d := Dashboard{
		OutcomeCounts: map[string]int{},
		TopTopics:     map[string]int{},
	}
	d.TotalCalls = len(reports)
	if d.TotalCalls == 0 {
		return d
	}

	var complianceSum, sentimentSum float64
	var appointments, upsellWins, interruptions int
	for _, r := range reports {
		complianceSum += r.ScriptCompliance.Score
		sentimentSum += r.Sentiment.BySpeaker[types.RoleCustomer]
		interruptions += r.QualityMetrics.Interruptions
		if r.SalesMetrics.AppointmentScheduled {
			appointments++
		}
		if r.SalesMetrics.UpsellAttempted {
			d.UpsellAttempts++
			if r.SalesMetrics.UpsellAccepted {
				upsellWins++
			}
		}
		d.OutcomeCounts[r.SalesMetrics.Outcome]++
		for _, t := range r.Topics {
			d.TopTopics[t]++
		}
	}

	n := float64(d.TotalCalls)
	d.AvgComplianceScore = complianceSum / n
	d.AppointmentRate = float64(appointments) / n
	d.AvgCustomerSentiment = sentimentSum / n
	d.InterruptionsPerCall = float64(interruptions) / n
	if d.UpsellAttempts > 0 {
		d.UpsellSuccessRate = float64(upsellWins) / float64(d.UpsellAttempts)
	}
	return d
}
