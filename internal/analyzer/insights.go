package analyzer

import (
	"fmt"

	"call-insights-go/internal/types"
)

// synthesize derives coaching opportunities, action items, and the business
// intelligence block from the completed metric fields. Pure aggregation over
// the report: no new text scanning happens here. Absent upstream fields read
// as their zero values and simply produce no entries.
func (a *Analyzer) synthesize(r *types.AnalysisReport) types.Insights {
	ins := types.Insights{
		KeyFindings:           []string{},
		ActionItems:           []types.ActionItem{},
		CoachingOpportunities: []types.CoachingOpportunity{},
	}

	if r.ScriptCompliance.Score < a.thr.CoachingComplianceBelow {
		ins.CoachingOpportunities = append(ins.CoachingOpportunities, types.CoachingOpportunity{
			Area:           "Script Adherence",
			Score:          r.ScriptCompliance.Score,
			Missing:        r.ScriptCompliance.MissingComponents,
			Recommendation: "Review call script training",
		})
	}

	if r.SalesMetrics.UpsellAttempted && !r.SalesMetrics.UpsellAccepted {
		ins.CoachingOpportunities = append(ins.CoachingOpportunities, types.CoachingOpportunity{
			Area:           "Upsell Technique",
			Observation:    "Upsell attempted but not accepted",
			Recommendation: "Review upsell approach and timing",
		})
	}

	if r.Sentiment.BySpeaker[types.RoleCustomer] < a.thr.CustomerSentimentActionBelow {
		ins.ActionItems = append(ins.ActionItems, types.ActionItem{
			Priority: "high",
			Action:   "Follow up with customer",
			Reason:   "Negative sentiment detected",
		})
	}

	if r.QualityMetrics.Interruptions > a.thr.CoachingInterruptionsAbove {
		ins.CoachingOpportunities = append(ins.CoachingOpportunities, types.CoachingOpportunity{
			Area:           "Active Listening",
			Observation:    fmt.Sprintf("%d interruptions detected", r.QualityMetrics.Interruptions),
			Recommendation: "Practice active listening techniques",
		})
	}

	if r.SalesMetrics.Outcome != "" && r.SalesMetrics.Outcome != types.OutcomeUnknown {
		ins.KeyFindings = append(ins.KeyFindings, "call outcome: "+r.SalesMetrics.Outcome)
	}

	priceSensitivity := "low"
	if r.SalesMetrics.PriceDiscussed {
		priceSensitivity = "high"
	}
	conversion := "medium"
	if r.SalesMetrics.AppointmentScheduled {
		conversion = "high"
	}
	ins.BusinessIntelligence = types.BusinessIntelligence{
		ServicesDiscussed:    r.SalesMetrics.ServicesMentioned,
		PriceSensitivity:     priceSensitivity,
		ConversionLikelihood: conversion,
		CustomerTopics:       r.Topics,
	}
	return ins
}
