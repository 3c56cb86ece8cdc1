package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-insights-go/internal/types"
)

func coachingAreas(ins types.Insights) []string {
	areas := make([]string, 0, len(ins.CoachingOpportunities))
	for _, c := range ins.CoachingOpportunities {
		areas = append(areas, c.Area)
	}
	return areas
}

func TestSynthesizeLowComplianceCoaching(t *testing.T) {
	a := NewDefault()
	r := types.AnalysisReport{
		ScriptCompliance: types.ScriptCompliance{
			Score:             60,
			MissingComponents: []string{"booking", "closing"},
		},
	}

	ins := a.synthesize(&r)

	require.Contains(t, coachingAreas(ins), "Script Adherence")
	for _, c := range ins.CoachingOpportunities {
		if c.Area == "Script Adherence" {
			assert.Equal(t, 60.0, c.Score)
			assert.Equal(t, []string{"booking", "closing"}, c.Missing)
		}
	}
}

func TestSynthesizeComplianceAtThresholdNoCoaching(t *testing.T) {
	a := NewDefault()
	r := types.AnalysisReport{
		ScriptCompliance: types.ScriptCompliance{Score: 80},
	}

	ins := a.synthesize(&r)

	assert.NotContains(t, coachingAreas(ins), "Script Adherence")
}

func TestSynthesizeUpsellCoaching(t *testing.T) {
	a := NewDefault()
	r := types.AnalysisReport{
		ScriptCompliance: types.ScriptCompliance{Score: 100},
		SalesMetrics:     types.SalesMetrics{UpsellAttempted: true, UpsellAccepted: false},
	}

	assert.Contains(t, coachingAreas(a.synthesize(&r)), "Upsell Technique")

	r.SalesMetrics.UpsellAccepted = true
	assert.NotContains(t, coachingAreas(a.synthesize(&r)), "Upsell Technique")
}

func TestSynthesizeNegativeCustomerSentimentAction(t *testing.T) {
	a := NewDefault()
	r := types.AnalysisReport{
		ScriptCompliance: types.ScriptCompliance{Score: 100},
		Sentiment: types.Sentiment{
			BySpeaker: map[string]float64{types.RoleCustomer: -0.4},
		},
	}

	ins := a.synthesize(&r)

	require.Len(t, ins.ActionItems, 1)
	assert.Equal(t, "high", ins.ActionItems[0].Priority)
	assert.Equal(t, "Follow up with customer", ins.ActionItems[0].Action)
}

func TestSynthesizeAbsentSentimentProducesNoAction(t *testing.T) {
	a := NewDefault()
	r := types.AnalysisReport{
		ScriptCompliance: types.ScriptCompliance{Score: 100},
	}

	assert.Empty(t, a.synthesize(&r).ActionItems)
}

func TestSynthesizeInterruptionCoaching(t *testing.T) {
	a := NewDefault()
	r := types.AnalysisReport{
		ScriptCompliance: types.ScriptCompliance{Score: 100},
		QualityMetrics:   types.QualityMetrics{Interruptions: 4},
	}

	ins := a.synthesize(&r)
	require.Contains(t, coachingAreas(ins), "Active Listening")

	r.QualityMetrics.Interruptions = 3
	assert.NotContains(t, coachingAreas(a.synthesize(&r)), "Active Listening")
}

func TestSynthesizeBusinessIntelligence(t *testing.T) {
	a := NewDefault()
	r := types.AnalysisReport{
		Topics: []string{"brake", "tire"},
		ScriptCompliance: types.ScriptCompliance{Score: 100},
		SalesMetrics: types.SalesMetrics{
			ServicesMentioned:    []string{"brake", "tire"},
			PriceDiscussed:       true,
			AppointmentScheduled: true,
			Outcome:              types.OutcomeAppointmentScheduled,
		},
	}

	ins := a.synthesize(&r)

	bi := ins.BusinessIntelligence
	assert.Equal(t, []string{"brake", "tire"}, bi.ServicesDiscussed)
	assert.Equal(t, "high", bi.PriceSensitivity)
	assert.Equal(t, "high", bi.ConversionLikelihood)
	assert.Equal(t, []string{"brake", "tire"}, bi.CustomerTopics)
	assert.Contains(t, ins.KeyFindings, "call outcome: appointment_scheduled")
}

func TestSynthesizeQuietCallDefaults(t *testing.T) {
	a := NewDefault()
	r := types.AnalysisReport{
		ScriptCompliance: types.ScriptCompliance{Score: 100},
	}

	ins := a.synthesize(&r)

	assert.Equal(t, "low", ins.BusinessIntelligence.PriceSensitivity)
	assert.Equal(t, "medium", ins.BusinessIntelligence.ConversionLikelihood)
	assert.Empty(t, ins.KeyFindings)
}
