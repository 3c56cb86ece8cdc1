package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"call-insights-go/internal/types"
)

func TestAnalyzeQualityInterruptions(t *testing.T) {
	a := NewDefault()

	clean := []types.Utterance{
		{Speaker: types.RoleEmployee, Text: "hello", Start: 0.0, End: 5.0},
		{Speaker: types.RoleCustomer, Text: "hi", Start: 5.2, End: 12.0},
	}
	assert.Equal(t, 0, a.analyzeQuality(clean).Interruptions)

	overlapping := []types.Utterance{
		{Speaker: types.RoleEmployee, Text: "hello", Start: 0.0, End: 5.0},
		{Speaker: types.RoleCustomer, Text: "hi", Start: 4.0, End: 12.0},
	}
	assert.Equal(t, 1, a.analyzeQuality(overlapping).Interruptions)
}

func TestAnalyzeQualitySilenceBoundary(t *testing.T) {
	a := NewDefault()

	gap := func(delta float64) []types.Utterance {
		return []types.Utterance{
			{Speaker: types.RoleEmployee, Text: "hello", Start: 0.0, End: 2.0},
			{Speaker: types.RoleCustomer, Text: "hi", Start: 2.0 + delta, End: 8.0},
		}
	}

	assert.Equal(t, 1, a.analyzeQuality(gap(3.5)).SilencePeriods)
	assert.Equal(t, 0, a.analyzeQuality(gap(2.9)).SilencePeriods)
	// Exactly 3.0s is not a silence period: strictly greater than.
	assert.Equal(t, 0, a.analyzeQuality(gap(3.0)).SilencePeriods)
}

func TestAnalyzeQualityTalkRatio(t *testing.T) {
	a := NewDefault()

	utts := []types.Utterance{
		{Speaker: types.RoleEmployee, Text: "hello", Start: 0.0, End: 5.0},
		{Speaker: types.RoleCustomer, Text: "hi", Start: 5.2, End: 12.0},
	}
	q := a.analyzeQuality(utts)

	assert.InDelta(t, 100.0, q.TalkRatio[types.RoleEmployee]+q.TalkRatio[types.RoleCustomer], 1e-9)
	assert.InDelta(t, 5.0/11.8*100, q.TalkRatio[types.RoleEmployee], 1e-9)
	assert.InDelta(t, 6.8/11.8*100, q.TalkRatio[types.RoleCustomer], 1e-9)
}

func TestAnalyzeQualityZeroDuration(t *testing.T) {
	a := NewDefault()

	q := a.analyzeQuality([]types.Utterance{
		{Speaker: types.RoleEmployee, Text: "hello", Start: 1.0, End: 1.0},
	})

	assert.Equal(t, 0.0, q.TalkRatio[types.RoleEmployee])
	assert.Equal(t, 0.0, q.TalkRatio[types.RoleCustomer])
}

func TestAnalyzeQualityEmpathyAndProfessionalism(t *testing.T) {
	a := NewDefault()

	utts := []types.Utterance{
		{Speaker: types.RoleEmployee, Text: "I understand, no problem at all, sir. Happy to help, please come in.", Start: 0, End: 5},
		{Speaker: types.RoleCustomer, Text: "yeah whatever dunno", Start: 5.5, End: 7},
	}
	q := a.analyzeQuality(utts)

	// understand, no problem, happy to help (+ its "happy to" professional hit).
	assert.Equal(t, 3, q.EmpathyIndicators)
	// sir, happy to, please vs nothing unprofessional from the employee.
	assert.Equal(t, 100.0, q.ProfessionalismScore)
}

func TestAnalyzeQualityProfessionalismLowScore(t *testing.T) {
	a := NewDefault()

	utts := []types.Utterance{
		{Speaker: types.RoleEmployee, Text: "yeah we're gonna look at it, dunno when", Start: 0, End: 3},
	}
	q := a.analyzeQuality(utts)

	assert.Equal(t, 0.0, q.ProfessionalismScore)
}

func TestAnalyzeQualityNoWordDataKeepsZeroScore(t *testing.T) {
	a := NewDefault()

	utts := []types.Utterance{
		{Speaker: types.RoleEmployee, Text: "the part arrives friday", Start: 0, End: 2},
	}
	q := a.analyzeQuality(utts)

	assert.Equal(t, 0.0, q.ProfessionalismScore)
	assert.Equal(t, 0, q.EmpathyIndicators)
}
