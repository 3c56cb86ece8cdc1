package analyzer

import (
	"strings"

	"call-insights-go/internal/types"
)

// analyzeQuality computes interaction quality from utterance timing and the
// employee's word choice. An interruption is an utterance starting before its
// immediate predecessor ended; a silence period is an adjacent gap strictly
// greater than the configured threshold.
func (a *Analyzer) analyzeQuality(utts []types.Utterance) types.QualityMetrics {
	q := types.QualityMetrics{
		TalkRatio: map[string]float64{
			types.RoleEmployee: 0,
			types.RoleCustomer: 0,
		},
	}

	for i := 1; i < len(utts); i++ {
		if utts[i].Start < utts[i-1].End {
			q.Interruptions++
		}
		if utts[i].Start-utts[i-1].End > a.thr.SilenceGapSeconds {
			q.SilencePeriods++
		}
	}

	var employeeTime, customerTime float64
	for _, u := range utts {
		d := u.End - u.Start
		switch u.Speaker {
		case types.RoleEmployee:
			employeeTime += d
		case types.RoleCustomer:
			customerTime += d
		}
	}
	if total := employeeTime + customerTime; total > 0 {
		q.TalkRatio[types.RoleEmployee] = employeeTime / total * 100
		q.TalkRatio[types.RoleCustomer] = customerTime / total * 100
	}

	employeeText := strings.ToLower(roleText(utts, types.RoleEmployee))
	for _, p := range a.lex.EmpathyPhrases {
		q.EmpathyIndicators += strings.Count(employeeText, p)
	}

	prof, unprof := 0, 0
	for _, w := range a.lex.ProfessionalWords {
		prof += strings.Count(employeeText, w)
	}
	for _, w := range a.lex.UnprofessionalWords {
		unprof += strings.Count(employeeText, w)
	}
	// Both counts zero leaves the score at its zero value.
	if prof+unprof > 0 {
		q.ProfessionalismScore = float64(prof) / float64(prof+unprof) * 100
	}
	return q
}
