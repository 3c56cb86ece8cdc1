package analyzer

import (
	"strings"

	"call-insights-go/internal/types"
)

// checkCompliance scans the employee's concatenated speech for each script
// component's trigger phrases. Components are independent: presence anywhere
// counts, the expected call order is not enforced. With no employee speech
// every component is missing and the score is 0.
func (a *Analyzer) checkCompliance(employeeText string) types.ScriptCompliance {
	lower := strings.ToLower(employeeText)

	c := types.ScriptCompliance{
		FoundComponents:   []string{},
		MissingComponents: []string{},
		Details:           make(map[string]types.ComplianceDetail, len(a.lex.ScriptComponents)),
	}

	for _, comp := range a.lex.ScriptComponents {
		matched := ""
		for _, trigger := range comp.Triggers {
			if strings.Contains(lower, trigger) {
				matched = trigger
				break
			}
		}
		if matched != "" {
			c.FoundComponents = append(c.FoundComponents, comp.Name)
			c.Details[comp.Name] = types.ComplianceDetail{Found: true, Keyword: matched}
		} else {
			c.MissingComponents = append(c.MissingComponents, comp.Name)
			c.Details[comp.Name] = types.ComplianceDetail{Found: false, Expected: comp.Triggers}
		}
	}

	if total := len(a.lex.ScriptComponents); total > 0 {
		c.Score = float64(len(c.FoundComponents)) / float64(total) * 100
	}
	return c
}
