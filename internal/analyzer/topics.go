package analyzer

import (
	"strings"

	"call-insights-go/internal/types"
)

// extractTopics matches the fixed service vocabulary against the lowered
// transcript. Substring matching, no NLP.
func (a *Analyzer) extractTopics(lower string) []string {
	topics := make([]string, 0, len(a.lex.ServiceTopics))
	for _, t := range a.lex.ServiceTopics {
		if strings.Contains(lower, t) {
			topics = append(topics, t)
		}
	}
	return topics
}

// extractEntities populates the categories fixed-pattern rules can actually
// find: prices by regex, scheduling mentions by a weekday/clock pattern, and
// the customer name when the caller supplied one that appears in the
// transcript. Other categories are best-effort and may be absent.
func (a *Analyzer) extractEntities(lower string, call types.CallContext) map[string][]string {
	entities := map[string][]string{}

	if prices := a.priceRe.FindAllString(lower, -1); len(prices) > 0 {
		entities["price"] = dedup(prices)
	}
	if times := a.timeRe.FindAllString(lower, -1); len(times) > 0 {
		entities["time"] = dedup(times)
	}

	name := strings.ToLower(strings.TrimSpace(call.CustomerName))
	if name != "" && name != "unknown" && strings.Contains(lower, name) {
		entities["person"] = []string{call.CustomerName}
	}
	return entities
}
