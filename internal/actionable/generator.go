package actionable

import (
	"fmt"
	"sort"
	"strings"

	"call-insights-go/internal/aggregator"
)

// ActionCard is the single highest-leverage recommendation for a batch.
type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate picks the first metric that crosses its cutoff, in priority order:
// script adherence, upsell conversion, customer sentiment.
func Generate(d aggregator.Dashboard) ActionCard {
	if d.TotalCalls == 0 {
		return ActionCard{
			Insight: "No analyzed calls in this batch",
			Action:  "Collect more call data",
			Impact:  "None yet",
		}
	}

	if d.AvgComplianceScore < 80 {
		missingRate := 100 - d.AvgComplianceScore
		return ActionCard{
			Insight: fmt.Sprintf("Average script compliance is %.0f%% across %d calls", d.AvgComplianceScore, d.TotalCalls),
			Action:  "Run a script refresher with the advisor team",
			Impact:  fmt.Sprintf("Close the %.0f%% compliance gap and lift booking rates", missingRate),
		}
	}

	if d.UpsellAttempts > 0 && d.UpsellSuccessRate < 0.25 {
		return ActionCard{
			Insight: fmt.Sprintf("Upsells convert %.0f%% of the time (%d attempts)", d.UpsellSuccessRate*100, d.UpsellAttempts),
			Action:  "Coach upsell timing: recommend after the primary concern is resolved",
			Impact:  "Raise attach rate on recommended services",
		}
	}

	if d.AvgCustomerSentiment < 0 {
		topics := topTopicList(d.TopTopics, 3)
		return ActionCard{
			Insight: fmt.Sprintf("Average customer sentiment is negative (%.2f); frequent topics: %s", d.AvgCustomerSentiment, topics),
			Action:  "Prioritize callbacks for negative-sentiment calls",
			Impact:  "Reduce churn from unresolved complaints",
		}
	}

	return ActionCard{
		Insight: "No strong risk pattern detected",
		Action:  "Monitor and collect more data",
		Impact:  "Low immediate intervention",
	}
}

func topTopicList(topics map[string]int, n int) string {
	if len(topics) == 0 {
		return "none"
	}
	type tc struct {
		topic string
		count int
	}
	var arr []tc
	for t, c := range topics {
		arr = append(arr, tc{t, c})
	}
	// Count desc, topic asc for a stable report.
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].count != arr[j].count {
			return arr[i].count > arr[j].count
		}
		return arr[i].topic < arr[j].topic
	})
	if len(arr) > n {
		arr = arr[:n]
	}
	names := make([]string, 0, len(arr))
	for _, t := range arr {
		names = append(names, t.topic)
	}
	return strings.Join(names, ", ")
}
