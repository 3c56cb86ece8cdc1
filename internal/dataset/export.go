package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"call-insights-go/internal/actionable"
	"call-insights-go/internal/aggregator"
	"call-insights-go/internal/processor"
)

// Export writes one row per analyzed call plus a dashboard summary sheet.
func Export(path string, results []processor.CallResult, dash aggregator.Dashboard, card actionable.ActionCard) error {
	f := excelize.NewFile()
	defer f.Close()

	const callsSheet = "Calls"
	if err := f.SetSheetName("Sheet1", callsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{
		"call_id", "audio_url", "outcome", "compliance_score",
		"customer_sentiment", "appointment_scheduled", "upsell_attempted",
		"upsell_accepted", "interruptions", "silence_periods",
		"employee_talk_pct", "customer_talk_pct", "topics", "prices", "error",
	}
	if err := f.SetSheetRow(callsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, res := range results {
		r := res.Report
		row := []interface{}{
			res.CallID,
			res.AudioURL,
			r.SalesMetrics.Outcome,
			r.ScriptCompliance.Score,
			r.Sentiment.BySpeaker["customer"],
			r.SalesMetrics.AppointmentScheduled,
			r.SalesMetrics.UpsellAttempted,
			r.SalesMetrics.UpsellAccepted,
			r.QualityMetrics.Interruptions,
			r.QualityMetrics.SilencePeriods,
			r.QualityMetrics.TalkRatio["employee"],
			r.QualityMetrics.TalkRatio["customer"],
			strings.Join(r.Topics, ", "),
			strings.Join(r.SalesMetrics.PricesMentioned, ", "),
			res.Error,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(callsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	summaryRows := [][]interface{}{
		{"total_calls", dash.TotalCalls},
		{"avg_compliance_score", dash.AvgComplianceScore},
		{"appointment_rate", dash.AppointmentRate},
		{"upsell_attempts", dash.UpsellAttempts},
		{"upsell_success_rate", dash.UpsellSuccessRate},
		{"avg_customer_sentiment", dash.AvgCustomerSentiment},
		{"interruptions_per_call", dash.InterruptionsPerCall},
		{"action_insight", card.Insight},
		{"action", card.Action},
		{"action_impact", card.Impact},
	}
	for i, row := range summaryRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
