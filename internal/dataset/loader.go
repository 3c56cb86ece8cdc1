// Package dataset reads call-log spreadsheets and writes analytics workbooks.
package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"call-insights-go/internal/types"
)

// Load reads call records from the first sheet, auto-detecting columns by
// header heuristics. Rows without a usable audio URL are skipped quietly.
func Load(path string) ([]types.CallRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	header := rows[0]
	audioIdx := -1
	callIDIdx := -1
	directionIdx := -1
	customerIdx := -1
	durationIdx := -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "audio") || strings.Contains(l, "record") || strings.Contains(l, "url") || strings.Contains(l, "link"):
			if audioIdx == -1 {
				audioIdx = i
			}
		case strings.Contains(l, "call id") || strings.Contains(l, "callid") || l == "id":
			if callIDIdx == -1 {
				callIDIdx = i
			}
		case strings.Contains(l, "direction"):
			directionIdx = i
		case strings.Contains(l, "customer") || strings.Contains(l, "name"):
			if customerIdx == -1 {
				customerIdx = i
			}
		case strings.Contains(l, "duration"):
			durationIdx = i
		}
	}

	var out []types.CallRecord
	for i, r := range rows {
		if i == 0 {
			continue
		}
		rec := types.CallRecord{}
		if callIDIdx >= 0 && callIDIdx < len(r) {
			rec.CallID = strings.TrimSpace(r[callIDIdx])
		}
		if audioIdx >= 0 && audioIdx < len(r) {
			rec.AudioURL = strings.TrimSpace(r[audioIdx])
		}
		if directionIdx >= 0 && directionIdx < len(r) {
			d := strings.ToLower(strings.TrimSpace(r[directionIdx]))
			if d == types.DirectionInbound || d == types.DirectionOutbound {
				rec.CallDirection = d
			}
		}
		if customerIdx >= 0 && customerIdx < len(r) {
			rec.CustomerName = strings.TrimSpace(r[customerIdx])
		}
		if durationIdx >= 0 && durationIdx < len(r) {
			rec.DurationSec, _ = strconv.Atoi(strings.TrimSpace(r[durationIdx]))
		}
		lowerURL := strings.ToLower(rec.AudioURL)
		if !(strings.HasPrefix(lowerURL, "http://") || strings.HasPrefix(lowerURL, "https://")) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
