package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// GroupSummary is the lowest cumulative-carbon-cost configuration of one
// completed group, read back from its result file. Costs are decimals, not
// floats: breakdown columns get compared and re-summed downstream and must
// not drift.
type GroupSummary struct {
	Frontend             string
	Cache                string
	Backend              string
	CumulativeCarbonCost decimal.Decimal
	EmbodiedCost         decimal.Decimal
	ActiveCost           decimal.Decimal
	IdleCost             decimal.Decimal
	ReplacementCost      decimal.Decimal
	Rows                 int
}

// SummarizeLowestCost scans a group's result file and returns the row with
// the minimum cumulative carbon cost. A file with a header but no data rows
// is an error: every group has at least one task.
func SummarizeLowestCost(path string) (*GroupSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading result header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var best *GroupSummary
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading result row: %w", err)
		}
		rows++

		summary, err := parseSummaryRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rows, err)
		}
		if best == nil || summary.CumulativeCarbonCost.LessThan(best.CumulativeCarbonCost) {
			best = summary
		}
	}

	if best == nil {
		return nil, fmt.Errorf("result file %s has no data rows", path)
	}
	best.Rows = rows
	return best, nil
}

// summaryColumns are the columns the report needs; the full schema may carry
// more.
var summaryColumns = []string{
	"Frontend", "Cache", "Backend",
	"Cumulative Carbon Cost", "Embodied Cost", "Active Cost", "Idle Cost", "Replacement Cost",
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range summaryColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("result header is missing column %q", name)
		}
	}
	return cols, nil
}

func parseSummaryRow(record []string, cols map[string]int) (*GroupSummary, error) {
	costs := make(map[string]decimal.Decimal, 5)
	for _, name := range summaryColumns[3:] {
		idx := cols[name]
		if idx >= len(record) {
			return nil, fmt.Errorf("short row: no value for column %q", name)
		}
		d, err := decimal.NewFromString(record[idx])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		costs[name] = d
	}

	return &GroupSummary{
		Frontend:             record[cols["Frontend"]],
		Cache:                record[cols["Cache"]],
		Backend:              record[cols["Backend"]],
		CumulativeCarbonCost: costs["Cumulative Carbon Cost"],
		EmbodiedCost:         costs["Embodied Cost"],
		ActiveCost:           costs["Active Cost"],
		IdleCost:             costs["Idle Cost"],
		ReplacementCost:      costs["Replacement Cost"],
	}, nil
}
