package chatlog

import (
	"fmt"
	"math"
	"os"

	"github.com/xuri/excelize/v2"

	"commerce-insights-go/internal/export"
)

// WriteSummaryCSV dumps the preprocessed rows as CSV.
func WriteSummaryCSV(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteCSV(Frame(rows), f); err != nil {
		return err
	}
	return f.Close()
}

const latencyBuckets = 10

// WriteReportXLSX writes the analysis workbook: a summary sheet, a latency
// histogram with a column chart, and the chunk-source comparison chart that
// stands in for the old plot images.
func WriteReportXLSX(rows []Row, summary Summary, cost CostEstimate, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSummarySheet(f, summary, cost); err != nil {
		return err
	}
	if err := writeLatencySheet(f, rows); err != nil {
		return err
	}
	if err := writeChunkSheet(f, summary); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary Summary, cost CostEstimate) error {
	lines := [][]interface{}{
		{"Metric", "Value"},
		{"Total log entries analyzed", summary.TotalEntries},
		{"P99 latency (ms)", summary.P99LatencyMs},
		{"Average generation input tokens", summary.AvgInputTokens},
	}
	if summary.AccuracyRate != nil {
		lines = append(lines, []interface{}{"Answer correctness rate", *summary.AccuracyRate})
	} else {
		lines = append(lines, []interface{}{"Answer correctness rate", "no feedback available"})
	}
	lines = append(lines,
		[]interface{}{"Option A fixed latency (ms)", cost.OptionALatencyMs},
		[]interface{}{"Option B retrieval latency (ms)", cost.OptionBRetrievalDelay},
		[]interface{}{"Option B extra monthly cost ($)", cost.ExtraMonthlyCost},
	)

	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Summary", cell, &line); err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeLatencySheet(f *excelize.File, rows []Row) error {
	const sheet = "LatencyHistogram"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	labels, counts := latencyHistogram(rows)

	header := []interface{}{"Bucket (ms)", "Count"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range labels {
		line := []interface{}{labels[i], counts[i]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return err
		}
	}

	if len(labels) == 0 {
		return nil
	}
	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", sheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, len(labels)+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheet, len(labels)+1),
		}},
		Title: []excelize.RichTextRun{{Text: "Latency Distribution (ms)"}},
	})
}

func writeChunkSheet(f *excelize.File, summary Summary) error {
	const sheet = "ChunkSources"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	grid := [][]interface{}{
		{"Source", "Correct", "Incorrect"},
		{"wiki_chunks", summary.ChunksCorrect.Wiki, summary.ChunksIncorrect.Wiki},
		{"pdf_chunks", summary.ChunksCorrect.PDF, summary.ChunksIncorrect.PDF},
		{"conf_chunks", summary.ChunksCorrect.Conf, summary.ChunksIncorrect.Conf},
	}
	for i, line := range grid {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return err
		}
	}

	return f.AddChart(sheet, "E2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       sheet + "!$B$1",
				Categories: sheet + "!$A$2:$A$4",
				Values:     sheet + "!$B$2:$B$4",
			},
			{
				Name:       sheet + "!$C$1",
				Categories: sheet + "!$A$2:$A$4",
				Values:     sheet + "!$C$2:$C$4",
			},
		},
		Title: []excelize.RichTextRun{{Text: "Average Chunks by Source & Answer Correctness"}},
	})
}

// latencyHistogram buckets latencies into a fixed number of equal-width
// bins. A single distinct value collapses into one bin.
func latencyHistogram(rows []Row) ([]string, []int) {
	if len(rows) == 0 {
		return nil, nil
	}

	min, max := rows[0].LatencyMs, rows[0].LatencyMs
	for _, r := range rows {
		min = math.Min(min, r.LatencyMs)
		max = math.Max(max, r.LatencyMs)
	}
	if min == max {
		return []string{fmt.Sprintf("%.0f", min)}, []int{len(rows)}
	}

	width := (max - min) / latencyBuckets
	labels := make([]string, latencyBuckets)
	counts := make([]int, latencyBuckets)
	for i := 0; i < latencyBuckets; i++ {
		lo := min + float64(i)*width
		labels[i] = fmt.Sprintf("%.0f-%.0f", lo, lo+width)
	}
	for _, r := range rows {
		idx := int((r.LatencyMs - min) / width)
		if idx >= latencyBuckets {
			idx = latencyBuckets - 1
		}
		counts[idx]++
	}
	return labels, counts
}
