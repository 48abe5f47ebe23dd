package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/shockbase/internal/catalog"
	"github.com/ytget/shockbase/internal/model"
)

// seriesSummary aggregates one series of the dataset
type seriesSummary struct {
	Series    string
	Subseries int
	Models    int
	FirstYear int
	LastYear  int
}

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <csv>",
		Short: "Print per-series counts and year ranges of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}

			summaries := summarize(index)
			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summaries))
			fmt.Fprintf(cmd.OutOrStdout(), "%d series, %d records\n", len(summaries), index.Len())
			return nil
		},
	}
}

// summarize walks the catalog the same way the viewer cascade does
func summarize(index *catalog.Index) []seriesSummary {
	years := make(map[string][2]int)
	for _, r := range index.Records() {
		if !r.HasYear() {
			continue
		}
		span, ok := years[r.Series]
		if !ok {
			years[r.Series] = [2]int{r.Year, r.Year}
			continue
		}
		span[0] = min(span[0], r.Year)
		span[1] = max(span[1], r.Year)
		years[r.Series] = span
	}

	var summaries []seriesSummary
	for _, series := range index.Series() {
		summary := seriesSummary{Series: series}
		for _, sub := range index.Subseries(series) {
			summary.Subseries++
			summary.Models += len(index.Models(series, sub))
		}
		if span, ok := years[series]; ok {
			summary.FirstYear, summary.LastYear = span[0], span[1]
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func renderSummary(summaries []seriesSummary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Series,
			strconv.Itoa(s.Subseries),
			strconv.Itoa(s.Models),
			yearRange(s.FirstYear, s.LastYear),
		})
	}

	return renderTable(
		[]string{"Series", "Subseries", "Models", "Years"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
	)
}

func yearRange(first, last int) string {
	if first == model.UnknownYear {
		return "-"
	}
	if first == last {
		return strconv.Itoa(first)
	}
	return fmt.Sprintf("%d-%d", first, last)
}
