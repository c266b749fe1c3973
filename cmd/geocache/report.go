package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/vatsimnerd/geocache"
)

func writeReport(w io.Writer, results []loaded) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Place", "Fitted", "Width (m)", "Height (m)", "Area (m²)", "Missing ref"})

	for _, r := range results {
		row := []string{r.name}
		switch res := r.result.(type) {
		case geocache.SetNotChanged:
			row = append(row,
				"no",
				fmt.Sprintf("%.0f", res.Width),
				fmt.Sprintf("%.0f", res.Height),
				fmt.Sprintf("%.0f", res.Area),
			)
		case geocache.SetTruncated:
			row = append(row,
				"yes",
				fmt.Sprintf("%.0f -> %.0f", res.OldWidth, res.NewWidth),
				fmt.Sprintf("%.0f -> %.0f", res.OldHeight, res.NewHeight),
				fmt.Sprintf("%.0f -> %.0f", res.OldArea, res.NewArea),
			)
		}
		row = append(row, fmt.Sprintf("%t", r.result.MissingReferencePoint()))
		table.Append(row)
	}
	table.Render()
}

func writeMatches(w io.Writer, matches []geocache.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "miss")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Place", "Entry", "Distance (m)"})
	for i, m := range matches {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			m.Payload,
			m.ID,
			fmt.Sprintf("%.0f", m.Distance),
		})
	}
	table.Render()
}

func writeStats(w io.Writer, stats geocache.Stats) {
	fmt.Fprintf(w, "%d entries, %d distinct payloads, precision %d, backend %s\n",
		stats.Entries, stats.Payloads, stats.Precision, stats.Backend)
}
