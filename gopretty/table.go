// Package gopretty renders listings as console tables using go-pretty.
package gopretty

import (
	"strconv"
	"strings"

	"github.com/fwojciec/foodinspect"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable renders one row per listing with its name, address and
// score summary.
func RenderTable(listings []*foodinspect.Listing) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Business Name", "Address", "Inspections", "High Score", "Average Score"})

	for _, l := range listings {
		t.AppendRow(table.Row{
			l.ID,
			l.Metadata.First(foodinspect.LabelBusinessName),
			strings.Join(l.Metadata[foodinspect.LabelAddress], ", "),
			l.Scores.TotalInspections,
			l.Scores.HighScore,
			strconv.FormatFloat(l.Scores.AverageScore, 'f', 2, 64),
		})
	}

	t.AppendFooter(table.Row{"", "", "Listings", len(listings)})
	t.SetStyle(table.StyleRounded)
	return t.Render()
}
