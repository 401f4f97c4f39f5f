package foodinspect

import (
	"sort"
	"strconv"
	"strings"
)

// FormatListings formats listings for console display.
// Each listing starts with its ID, followed by metadata sorted by label
// and the score summary. Listings are separated by blank lines.
func FormatListings(listings []*Listing) string {
	if len(listings) == 0 {
		return ""
	}

	parts := make([]string, 0, len(listings))
	for _, l := range listings {
		parts = append(parts, formatListing(l))
	}

	return strings.Join(parts, "\n\n")
}

func formatListing(l *Listing) string {
	var b strings.Builder
	b.WriteString("## Listing: ")
	b.WriteString(l.ID)

	labels := make([]string, 0, len(l.Metadata))
	for label := range l.Metadata {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		b.WriteString("\n")
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(strings.Join(l.Metadata[label], "; "))
	}

	b.WriteString("\nAverage Score: ")
	b.WriteString(strconv.FormatFloat(l.Scores.AverageScore, 'f', -1, 64))
	b.WriteString("\nHigh Score: ")
	b.WriteString(strconv.Itoa(l.Scores.HighScore))
	b.WriteString("\nTotal Inspections: ")
	b.WriteString(strconv.Itoa(l.Scores.TotalInspections))
	return b.String()
}
