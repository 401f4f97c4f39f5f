package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cells returns the direct td children of row.
func cells(row *goquery.Selection) *goquery.Selection {
	return FindAll(row, false, Tag("td"))
}

// IsMetadataRow reports whether row is a label/value row: a tr with
// exactly two direct cells.
func IsMetadataRow(row *goquery.Selection) bool {
	return Tag("tr")(row) && cells(row).Length() == 2
}

// IsInspectionRow reports whether row records a single inspection: a tr
// with exactly four direct cells whose first cell mentions "inspection"
// without starting with it. Section headers read "Inspection Information"
// and are excluded by the prefix rule.
func IsInspectionRow(row *goquery.Selection) bool {
	if !Tag("tr")(row) {
		return false
	}
	tds := cells(row)
	if tds.Length() != 4 {
		return false
	}
	text := strings.ToLower(CleanCell(tds.First()))
	return strings.Contains(text, "inspection") && !strings.HasPrefix(text, "inspection")
}
