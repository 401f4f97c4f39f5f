package goquery

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/foodinspect"
)

// scoreCell is the zero-based index of the score cell in an inspection row.
const scoreCell = 2

// ExtractScores summarizes the scores of every inspection row under
// listing, at any depth. Rows whose score is not an integer are left out
// of all three statistics. The high score starts at zero, so a listing
// with only negative scores reports zero.
func ExtractScores(listing *goquery.Selection) foodinspect.ScoreSummary {
	rows := FindAll(listing, true, IsInspectionRow)

	samples := rows.Length()
	var total, high int
	rows.Each(func(_ int, row *goquery.Selection) {
		score, err := strconv.Atoi(CleanCell(cells(row).Eq(scoreCell)))
		if err != nil {
			samples--
			return
		}
		total += score
		if score > high {
			high = score
		}
	})

	var summary foodinspect.ScoreSummary
	if samples != 0 {
		summary.AverageScore = float64(total) / float64(samples)
		summary.HighScore = high
		summary.TotalInspections = samples
	}
	return summary
}
