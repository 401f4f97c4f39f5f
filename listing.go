package foodinspect

// Metadata maps a cleaned label to the values listed under it.
// Continuation rows append further values to the preceding label,
// so a label may carry several values (e.g. multiple phone numbers).
type Metadata map[string][]string

// First returns the first value recorded under label, or "" if none.
func (m Metadata) First(label string) string {
	if vals := m[label]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// ScoreSummary aggregates the numeric inspection scores of a listing.
// TotalInspections counts only inspections with a numeric score.
type ScoreSummary struct {
	AverageScore     float64 `json:"Average Score"`
	HighScore        int     `json:"High Score"`
	TotalInspections int     `json:"Total Inspections"`
}

// Listing is one restaurant's inspection record as rendered on the results page.
type Listing struct {
	ID       string       `json:"id"`
	Metadata Metadata     `json:"metadata"`
	Scores   ScoreSummary `json:"scores"`
}

// Common metadata labels on the results page.
const (
	LabelBusinessName = "Business Name"
	LabelAddress      = "Address"
	LabelPhone        = "Phone"
)

// ListingExtractor extracts listings from a raw results page.
type ListingExtractor interface {
	// Extract parses body using the encoding hint (empty means detect)
	// and returns the listings in document order.
	// A page without listings yields an empty slice and no error.
	Extract(body []byte, encoding string) ([]*Listing, error)
}
