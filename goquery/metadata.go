package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/foodinspect"
)

// metadataFold is the accumulator for folding metadata rows.
// label is the most recent non-empty label seen.
type metadataFold struct {
	label string
	data  foodinspect.Metadata
}

// step folds one metadata row into the accumulator. A blank label
// continues the previous label's list of values.
func (f metadataFold) step(row *goquery.Selection) metadataFold {
	tds := cells(row)
	if label := CleanCell(tds.Eq(0)); label != "" {
		f.label = label
	}
	f.data[f.label] = append(f.data[f.label], CleanCell(tds.Eq(1)))
	return f
}

// ExtractMetadata builds the label/value mapping of a listing from the
// direct metadata rows of its first table body.
//
// Returns EINVALID if the listing has no table body.
func ExtractMetadata(listing *goquery.Selection) (foodinspect.Metadata, error) {
	body := listing.Find("tbody").First()
	if body.Length() == 0 {
		return nil, foodinspect.Errorf(foodinspect.EINVALID, "listing has no table body")
	}

	acc := metadataFold{data: foodinspect.Metadata{}}
	FindAll(body, false, IsMetadataRow).Each(func(_ int, row *goquery.Selection) {
		acc = acc.step(row)
	})
	return acc.data, nil
}
