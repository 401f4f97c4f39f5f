package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// listingID matches inspection record ids such as "PR0012345~".
// Only the start of the value is anchored; anything may follow the tilde.
var listingID = regexp.MustCompile(`^PR[0-9]+~`)

// IsListingID reports whether id identifies a restaurant listing.
func IsListingID(id string) bool {
	return listingID.MatchString(id)
}

// FindListings returns every listing container in the document, at any
// depth, in document order.
func FindListings(doc *goquery.Document) *goquery.Selection {
	return FindAll(doc.Selection, true, And(Tag("div"), AttrMatches("id", listingID)))
}
