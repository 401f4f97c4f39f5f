package mock

import "github.com/fwojciec/foodinspect"

var _ foodinspect.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of foodinspect.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(body []byte, encoding string) ([]*foodinspect.Listing, error)
}

func (e *ListingExtractor) Extract(body []byte, encoding string) ([]*foodinspect.Listing, error) {
	return e.ExtractFn(body, encoding)
}
