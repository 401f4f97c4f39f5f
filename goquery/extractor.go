package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/foodinspect"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements foodinspect.ListingExtractor at compile time.
var _ foodinspect.ListingExtractor = (*Extractor)(nil)

// Extractor extracts listings from inspection results pages.
type Extractor struct {
	concurrency int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConcurrency sets how many listings are extracted in parallel.
// Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(e *Extractor) {
		e.concurrency = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{concurrency: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.concurrency < 1 {
		e.concurrency = 1
	}
	return e
}

// Extract parses body and extracts every listing in document order.
func (e *Extractor) Extract(body []byte, encoding string) ([]*foodinspect.Listing, error) {
	doc, err := ParseDocument(body, encoding)
	if err != nil {
		return nil, err
	}

	sel := FindListings(doc)
	listings := make([]*foodinspect.Listing, sel.Length())

	// The document is read-only once parsed, so listings can be
	// extracted concurrently and stored by position.
	var g errgroup.Group
	g.SetLimit(e.concurrency)
	sel.Each(func(i int, s *goquery.Selection) {
		g.Go(func() error {
			listing, err := ExtractListing(s)
			if err != nil {
				return err
			}
			listings[i] = listing
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return listings, nil
}

// ExtractListing builds the record for a single listing container.
func ExtractListing(s *goquery.Selection) (*foodinspect.Listing, error) {
	id, _ := s.Attr("id")

	metadata, err := ExtractMetadata(s)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", id, err)
	}

	return &foodinspect.Listing{
		ID:       id,
		Metadata: metadata,
		Scores:   ExtractScores(s),
	}, nil
}
