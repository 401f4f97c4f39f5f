package foodinspect

import (
	"context"
	"time"
)

// DefaultEncoding is assumed for pages loaded from local storage.
const DefaultEncoding = "utf-8"

// Page is a raw results page together with its declared text encoding.
type Page struct {
	URL       string
	Body      []byte
	Encoding  string // empty when unknown
	FetchedAt time.Time
}

// Source retrieves results pages for a query.
type Source interface {
	// Fetch performs the query and returns the raw page.
	// A non-success response is returned as an error.
	Fetch(ctx context.Context, q Query) (*Page, error)
}

// PageCache stores raw pages for offline use.
type PageCache interface {
	// Save stores page under name, replacing any previous copy.
	Save(ctx context.Context, name string, page *Page) error

	// Load returns the page stored under name.
	// Returns ENOTFOUND if no page is stored under name.
	Load(ctx context.Context, name string) (*Page, error)
}
