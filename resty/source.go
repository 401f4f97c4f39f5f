// Package resty provides a foodinspect.Source that queries the King County
// inspection results endpoint over HTTP.
package resty

import (
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/fwojciec/foodinspect"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the host serving inspection results.
	DefaultBaseURL = "http://info.kingcounty.gov"

	// ResultsPath is the path of the inspection results page.
	ResultsPath = "/health/ehs/foodsafety/inspections/Results.aspx"

	// DefaultTimeout is the default timeout for a results request.
	DefaultTimeout = 30 * time.Second
)

// Ensure Source implements foodinspect.Source at compile time.
var _ foodinspect.Source = (*Source)(nil)

// Source fetches results pages with a single GET request per query.
// Failed requests are not retried.
type Source struct {
	client    *resty.Client
	baseURL   string
	timeout   time.Duration
	userAgent string
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the scheme and host requests are sent to.
func WithBaseURL(u string) Option {
	return func(s *Source) {
		s.baseURL = u
	}
}

// WithTimeout sets the timeout for requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(s *Source) {
		s.userAgent = ua
	}
}

// NewSource creates a new Source.
func NewSource(opts ...Option) *Source {
	s := &Source{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = resty.New().
		SetBaseURL(s.baseURL).
		SetTimeout(s.timeout)
	if s.userAgent != "" {
		s.client.SetHeader("User-Agent", s.userAgent)
	}

	return s
}

// Fetch requests the results page for q.
// Any non-2xx status is returned as an error.
func (s *Source) Fetch(ctx context.Context, q foodinspect.Query) (*foodinspect.Page, error) {
	pageURL := s.baseURL + ResultsPath + "?" + q.Encode()

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q.Values()).
		Get(ResultsPath)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode(), pageURL)
	}

	return &foodinspect.Page{
		URL:       pageURL,
		Body:      resp.Body(),
		Encoding:  contentCharset(resp.Header().Get("Content-Type")),
		FetchedAt: resp.ReceivedAt(),
	}, nil
}

// contentCharset returns the charset parameter of a Content-Type header,
// or "" if it is absent or the header is malformed.
func contentCharset(contentType string) string {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
