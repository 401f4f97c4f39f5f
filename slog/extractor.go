package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/foodinspect"
)

// Ensure LoggingExtractor implements foodinspect.ListingExtractor.
var _ foodinspect.ListingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ListingExtractor with logging.
type LoggingExtractor struct {
	next   foodinspect.ListingExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next foodinspect.ListingExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the listing count.
func (e *LoggingExtractor) Extract(body []byte, encoding string) (listings []*foodinspect.Listing, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(body),
			"encoding", encoding,
			"listings", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(body, encoding)
}
