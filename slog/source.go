// Package slog provides log/slog decorators for foodinspect services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/foodinspect"
)

// Ensure LoggingSource implements foodinspect.Source.
var _ foodinspect.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with logging of each fetch.
type LoggingSource struct {
	next   foodinspect.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next foodinspect.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Fetch delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Fetch(ctx context.Context, q foodinspect.Query) (page *foodinspect.Page, err error) {
	defer func(begin time.Time) {
		var size int
		var encoding string
		if page != nil {
			size = len(page.Body)
			encoding = page.Encoding
		}
		s.logger.Info("fetch",
			"query", q.Encode(),
			"bytes", size,
			"encoding", encoding,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Fetch(ctx, q)
}
