package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/foodinspect"
)

// Ensure LoggingPageCache implements foodinspect.PageCache.
var _ foodinspect.PageCache = (*LoggingPageCache)(nil)

// LoggingPageCache wraps a PageCache with debug logging.
type LoggingPageCache struct {
	next   foodinspect.PageCache
	logger *slog.Logger
}

// NewLoggingPageCache creates a new LoggingPageCache.
func NewLoggingPageCache(next foodinspect.PageCache, logger *slog.Logger) *LoggingPageCache {
	return &LoggingPageCache{next: next, logger: logger}
}

// Save delegates to the wrapped cache and logs the operation.
func (c *LoggingPageCache) Save(ctx context.Context, name string, page *foodinspect.Page) (err error) {
	defer func(begin time.Time) {
		var size int
		if page != nil {
			size = len(page.Body)
		}
		c.logger.Debug("cache save",
			"name", name,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Save(ctx, name, page)
}

// Load delegates to the wrapped cache and logs the operation.
func (c *LoggingPageCache) Load(ctx context.Context, name string) (page *foodinspect.Page, err error) {
	defer func(begin time.Time) {
		var size int
		if page != nil {
			size = len(page.Body)
		}
		c.logger.Debug("cache load",
			"name", name,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Load(ctx, name)
}
