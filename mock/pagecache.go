package mock

import (
	"context"

	"github.com/fwojciec/foodinspect"
)

var _ foodinspect.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of foodinspect.PageCache.
type PageCache struct {
	SaveFn func(ctx context.Context, name string, page *foodinspect.Page) error
	LoadFn func(ctx context.Context, name string) (*foodinspect.Page, error)
}

func (c *PageCache) Save(ctx context.Context, name string, page *foodinspect.Page) error {
	return c.SaveFn(ctx, name, page)
}

func (c *PageCache) Load(ctx context.Context, name string) (*foodinspect.Page, error) {
	return c.LoadFn(ctx, name)
}
