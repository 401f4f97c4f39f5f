package mock

import (
	"context"

	"github.com/fwojciec/foodinspect"
)

var _ foodinspect.Source = (*Source)(nil)

// Source is a mock implementation of foodinspect.Source.
type Source struct {
	FetchFn func(ctx context.Context, q foodinspect.Query) (*foodinspect.Page, error)
}

func (s *Source) Fetch(ctx context.Context, q foodinspect.Query) (*foodinspect.Page, error) {
	return s.FetchFn(ctx, q)
}
