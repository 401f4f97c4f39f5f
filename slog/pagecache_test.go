package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/foodinspect"
	"github.com/fwojciec/foodinspect/mock"
	fislog "github.com/fwojciec/foodinspect/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPageCache(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer) *slog.Logger {
		return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	t.Run("logs save", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var saved string
		inner := &mock.PageCache{
			SaveFn: func(ctx context.Context, name string, page *foodinspect.Page) error {
				saved = name
				return nil
			},
		}

		cache := fislog.NewLoggingPageCache(inner, newLogger(&buf))
		err := cache.Save(context.Background(), "page.html", &foodinspect.Page{Body: []byte("abc")})

		require.NoError(t, err)
		assert.Equal(t, "page.html", saved)
		output := buf.String()
		assert.Contains(t, output, "msg=\"cache save\"")
		assert.Contains(t, output, "name=page.html")
		assert.Contains(t, output, "bytes=3")
	})

	t.Run("logs load not found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageCache{
			LoadFn: func(ctx context.Context, name string) (*foodinspect.Page, error) {
				return nil, foodinspect.Errorf(foodinspect.ENOTFOUND, "page %q not found", name)
			},
		}

		cache := fislog.NewLoggingPageCache(inner, newLogger(&buf))
		_, err := cache.Load(context.Background(), "missing.html")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=\"cache load\"")
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "not found")
	})

	t.Run("omits debug entries at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageCache{
			LoadFn: func(ctx context.Context, name string) (*foodinspect.Page, error) {
				return &foodinspect.Page{}, nil
			},
		}

		cache := fislog.NewLoggingPageCache(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := cache.Load(context.Background(), "page.html")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
