package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/foodinspect"
	"github.com/fwojciec/foodinspect/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Offline Page Cache
// Pages are saved atomically and loaded back with the default encoding

func TestPageCache_SaveThenLoad(t *testing.T) {
	t.Parallel()

	// Given a cache in a fresh directory
	base := filepath.Join(t.TempDir(), "cache")
	cache := fs.NewPageCache(base)

	// When I save a page
	body := []byte(`<div id="PR1~"></div>`)
	err := cache.Save(context.Background(), "inspection_page.html", &foodinspect.Page{Body: body, Encoding: "windows-1252"})
	require.NoError(t, err)

	// Then loading it returns the same bytes with the default encoding
	page, err := cache.Load(context.Background(), "inspection_page.html")
	require.NoError(t, err)
	assert.Equal(t, body, page.Body)
	assert.Equal(t, foodinspect.DefaultEncoding, page.Encoding)
	assert.Equal(t, filepath.Join(base, "inspection_page.html"), page.URL)
	assert.False(t, page.FetchedAt.IsZero())
}

func TestPageCache_SaveLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	// Given a cache
	base := t.TempDir()
	cache := fs.NewPageCache(base)

	// When I save a page
	err := cache.Save(context.Background(), "page.html", &foodinspect.Page{Body: []byte("x")})
	require.NoError(t, err)

	// Then only the final file exists
	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "page.html", entries[0].Name())
}

func TestPageCache_SaveReplacesExisting(t *testing.T) {
	t.Parallel()

	// Given a cache with a stored page
	cache := fs.NewPageCache(t.TempDir())
	require.NoError(t, cache.Save(context.Background(), "page.html", &foodinspect.Page{Body: []byte("old")}))

	// When I save again under the same name
	require.NoError(t, cache.Save(context.Background(), "page.html", &foodinspect.Page{Body: []byte("new")}))

	// Then the new content is loaded
	page, err := cache.Load(context.Background(), "page.html")
	require.NoError(t, err)
	assert.Equal(t, "new", string(page.Body))
}

func TestPageCache_LoadMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	cache := fs.NewPageCache(t.TempDir())

	_, err := cache.Load(context.Background(), "missing.html")

	require.Error(t, err)
	assert.Equal(t, foodinspect.ENOTFOUND, foodinspect.ErrorCode(err))
}

func TestPageCache_RejectsPathNames(t *testing.T) {
	t.Parallel()

	cache := fs.NewPageCache(t.TempDir())

	for _, name := range []string{"", "..", "sub/page.html", "../escape.html"} {
		err := cache.Save(context.Background(), name, &foodinspect.Page{})
		assert.Equal(t, foodinspect.EINVALID, foodinspect.ErrorCode(err), "name %q", name)

		_, err = cache.Load(context.Background(), name)
		assert.Equal(t, foodinspect.EINVALID, foodinspect.ErrorCode(err), "name %q", name)
	}
}

func TestKeyForQuery(t *testing.T) {
	t.Parallel()

	t.Run("is stable for equal queries", func(t *testing.T) {
		t.Parallel()

		a := foodinspect.DefaultQuery().With(map[string]string{foodinspect.ParamZipCode: "98125"})
		b := foodinspect.DefaultQuery().With(map[string]string{foodinspect.ParamZipCode: "98125"})

		assert.Equal(t, fs.KeyForQuery(a), fs.KeyForQuery(b))
		assert.Regexp(t, `^inspection-[0-9a-f]{16}\.html$`, fs.KeyForQuery(a))
	})

	t.Run("differs for different queries", func(t *testing.T) {
		t.Parallel()

		a := foodinspect.DefaultQuery()
		b := foodinspect.DefaultQuery().With(map[string]string{foodinspect.ParamZipCode: "98125"})

		assert.NotEqual(t, fs.KeyForQuery(a), fs.KeyForQuery(b))
	})
}
