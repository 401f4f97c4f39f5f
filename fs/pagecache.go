// Package fs provides file-based storage of raw results pages.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/foodinspect"
)

// Ensure PageCache implements foodinspect.PageCache at compile time.
var _ foodinspect.PageCache = (*PageCache)(nil)

// PageCache implements foodinspect.PageCache by storing raw page bytes as
// files in a directory. Writes go to a temporary file that is renamed into
// place, so a reader never sees a partially written page.
type PageCache struct {
	baseDir string
}

// NewPageCache creates a new PageCache rooted at baseDir.
// The directory is created on first Save.
func NewPageCache(baseDir string) *PageCache {
	return &PageCache{baseDir: baseDir}
}

// KeyForQuery returns a stable file name for the page of q.
func KeyForQuery(q foodinspect.Query) string {
	return fmt.Sprintf("inspection-%016x.html", xxhash.Sum64String(q.Encode()))
}

func (c *PageCache) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", foodinspect.Errorf(foodinspect.EINVALID, "invalid page name %q", name)
	}
	return filepath.Join(c.baseDir, name), nil
}

// Save writes the page body under name, replacing any previous copy.
func (c *PageCache) Save(ctx context.Context, name string, page *foodinspect.Page) error {
	finalPath, err := c.path(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.baseDir, 0755); err != nil {
		return err
	}

	tempPath := finalPath + ".tmp"
	if err := os.WriteFile(tempPath, page.Body, 0644); err != nil {
		return err
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
		return err
	}

	return nil
}

// Load reads the page stored under name. Stored pages carry no encoding
// information, so DefaultEncoding is assumed.
func (c *PageCache) Load(ctx context.Context, name string) (*foodinspect.Page, error) {
	path, err := c.path(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, foodinspect.Errorf(foodinspect.ENOTFOUND, "page %q not found", name)
	} else if err != nil {
		return nil, err
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &foodinspect.Page{
		URL:       path,
		Body:      body,
		Encoding:  foodinspect.DefaultEncoding,
		FetchedAt: info.ModTime(),
	}, nil
}
