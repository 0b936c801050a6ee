// Package fs provides file-based site access and the offline asset cache.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/resdesk"
)

// Ensure SiteDir implements resdesk.AssetSource at compile time.
var _ resdesk.AssetSource = (*SiteDir)(nil)

// SiteDir reads assets from a local checkout of the blog.
type SiteDir struct {
	root string
}

// NewSiteDir returns a SiteDir rooted at dir.
func NewSiteDir(dir string) *SiteDir {
	return &SiteDir{root: dir}
}

// Root returns the directory the site is read from.
func (d *SiteDir) Root() string {
	return d.root
}

// ReadAsset reads the asset at path.
func (d *SiteDir) ReadAsset(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := LocalPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(d.root, rel))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, resdesk.Errorf(resdesk.ENOTFOUND, "asset %q not found", path)
	}
	return data, err
}

// Resolve returns the file URL of the asset at path.
func (d *SiteDir) Resolve(path string) (string, error) {
	rel, err := LocalPath(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filepath.Join(d.root, rel))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// LocalPath converts a slash-separated site path into a relative file path.
// A leading slash is ignored. Returns EINVALID for paths leaving the site.
func LocalPath(path string) (string, error) {
	p := filepath.FromSlash(strings.TrimPrefix(path, "/"))
	if p == "" || !filepath.IsLocal(p) {
		return "", resdesk.Errorf(resdesk.EINVALID, "invalid asset path %q", path)
	}
	return filepath.Clean(p), nil
}
