package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/resdesk"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of assets fetched in parallel on install.
const DefaultConcurrency = 4

// ManifestFile is the name of the manifest stored in each cache directory.
const ManifestFile = "manifest.json"

const assetsDir = "assets"

// Ensure AssetCache implements resdesk.AssetCache at compile time.
var _ resdesk.AssetCache = (*AssetCache)(nil)

// AssetCache keeps named copies of site assets on disk. Each cache lives in
// baseDir/<name>, with assets under assets/ and a manifest alongside.
// Installs are staged in a hidden temporary directory and renamed into place.
type AssetCache struct {
	baseDir     string
	source      resdesk.AssetSource
	concurrency int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Option configures an AssetCache.
type Option func(*AssetCache)

// WithConcurrency sets how many assets are fetched at once.
func WithConcurrency(n int) Option {
	return func(c *AssetCache) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewAssetCache creates an AssetCache storing caches in baseDir and
// fetching assets from source.
func NewAssetCache(baseDir string, source resdesk.AssetSource, opts ...Option) *AssetCache {
	c := &AssetCache{
		baseDir:     baseDir,
		source:      source,
		concurrency: DefaultConcurrency,
		Now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the directory holding the assets of the named cache.
func (c *AssetCache) Dir(name string) string {
	return filepath.Join(c.baseDir, name, assetsDir)
}

// Install fetches paths from the source and stores them as the named cache,
// replacing any previous cache of that name. If any asset fails, nothing
// is changed.
func (c *AssetCache) Install(ctx context.Context, name string, paths []string) (*resdesk.CacheManifest, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var locals []string
	var unique []string
	seen := make(map[string]bool)
	for _, p := range paths {
		rel, err := LocalPath(p)
		if err != nil {
			return nil, err
		}
		if seen[rel] {
			continue
		}
		seen[rel] = true
		locals = append(locals, rel)
		unique = append(unique, filepath.ToSlash(rel))
	}

	tmp := filepath.Join(c.baseDir, "."+name+".tmp")
	if err := os.RemoveAll(tmp); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(tmp, assetsDir), 0755); err != nil {
		return nil, err
	}

	assets := make([]resdesk.CachedAsset, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range unique {
		g.Go(func() error {
			data, err := c.source.ReadAsset(gctx, unique[i])
			if err != nil {
				return fmt.Errorf("fetch %s: %w", unique[i], err)
			}
			full := filepath.Join(tmp, assetsDir, locals[i])
			if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(full, data, 0644); err != nil {
				return err
			}
			assets[i] = resdesk.CachedAsset{
				Path:     unique[i],
				Size:     len(data),
				Checksum: Checksum(data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		_ = os.RemoveAll(tmp)
		return nil, err
	}

	manifest := &resdesk.CacheManifest{
		Name:        name,
		Assets:      assets,
		InstalledAt: c.Now().UTC(),
	}
	buf, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		_ = os.RemoveAll(tmp)
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(tmp, ManifestFile), buf, 0644); err != nil {
		_ = os.RemoveAll(tmp)
		return nil, err
	}

	final := filepath.Join(c.baseDir, name)
	if err := os.RemoveAll(final); err != nil {
		_ = os.RemoveAll(tmp)
		return nil, err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.RemoveAll(tmp)
		return nil, err
	}

	return manifest, nil
}

// Activate deletes every cache not named keep.
func (c *AssetCache) Activate(ctx context.Context, keep string) ([]string, error) {
	keys, err := c.Keys(ctx)
	if err != nil {
		return nil, err
	}

	var deleted []string
	for _, k := range keys {
		if k == keep {
			continue
		}
		if err := os.RemoveAll(filepath.Join(c.baseDir, k)); err != nil {
			return deleted, err
		}
		deleted = append(deleted, k)
	}
	return deleted, nil
}

// Keys returns installed cache names in lexical order. Staging directories
// are not reported.
func (c *AssetCache) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(c.baseDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	keys := []string{}
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		keys = append(keys, e.Name())
	}
	return keys, nil
}

// Verify recomputes the checksum of every asset in the named cache.
func (c *AssetCache) Verify(ctx context.Context, name string) (*resdesk.CacheManifest, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	buf, err := os.ReadFile(filepath.Join(c.baseDir, name, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, resdesk.Errorf(resdesk.ENOTFOUND, "cache %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	var manifest resdesk.CacheManifest
	if err := json.Unmarshal(buf, &manifest); err != nil {
		return nil, resdesk.Errorf(resdesk.ECONFLICT, "cache %q has a corrupt manifest", name)
	}

	for _, a := range manifest.Assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel, err := LocalPath(a.Path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(c.Dir(name), rel))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, resdesk.Errorf(resdesk.ECONFLICT, "cache %q is missing %s", name, a.Path)
		}
		if err != nil {
			return nil, err
		}
		if Checksum(data) != a.Checksum {
			return nil, resdesk.Errorf(resdesk.ECONFLICT, "cache %q has a modified %s", name, a.Path)
		}
	}
	return &manifest, nil
}

// Checksum returns the hex-encoded xxhash64 of data.
func Checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func validateName(name string) error {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return resdesk.Errorf(resdesk.EINVALID, "invalid cache name %q", name)
	}
	return nil
}
