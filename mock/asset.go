package mock

import (
	"context"

	"github.com/fwojciec/resdesk"
)

var _ resdesk.AssetSource = (*AssetSource)(nil)

// AssetSource is a mock implementation of resdesk.AssetSource.
type AssetSource struct {
	ReadAssetFn func(ctx context.Context, path string) ([]byte, error)
}

func (s *AssetSource) ReadAsset(ctx context.Context, path string) ([]byte, error) {
	return s.ReadAssetFn(ctx, path)
}

var _ resdesk.AssetCache = (*AssetCache)(nil)

// AssetCache is a mock implementation of resdesk.AssetCache.
type AssetCache struct {
	InstallFn  func(ctx context.Context, name string, paths []string) (*resdesk.CacheManifest, error)
	ActivateFn func(ctx context.Context, keep string) ([]string, error)
	KeysFn     func(ctx context.Context) ([]string, error)
	VerifyFn   func(ctx context.Context, name string) (*resdesk.CacheManifest, error)
}

func (c *AssetCache) Install(ctx context.Context, name string, paths []string) (*resdesk.CacheManifest, error) {
	return c.InstallFn(ctx, name, paths)
}

func (c *AssetCache) Activate(ctx context.Context, keep string) ([]string, error) {
	return c.ActivateFn(ctx, keep)
}

func (c *AssetCache) Keys(ctx context.Context) ([]string, error) {
	return c.KeysFn(ctx)
}

func (c *AssetCache) Verify(ctx context.Context, name string) (*resdesk.CacheManifest, error) {
	return c.VerifyFn(ctx, name)
}
