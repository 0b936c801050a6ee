package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/resdesk"
)

// Ensure LoggingAssetSource implements resdesk.AssetSource.
var _ resdesk.AssetSource = (*LoggingAssetSource)(nil)

// LoggingAssetSource wraps an AssetSource with logging.
type LoggingAssetSource struct {
	next   resdesk.AssetSource
	logger *slog.Logger
}

// NewLoggingAssetSource creates a new LoggingAssetSource.
func NewLoggingAssetSource(next resdesk.AssetSource, logger *slog.Logger) *LoggingAssetSource {
	return &LoggingAssetSource{next: next, logger: logger}
}

// ReadAsset delegates to the wrapped source and logs the read.
func (s *LoggingAssetSource) ReadAsset(ctx context.Context, path string) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read asset",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadAsset(ctx, path)
}

// Ensure LoggingAssetCache implements resdesk.AssetCache.
var _ resdesk.AssetCache = (*LoggingAssetCache)(nil)

// LoggingAssetCache wraps an AssetCache with logging.
type LoggingAssetCache struct {
	next   resdesk.AssetCache
	logger *slog.Logger
}

// NewLoggingAssetCache creates a new LoggingAssetCache.
func NewLoggingAssetCache(next resdesk.AssetCache, logger *slog.Logger) *LoggingAssetCache {
	return &LoggingAssetCache{next: next, logger: logger}
}

// Install delegates to the wrapped cache and logs the result.
func (c *LoggingAssetCache) Install(ctx context.Context, name string, paths []string) (m *resdesk.CacheManifest, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache install",
			"name", name,
			"assets", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Install(ctx, name, paths)
}

// Activate delegates to the wrapped cache and logs deleted caches.
func (c *LoggingAssetCache) Activate(ctx context.Context, keep string) (deleted []string, err error) {
	defer func() {
		c.logger.Info("cache activate",
			"keep", keep,
			"deleted", deleted,
			"err", err,
		)
	}()
	return c.next.Activate(ctx, keep)
}

// Keys delegates to the wrapped cache.
func (c *LoggingAssetCache) Keys(ctx context.Context) ([]string, error) {
	return c.next.Keys(ctx)
}

// Verify delegates to the wrapped cache and logs the outcome.
func (c *LoggingAssetCache) Verify(ctx context.Context, name string) (m *resdesk.CacheManifest, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache verify",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Verify(ctx, name)
}
