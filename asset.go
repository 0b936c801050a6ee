package resdesk

import (
	"context"
	"time"
)

// CacheName is the name of the current offline asset cache.
const CacheName = "research-blog"

// OfflineAssets lists the site paths kept available offline.
var OfflineAssets = []string{
	"index.html",
	"style.css",
	"script.js",
	"posts/ai-adaptive-learning.html",
	"posts/Post2.html",
}

// AssetSource reads raw site assets by path relative to the site root.
type AssetSource interface {
	// ReadAsset returns the content of the asset at path.
	// Returns ENOTFOUND if the asset does not exist.
	ReadAsset(ctx context.Context, path string) ([]byte, error)
}

// CachedAsset describes one asset stored in a cache.
type CachedAsset struct {
	Path     string `json:"path"`
	Size     int    `json:"size"`
	Checksum string `json:"checksum"`
}

// CacheManifest describes an installed cache.
type CacheManifest struct {
	Name        string        `json:"name"`
	Assets      []CachedAsset `json:"assets"`
	InstalledAt time.Time     `json:"installedAt"`
}

// AssetCache stores named, versioned copies of the site's assets.
type AssetCache interface {
	// Install fetches every path and stores them under name.
	// Either all assets are stored or the previous state is kept.
	Install(ctx context.Context, name string, paths []string) (*CacheManifest, error)

	// Activate deletes every cache whose name differs from keep and
	// returns the deleted names.
	Activate(ctx context.Context, keep string) ([]string, error)

	// Keys returns the names of all installed caches.
	Keys(ctx context.Context) ([]string, error)

	// Verify recomputes checksums of the named cache.
	// Returns ENOTFOUND if the cache is missing and ECONFLICT on mismatch.
	Verify(ctx context.Context, name string) (*CacheManifest, error)
}
