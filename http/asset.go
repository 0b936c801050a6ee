package http

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/resdesk"
)

// Ensure AssetSource implements resdesk.AssetSource at compile time.
var _ resdesk.AssetSource = (*AssetSource)(nil)

// AssetSource reads site assets relative to a published base URL.
type AssetSource struct {
	base    *url.URL
	fetcher resdesk.Fetcher
	delays  []time.Duration
}

// SourceOption configures an AssetSource.
type SourceOption func(*AssetSource)

// WithRetryDelays sets the waits between attempts of a failed read.
// No delays disables retries.
func WithRetryDelays(delays ...time.Duration) SourceOption {
	return func(s *AssetSource) {
		s.delays = delays
	}
}

// NewAssetSource returns an AssetSource rooted at baseURL.
// A trailing slash is added to the base path so that relative asset paths
// resolve beneath it.
func NewAssetSource(baseURL string, fetcher resdesk.Fetcher, opts ...SourceOption) (*AssetSource, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, resdesk.Errorf(resdesk.EINVALID, "invalid site URL: %v", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, resdesk.Errorf(resdesk.EINVALID, "site URL must be http or https: %q", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	s := &AssetSource{base: base, fetcher: fetcher, delays: DefaultRetryDelays()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ReadAsset fetches the asset at path, retrying transient failures.
func (s *AssetSource) ReadAsset(ctx context.Context, path string) ([]byte, error) {
	target, err := s.Resolve(path)
	if err != nil {
		return nil, err
	}
	body, err := fetchWithRetry(ctx, target, s.fetcher.Fetch, s.delays)
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

// Resolve returns the absolute URL of path.
// Returns EINVALID for paths that leave the site.
func (s *AssetSource) Resolve(path string) (string, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", resdesk.Errorf(resdesk.EINVALID, "invalid asset path %q", path)
	}
	if ref.IsAbs() || ref.Host != "" {
		return "", resdesk.Errorf(resdesk.EINVALID, "asset path must be relative: %q", path)
	}
	resolved := s.base.ResolveReference(ref)
	if !strings.HasPrefix(resolved.Path, s.base.Path) {
		return "", resdesk.Errorf(resdesk.EINVALID, "asset path escapes site: %q", path)
	}
	return resolved.String(), nil
}
