package resdesk

import (
	"context"
	"net/url"
	"strings"
)

// Provider identifies an external literature search engine.
type Provider string

// Supported literature search providers.
const (
	ProviderScholar  Provider = "scholar"
	ProviderSemantic Provider = "semantic"
	ProviderArxiv    Provider = "arxiv"
	ProviderIEEE     Provider = "ieee"
)

// DefaultProvider is used when no provider is named.
const DefaultProvider = ProviderScholar

// Providers lists every supported provider in display order.
var Providers = []Provider{ProviderScholar, ProviderSemantic, ProviderArxiv, ProviderIEEE}

var providerPrefixes = map[Provider]string{
	ProviderScholar:  "https://scholar.google.com/scholar?q=",
	ProviderSemantic: "https://www.semanticscholar.org/search?q=",
	ProviderArxiv:    "https://arxiv.org/search/?query=",
	ProviderIEEE:     "https://ieeexplore.ieee.org/search/searchresult.jsp?queryText=",
}

var providerSuffixes = map[Provider]string{
	ProviderArxiv: "&searchtype=all",
}

// SearchURL returns the provider URL for an already encoded query.
// Returns EINVALID for unknown providers.
func (p Provider) SearchURL(encodedQuery string) (string, error) {
	prefix, ok := providerPrefixes[p]
	if !ok {
		return "", Errorf(EINVALID, "unknown search provider %q", string(p))
	}
	return prefix + encodedQuery + providerSuffixes[p], nil
}

// EncodeQuery percent-encodes a query for use as a URL component.
// Spaces become %20 rather than +.
func EncodeQuery(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}

// Opener hands a URL to the host environment, typically a web browser.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// LiteratureSearch opens external search engines and records each query
// in the session history.
type LiteratureSearch struct {
	History *History
	Opener  Opener
}

// Search records query in the history and opens it with provider.
// Returns the opened URL. Returns EINVALID for an empty query or an
// unknown provider; nothing is recorded in either case.
func (s *LiteratureSearch) Search(ctx context.Context, provider Provider, query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", Errorf(EINVALID, "search query required")
	}
	if provider == "" {
		provider = DefaultProvider
	}
	if _, ok := providerPrefixes[provider]; !ok {
		return "", Errorf(EINVALID, "unknown search provider %q", string(provider))
	}

	if s.History != nil {
		s.History.RecordQuery(ctx, q)
	}

	target, err := provider.SearchURL(EncodeQuery(q))
	if err != nil {
		return "", err
	}
	if err := s.Opener.Open(ctx, target); err != nil {
		return "", err
	}
	return target, nil
}
