package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/resdesk"
)

// assetSelector matches every element that can reference a site asset.
const assetSelector = "link[href], script[src], img[src], a[href]"

// PageAssets returns the site paths referenced by page, in document order
// and without duplicates. pagePath is the page's own path and is used to
// resolve relative references. External URLs, other schemes and the page
// itself are skipped; queries and fragments are dropped.
func PageAssets(page, pagePath string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, resdesk.Errorf(resdesk.EINVALID, "failed to parse page: %v", err)
	}

	base := &url.URL{Scheme: "site", Host: "local", Path: "/" + strings.TrimPrefix(pagePath, "/")}
	self := strings.TrimPrefix(base.Path, "/")

	seen := make(map[string]bool)
	var paths []string
	doc.Find(assetSelector).Each(func(_ int, sel *goquery.Selection) {
		ref, ok := sel.Attr("href")
		if !ok {
			ref, _ = sel.Attr("src")
		}
		p := sitePath(base, ref)
		if p == "" || p == self || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	})
	return paths, nil
}

// sitePath resolves ref against base and returns the path relative to the
// site root, or "" when ref points elsewhere.
func sitePath(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(u)
	if resolved.Scheme != base.Scheme || resolved.Host != base.Host {
		return ""
	}
	return strings.TrimPrefix(resolved.Path, "/")
}
