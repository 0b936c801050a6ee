// Package trafilatura extracts the article body of blog posts with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/resdesk"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements resdesk.Extractor at compile time.
var _ resdesk.Extractor = (*Extractor)(nil)

// Extractor pulls the article out of a post page, dropping the blog's
// header, navigation and footer. Links are kept so references survive.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			IncludeLinks:    true,
		},
	}
}

// Extract returns the title and article body of a post.
func (e *Extractor) Extract(rawHTML string) (*resdesk.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, resdesk.Errorf(resdesk.EINVALID, "empty post HTML")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	out := &resdesk.ExtractResult{Title: result.Metadata.Title}
	if result.ContentNode == nil {
		return out, nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}
	out.ContentHTML = buf.String()
	return out, nil
}
