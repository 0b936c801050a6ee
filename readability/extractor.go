// Package readability extracts post content with go-readability. It serves
// as the fallback when trafilatura finds no article body.
package readability

import (
	"strings"

	"github.com/fwojciec/resdesk"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements resdesk.Extractor at compile time.
var _ resdesk.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and readable content of a post.
func (e *Extractor) Extract(rawHTML string) (*resdesk.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, resdesk.Errorf(resdesk.EINVALID, "empty post HTML")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &resdesk.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
