package mock

import "github.com/fwojciec/resdesk"

var _ resdesk.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of resdesk.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*resdesk.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*resdesk.ExtractResult, error) {
	return e.ExtractFn(html)
}
