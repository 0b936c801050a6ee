package mock

import "github.com/fwojciec/resdesk"

var _ resdesk.Converter = (*Converter)(nil)

// Converter is a mock implementation of resdesk.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
