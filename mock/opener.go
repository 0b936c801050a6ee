package mock

import (
	"context"

	"github.com/fwojciec/resdesk"
)

var _ resdesk.Opener = (*Opener)(nil)

// Opener is a mock implementation of resdesk.Opener.
type Opener struct {
	OpenFn func(ctx context.Context, url string) error
}

func (o *Opener) Open(ctx context.Context, url string) error {
	return o.OpenFn(ctx, url)
}
