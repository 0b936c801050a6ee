// Package rod opens URLs in a locally installed Chromium-family browser
// using the go-rod launcher.
package rod

import (
	"context"

	"github.com/fwojciec/resdesk"
	"github.com/go-rod/rod/lib/launcher"
)

// Ensure Opener implements resdesk.Opener at compile time.
var _ resdesk.Opener = (*Opener)(nil)

// Opener opens URLs in a new browser window.
type Opener struct {
	// LookPath reports the browser binary. Defaults to launcher.LookPath.
	LookPath func() (string, bool)

	// Launch starts the browser on url. Defaults to launcher.Open.
	Launch func(url string)
}

// NewOpener returns an Opener using the browser found on the system.
func NewOpener() *Opener {
	return &Opener{
		LookPath: launcher.LookPath,
		Launch:   launcher.Open,
	}
}

// Open launches the browser on url without waiting for it to exit.
// Returns ENOTFOUND when no browser is installed.
func (o *Opener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := o.LookPath(); !ok {
		return resdesk.Errorf(resdesk.ENOTFOUND, "no Chrome or Chromium browser found")
	}
	o.Launch(url)
	return nil
}
