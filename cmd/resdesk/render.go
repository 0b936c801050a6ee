package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fwojciec/resdesk"
	"github.com/fwojciec/resdesk/goquery"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.ReadAsset(deps.Ctx, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		return err
	}

	surface, err := goquery.NewSurface(bytes.NewReader(page))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		return err
	}

	resdesk.NewHistory(deps.Ctx, deps.Store, surface).Render()
	resdesk.NewVibeRotator(surface).Rotate()

	if c.Out == "" {
		_, err = surface.WriteTo(deps.Stdout)
		return err
	}

	out, err := surface.HTML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	fmt.Fprintf(deps.Stderr, "Wrote %s\n", c.Out)
	return nil
}
