package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/resdesk"
)

// Ensure Terminal implements resdesk.DisplaySurface at compile time.
var _ resdesk.DisplaySurface = (*Terminal)(nil)

// Terminal is a DisplaySurface that prints to a text stream.
type Terminal struct {
	w io.Writer
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// SetText prints text on its own line.
func (t *Terminal) SetText(_ resdesk.Target, text string) {
	fmt.Fprintln(t.w, text)
}

// RenderList prints a heading for the target followed by one line per item.
func (t *Terminal) RenderList(target resdesk.Target, items []resdesk.ListItem) {
	heading, empty := listLabels(target)
	if len(items) == 0 {
		fmt.Fprintln(t.w, empty)
		return
	}
	fmt.Fprintln(t.w, heading)
	for i, item := range items {
		if item.Href != "" {
			fmt.Fprintf(t.w, "  %d. %s (%s)\n", i+1, item.Text, item.Href)
			continue
		}
		fmt.Fprintf(t.w, "  %d. %s\n", i+1, item.Text)
	}
}

func listLabels(target resdesk.Target) (heading, empty string) {
	switch target {
	case resdesk.TargetHistory:
		return "Recent searches:", "No recent searches."
	case resdesk.TargetInternalResults:
		return "Posts:", "No matching posts."
	default:
		return string(target) + ":", "Nothing to show."
	}
}
