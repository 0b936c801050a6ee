package main

import (
	"fmt"

	"github.com/fwojciec/resdesk"
)

// Run executes the cite command.
func (c *CiteCmd) Run(deps *Dependencies) error {
	citation := resdesk.Citation{
		Author: c.Author,
		Title:  c.Title,
		Venue:  c.Venue,
		Year:   c.Year,
	}
	if _, err := resdesk.RenderCitation(deps.Surface, citation, resdesk.CitationStyle(c.Style)); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		return err
	}
	return nil
}
