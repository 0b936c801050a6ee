package main

import "fmt"

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		deps.History.Clear(deps.Ctx)
		fmt.Fprintln(deps.Stdout, "History cleared.")
		return nil
	}

	deps.History.Render()
	return nil
}
