package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/resdesk"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	target, err := deps.Search.Search(deps.Ctx, resdesk.Provider(c.Provider), strings.Join(c.Query, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		if resdesk.ErrorCode(err) == resdesk.EINVALID {
			fmt.Fprintln(deps.Stderr, "usage: resdesk search [--provider=scholar] <query>")
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, target)
	return nil
}
