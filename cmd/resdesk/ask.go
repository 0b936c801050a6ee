package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/resdesk"
)

// sectionHints tells the user which command serves a page section.
var sectionHints = map[resdesk.Target]string{
	resdesk.TargetSearch:         "resdesk search <query>",
	resdesk.TargetCitations:      "resdesk cite <author> <title> <venue> <year>",
	resdesk.TargetInternalSearch: "resdesk posts find <keyword>",
}

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	resp := deps.Responder.Classify(strings.Join(c.Request, " "))
	deps.Surface.SetText(resdesk.TargetResponse, resp.Message)

	if c.NoFollow || !resp.HasTarget() {
		return nil
	}

	if err := deps.wait(resp.Delay); err != nil {
		return err
	}

	switch resp.Action {
	case resdesk.ActionScroll:
		if hint, ok := sectionHints[resp.Target]; ok {
			fmt.Fprintf(deps.Stdout, "Next: %s\n", hint)
		}
	case resdesk.ActionNavigate:
		target, err := deps.Resolve(string(resp.Target))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
			return err
		}
		if err := deps.Opener.Open(deps.Ctx, target); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Opened %s\n", target)
	}
	return nil
}
