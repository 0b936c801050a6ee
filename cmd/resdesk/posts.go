package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/resdesk"
)

// Run executes the posts find command.
func (c *PostsFindCmd) Run(deps *Dependencies) error {
	deps.Posts.Render(deps.Surface, strings.Join(c.Text, " "))
	return nil
}

// Run executes the posts show command.
func (c *PostsShowCmd) Run(deps *Dependencies) error {
	post, err := deps.Reader.Read(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		if c.Offline && resdesk.ErrorCode(err) == resdesk.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: run 'resdesk cache install' first")
		}
		return err
	}

	if c.Outline {
		for _, h := range post.Outline {
			fmt.Fprintf(deps.Stdout, "%s%s  #%s\n", strings.Repeat("  ", h.Level-1), h.Title, h.Anchor)
		}
		return nil
	}

	if post.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", post.Title)
	}
	fmt.Fprintln(deps.Stdout, post.Markdown)
	return nil
}
