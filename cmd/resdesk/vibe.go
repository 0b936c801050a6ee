package main

import "github.com/fwojciec/resdesk"

// Run executes the vibe command.
func (c *VibeCmd) Run(deps *Dependencies) error {
	if c.Count < 1 {
		return resdesk.Errorf(resdesk.EINVALID, "count must be at least 1")
	}
	for i := range c.Count {
		if i > 0 {
			if err := deps.wait(c.Interval); err != nil {
				return err
			}
		}
		deps.Vibes.Rotate()
	}
	return nil
}
