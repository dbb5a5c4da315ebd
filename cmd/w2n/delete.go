package main

import (
	"fmt"

	"github.com/nmcintosh/w2n"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		err := fmt.Errorf("deletion requires --force")
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		if w2n.ErrorCode(err) == w2n.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "run %q not found. Run 'w2n runs' to list recorded runs.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", w2n.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}
