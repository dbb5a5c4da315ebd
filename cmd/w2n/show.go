package main

import (
	"fmt"

	"github.com/nmcintosh/w2n"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if w2n.ErrorCode(err) == w2n.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "run %q not found. Run 'w2n runs' to list recorded runs.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", w2n.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "  Title: %s\n", run.Title)
	fmt.Fprintf(deps.Stdout, "  Database: %s\n", run.DatabaseID)
	fmt.Fprintf(deps.Stdout, "  Fixture: %s (%s)\n", run.FixturePath, run.FixtureHash)
	fmt.Fprintf(deps.Stdout, "  Source: %s\n", run.SourceURL)
	if run.PageID != "" {
		fmt.Fprintf(deps.Stdout, "  Page: %s (%s)\n", run.PageID, run.PageURL)
	}
	fmt.Fprintf(deps.Stdout, "  Status: %s\n", runStatus(run))
	fmt.Fprintf(deps.Stdout, "  Imported: %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))

	return nil
}
