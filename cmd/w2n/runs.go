package main

import (
	"fmt"

	"github.com/nmcintosh/w2n"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := w2n.RunFilter{Limit: c.Limit}
	if c.DatabaseID != "" {
		filter.DatabaseID = &c.DatabaseID
	}
	if c.Failed {
		failed := true
		filter.Failed = &failed
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", w2n.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'w2n import' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), runStatus(r), r.Title)
	}

	return nil
}

// runStatus summarizes a run outcome in one word.
func runStatus(r *w2n.Run) string {
	if r.Success && !r.HasErrors {
		return "ok"
	}
	return "failed"
}
