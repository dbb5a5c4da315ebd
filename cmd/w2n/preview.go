package main

import (
	"fmt"

	"github.com/nmcintosh/w2n"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	fixture, err := deps.Fixtures.Load(c.Fixture)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", w2n.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(fixture.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", w2n.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
