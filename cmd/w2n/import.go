package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nmcintosh/w2n"
	w2nhttp "github.com/nmcintosh/w2n/http"
	"github.com/nmcintosh/w2n/sqlite"
)

// Run executes the import command: load the fixture, post it to the W2N
// service, print the validation summary, and record the run. The process
// exits non-zero unless the page was created and validation found no
// errors.
func (c *ImportCmd) Run(deps *Dependencies) error {
	// Load the fixture first; a missing file must fail before any
	// network call.
	fixture, err := deps.Fixtures.Load(c.Fixture)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", w2n.ErrorMessage(err))
		return err
	}

	req := c.buildRequest(deps.Config, fixture)
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", w2n.ErrorMessage(err))
		if req.DatabaseID == "" {
			fmt.Fprintln(deps.Stderr, "Hint: Pass --database-id or set database_id in the config file")
		}
		return err
	}

	// Local block counts are informational; a count failure never
	// aborts the import.
	counts, countErr := deps.Counter.Count(fixture.HTML)
	if countErr != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to count fixture blocks: %v\n", countErr)
	} else {
		fmt.Fprintf(deps.Stdout, "Fixture %s (%s)\n", fixture.Path, w2n.FormatCounts(counts))
	}

	fmt.Fprintf(deps.Stdout, "Importing %q into %s...\n", req.Title, req.DatabaseID)

	result, err := deps.Importer.Import(deps.Ctx, req)
	if err != nil {
		var statusErr *w2nhttp.StatusError
		if errors.As(err, &statusErr) {
			// Echo the status and raw body verbatim.
			fmt.Fprintf(deps.Stderr, "error: HTTP %d\n%s\n", statusErr.StatusCode, statusErr.Body)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", w2n.ErrorMessage(err))
		}
		return err
	}

	c.recordRun(deps, fixture, req, result)

	if !result.Success {
		fmt.Fprintln(deps.Stdout, "Import failed")
		if pretty, err := json.MarshalIndent(result, "", "  "); err == nil {
			fmt.Fprintln(deps.Stdout, string(pretty))
		}
		return fmt.Errorf("service did not create the page")
	}

	fmt.Fprintf(deps.Stdout, "Page created: %s\n", result.PageID)
	fmt.Fprintf(deps.Stdout, "  URL: %s\n\n", result.URL)
	fmt.Fprint(deps.Stdout, w2n.FormatValidation(result.Validation))

	if !result.Succeeded() {
		return fmt.Errorf("validation reported errors")
	}

	return nil
}

// buildRequest assembles the import request from flags, config and
// fixture-derived defaults.
func (c *ImportCmd) buildRequest(cfg *w2n.Config, fixture *w2n.Fixture) *w2n.ImportRequest {
	base := filepath.Base(fixture.Path)

	title := c.Title
	if title == "" {
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	databaseID := c.DatabaseID
	if databaseID == "" {
		databaseID = cfg.DatabaseID
	}

	sourceURL := c.SourceURL
	if sourceURL == "" {
		sourceURL = "https://example.servicenow.com/" + base
	}

	properties := w2n.DefaultProperties()
	for k, v := range cfg.Properties {
		properties[k] = v
	}
	for k, v := range c.Property {
		properties[k] = v
	}

	return &w2n.ImportRequest{
		Title:       title,
		DatabaseID:  databaseID,
		ContentHTML: fixture.HTML,
		URL:         sourceURL,
		Properties:  properties,
	}
}

// recordRun persists the run to history. Failures are warnings only; the
// run outcome is governed solely by the service response.
func (c *ImportCmd) recordRun(deps *Dependencies, fixture *w2n.Fixture, req *w2n.ImportRequest, result *w2n.ImportResult) {
	run := &w2n.Run{
		Title:       req.Title,
		DatabaseID:  req.DatabaseID,
		FixturePath: fixture.Path,
		FixtureHash: sqlite.HashFixture(fixture.HTML),
		SourceURL:   req.URL,
		PageID:      result.PageID,
		PageURL:     result.URL,
		Success:     result.Success,
		HasErrors:   result.Validation.Failed(),
	}

	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record run: %v\n", err)
	}
}
