package main

import (
	"context"
	"io"
	"time"

	"github.com/nmcintosh/w2n"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *w2n.Config
	Importer  w2n.ImportService
	Fixtures  w2n.FixtureService
	Counter   w2n.Counter
	Converter w2n.Converter
	Runs      w2n.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `help:"Path to YAML config file" type:"path"`

	Import  ImportCmd  `cmd:"" help:"Import an HTML fixture into the W2N service"`
	Preview PreviewCmd `cmd:"" help:"Show a fixture as Markdown without importing"`
	Runs    RunsCmd    `cmd:"" help:"List recorded import runs"`
	Show    ShowCmd    `cmd:"" help:"Show one import run"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an import run record"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Fixture    string            `arg:"" help:"Path to the HTML fixture file"`
	Title      string            `short:"t" help:"Page title (default: fixture file name)"`
	DatabaseID string            `short:"d" name:"database-id" help:"Target database ID"`
	Server     string            `help:"W2N service base URL"`
	Timeout    time.Duration     `help:"Import call timeout (default 120s)"`
	SourceURL  string            `name:"source-url" help:"Source reference URL (default: synthesized from fixture name)"`
	Property   map[string]string `short:"P" help:"Metadata property (repeatable, key=value)"`
	Verbose    bool              `short:"v" help:"Log import calls"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Fixture string `arg:"" help:"Path to the HTML fixture file"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	DatabaseID string `name:"database-id" help:"Filter by database ID"`
	Failed     bool   `help:"Show only failed runs"`
	Limit      int    `default:"20" help:"Maximum number of runs to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Run ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
