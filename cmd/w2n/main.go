package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/nmcintosh/w2n"
	"github.com/nmcintosh/w2n/fs"
	"github.com/nmcintosh/w2n/goquery"
	"github.com/nmcintosh/w2n/htmltomarkdown"
	w2nhttp "github.com/nmcintosh/w2n/http"
	w2nslog "github.com/nmcintosh/w2n/slog"
	"github.com/nmcintosh/w2n/sqlite"
	"github.com/nmcintosh/w2n/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// Database path override. When empty, the config file and the
	// default location apply.
	DBPath string

	// SQLite database used for run history.
	DB *sqlite.DB

	// Run history service, exposed for end-to-end testing.
	RunService w2n.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		DBPath:     os.Getenv("W2N_DB"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("w2n"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'w2n --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Dispatch on the parsed command, not the raw arguments; global flags
	// like --config may precede the command name.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Load config file; flags take precedence over its values.
	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := yaml.LoadConfig(configPath)
	if err != nil {
		return err
	}
	deps.Config = cfg

	// Open run history database.
	m.DB = sqlite.NewDB(m.dbPath(cfg))
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set W2N_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.dbPath(cfg), err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	deps.Runs = m.RunService
	deps.Fixtures = fs.NewFixtureService()
	deps.Counter = goquery.NewCounter()

	if cmd == "import" {
		server := resolveServer(cli.Import.Server, cfg)
		timeout := resolveTimeout(cli.Import.Timeout, cfg)

		var importer w2n.ImportService = w2nhttp.NewClient(server, w2nhttp.WithTimeout(timeout))
		if cli.Import.Verbose {
			logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))
			importer = w2nslog.NewLoggingImportService(importer, logger)
		}
		deps.Importer = importer
	}

	if cmd == "preview" {
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// dbPath resolves the run history database path: explicit override (or
// W2N_DB), then the config file, then the default under the home dir.
func (m *Main) dbPath(cfg *w2n.Config) string {
	if m.DBPath != "" {
		return m.DBPath
	}
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "w2n.db"
	}
	dir := filepath.Join(home, ".w2n")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "w2n.db")
}

// resolveServer applies flag > config > env > default precedence.
func resolveServer(flag string, cfg *w2n.Config) string {
	if flag != "" {
		return flag
	}
	if cfg.Server != "" {
		return cfg.Server
	}
	if env := os.Getenv("W2N_SERVER"); env != "" {
		return env
	}
	return w2n.DefaultServerURL
}

// resolveTimeout applies flag > config > default precedence.
func resolveTimeout(flag time.Duration, cfg *w2n.Config) time.Duration {
	if flag > 0 {
		return flag
	}
	if cfg.TimeoutSec > 0 {
		return time.Duration(cfg.TimeoutSec) * time.Second
	}
	return w2nhttp.DefaultImportTimeout
}

func defaultConfigPath() string {
	if path := os.Getenv("W2N_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".w2n", "config.yaml")
}
