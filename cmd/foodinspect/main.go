package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/foodinspect/fs"
	"github.com/fwojciec/foodinspect/goquery"
	"github.com/fwojciec/foodinspect/resty"
	fislog "github.com/fwojciec/foodinspect/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Settings may come from a .env file; a missing file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("foodinspect"),
		kong.Description("Extract restaurant inspection records from King County food safety results"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'foodinspect --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps.Source = fislog.NewLoggingSource(
		resty.NewSource(
			resty.WithBaseURL(cli.BaseURL),
			resty.WithTimeout(cli.Timeout),
			resty.WithUserAgent(userAgent),
		),
		logger,
	)
	deps.Cache = fislog.NewLoggingPageCache(fs.NewPageCache(cli.CacheDir), logger)
	deps.Extractor = fislog.NewLoggingExtractor(
		goquery.NewExtractor(goquery.WithConcurrency(cli.Concurrency)),
		logger,
	)

	return kongCtx.Run(deps)
}

const userAgent = "foodinspect/1.0"

// newLogger returns a logger writing human-readable lines to w.
// Only warnings and errors are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return slog.New(handler)
}
