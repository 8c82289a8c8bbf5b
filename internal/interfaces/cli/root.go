// Package cli implements the mechparse command line interface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/turtacn/MechParse/internal/application/kinetics"
	"github.com/turtacn/MechParse/internal/config"
	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
)

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Output     string
	Workers    int
	FailFast   bool
}

// CLIContext carries the initialized dependencies to subcommands via the
// command context.
type CLIContext struct {
	Config  *config.Config
	Logger  logging.Logger
	Service kinetics.Service
	Opts    *RootOptions
}

type ctxKey struct{}

// FromContext extracts the CLIContext installed by the root command.
func FromContext(ctx context.Context) (*CLIContext, bool) {
	c, ok := ctx.Value(ctxKey{}).(*CLIContext)
	return c, ok
}

func mustCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	c, ok := FromContext(cmd.Context())
	if !ok {
		return nil, fmt.Errorf("command context not initialized")
	}
	return c, nil
}

// NewRootCommand builds the mechparse root command with all subcommands
// attached.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "mechparse",
		Short:         "Parse kinetics rate data from CHEMKIN reaction mechanisms",
		Long:          "mechparse reads CHEMKIN-format reaction mechanisms and extracts\nreaction equations, Arrhenius coefficients, pressure-dependence data\n(LOW, TROE, PLOG, Chebyshev) and bath-gas collision efficiencies.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.LogLevel != "" {
				cfg.Log.Level = opts.LogLevel
			}
			// CLI output goes to stdout; logs keep to stderr.
			cfg.Log.OutputPaths = []string{"stderr"}
			cfg.Log.Format = "console"
			if cmd.Flags().Changed("workers") {
				cfg.Parser.Workers = opts.Workers
			}
			if cmd.Flags().Changed("fail-fast") {
				cfg.Parser.FailFast = opts.FailFast
			}

			logger, err := logging.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			logging.SetDefault(logger)

			svc := kinetics.NewService(kinetics.Options{
				Workers:  cfg.Parser.Workers,
				FailFast: cfg.Parser.FailFast,
			}, logger, nil)

			cmd.SetContext(context.WithValue(cmd.Context(), ctxKey{}, &CLIContext{
				Config:  cfg,
				Logger:  logger,
				Service: svc,
				Opts:    opts,
			}))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	pf.StringVarP(&opts.Output, "output", "o", "table", "output format (table|json)")
	pf.IntVar(&opts.Workers, "workers", 0, "concurrent entry parsers per block")
	pf.BoolVar(&opts.FailFast, "fail-fast", false, "stop at the first malformed entry")

	cmd.AddCommand(
		newParseCommand(),
		newKeyedCommand(),
		newSpeciesCommand(),
		newUnitsCommand(),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	cmd := NewRootCommand(version)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "mechparse: %v\n", err)
		return 1
	}
	return 0
}

// PrintResult renders v to w in the format selected by --output.
func PrintResult(w io.Writer, opts *RootOptions, v interface{}, table func(io.Writer) error) error {
	if opts.Output == "json" || table == nil {
		return printJSON(w, v)
	}
	return table(w)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatTable writes rows as a tab-aligned table with the given header.
func FormatTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, h := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}
