// Package cli implements the cobra commands of the unitconv tool.
// Each subcommand lives in its own file; this file defines the root
// command and the global flags.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"unit-algebra/catalog"
)

// Global flag variables, bound to persistent flags on the root command
// and therefore available to every subcommand.
var (
	catalogPath string
	jsonOutput  bool
	verbose     bool
)

// NewRootCommand creates and configures the root cobra command. The
// root command performs no action itself; the work happens in the
// convert and describe subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unitconv",
		Short: "Convert values between the units of a YAML catalog",
		Long: `unitconv builds a unit system from a declarative YAML catalog and
converts numeric values between its units.

The catalog declares dimensions, base units, derived units (products
with rational exponents), scaled units (affine wrappers such as
kilometer or celsius), and logarithmic units.`,

		// Errors are formatted by the caller, not by cobra.
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "",
		"Path to the YAML unit catalog (required)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging on stderr")

	rootCmd.AddCommand(NewConvertCommand())
	rootCmd.AddCommand(NewDescribeCommand())

	return rootCmd
}

// loadSystem loads and builds the catalog named by the --catalog flag.
func loadSystem() (*catalog.System, error) {
	if catalogPath == "" {
		return nil, fmt.Errorf("no catalog file given (use --catalog)")
	}

	f, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, err
	}

	sys, err := catalog.Build(f)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", catalogPath, err)
	}

	slog.Debug("catalog built",
		"path", catalogPath,
		"units", len(sys.Names()))

	return sys, nil
}
