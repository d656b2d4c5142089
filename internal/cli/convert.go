package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

// convertFlags holds the flag values for the convert command.
type convertFlags struct {
	from string
	to   string
}

// conversion is one converted value, as emitted by --json output.
type conversion struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// NewConvertCommand creates the "convert" cobra command.
func NewConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Convert values between two catalog units",
		Long: `Convert one or more numeric values from one catalog unit to another.

Examples:
  unitconv convert --catalog si.yaml --from kilometer --to meter 2 3.5
  unitconv convert --catalog si.yaml --from celsius --to fahrenheit --json 100`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "", "Name of the input unit (required)")
	cmd.Flags().StringVar(&flags.to, "to", "", "Name of the output unit (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, flags *convertFlags, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}

	conv, err := sys.Converter(flags.from, flags.to)
	if err != nil {
		return err
	}

	results := make([]conversion, 0, len(args))

	for _, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", arg)
		}

		out := conv.Convert(value)
		slog.Debug("converted value",
			"from", flags.from, "to", flags.to, "input", value, "output", out)

		results = append(results, conversion{
			From:   flags.from,
			To:     flags.to,
			Input:  value,
			Output: out,
		})
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%g %s = %g %s\n", r.Input, r.From, r.Output, r.To)
	}

	return nil
}
