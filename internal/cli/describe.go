package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// description is one described unit, as emitted by --json output.
type description struct {
	Name          string `json:"name"`
	Rendering     string `json:"rendering"`
	Kind          string `json:"kind"`
	Dimensionless bool   `json:"dimensionless"`
	Offset        bool   `json:"offset"`
}

// NewDescribeCommand creates the "describe" cobra command.
func NewDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [NAME...]",
		Short: "Describe catalog units",
		Long: `Describe the named catalog units, or every unit when no names are
given: rendered form, kind, and whether the unit is dimensionless or
offset.

Examples:
  unitconv describe --catalog si.yaml
  unitconv describe --catalog si.yaml celsius --json`,

		RunE: runDescribe,
	}

	return cmd
}

func runDescribe(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = sys.Names()
	}

	descriptions := make([]description, 0, len(names))

	for _, name := range names {
		u, ok := sys.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown unit %q", name)
		}

		descriptions = append(descriptions, description{
			Name:          name,
			Rendering:     u.String(),
			Kind:          u.Kind().String(),
			Dimensionless: u.IsDimensionless(),
			Offset:        u.IsOffset(),
		})
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(descriptions)
	}

	for _, d := range descriptions {
		rendering := d.Rendering
		if rendering == "" {
			rendering = "1"
		}

		line := fmt.Sprintf("%s: %s (%s", d.Name, rendering, d.Kind)
		if d.Dimensionless {
			line += ", dimensionless"
		}
		if d.Offset {
			line += ", offset"
		}
		line += ")"

		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	return nil
}
