// Package cli implements lcactl, an offline calculator over YAML inventory files.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
)

// Output formats of calc.
const (
	OutputTable = "table"
	OutputCSV   = "csv"
	OutputJSON  = "json"
)

// NewRootCmd creates and returns the root command for lcactl.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lcactl",
		Short:         "Life-cycle assessment of WCO biofuel from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDefaultsCmd(), newCalcCmd(), newAnalyzeCmd())
	return rootCmd
}

// readInventory loads path over the default inventory; "-" reads stdin.
func readInventory(cmd *cobra.Command, path string) (model.Inventory, error) {
	if path == "" {
		return model.Inventory{}, fmt.Errorf("inventory file is required (-f)")
	}
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return model.Inventory{}, err
		}
		defer f.Close()
		r = f
	}
	return lca.LoadInventory(r)
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default inventory as YAML",
		Long:  `Print the default inventory and emission factors. The output is a valid input for calc and analyze.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return lca.MarshalInventory(cmd.OutOrStdout(), lca.DefaultInventory())
		},
	}
}

type calcOptions struct {
	file   string
	output string
}

func newCalcCmd() *cobra.Command {
	opts := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute stage emissions of an inventory",
		Example: `  # Start from the defaults and edit
  lcactl defaults > inventory.yaml
  lcactl calc -f inventory.yaml

  # Write the CSV report
  lcactl calc -f inventory.yaml -o csv > lca_report.csv

  # Read from stdin
  cat inventory.yaml | lcactl calc -f - -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Inventory YAML file, - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", OutputTable, "Output format (table, csv, json)")

	return cmd
}

func runCalc(cmd *cobra.Command, opts *calcOptions) error {
	inv, err := readInventory(cmd, opts.file)
	if err != nil {
		return err
	}
	res, err := lca.Compute(inv)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.output {
	case OutputCSV:
		return lca.WriteCSV(out, res)
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Result  lca.Result   `json:"result"`
			Metrics []lca.Metric `json:"metrics"`
		}{res, res.Metrics()})
	case OutputTable:
		_, err := fmt.Fprintln(out, renderMetrics(res))
		return err
	default:
		return fmt.Errorf("unknown output format %q (table, csv, json)", opts.output)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Interpret stage contributions and list reduction opportunities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := readInventory(cmd, file)
			if err != nil {
				return err
			}
			res, err := lca.Compute(inv)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderAnalysis(lca.Analyze(res)))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Inventory YAML file, - for stdin")

	return cmd
}
