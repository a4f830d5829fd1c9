package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/output"
)

func newInspectCmd() *cobra.Command {
	var noCalcChain, noTheme, asXML bool
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the workbook metadata of an xlsx file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			includeCalcChain, includeTheme := !noCalcChain, !noTheme
			opts := sheetstyle.DefaultOptions()
			opts.IncludeCalcChain = &includeCalcChain
			opts.IncludeTheme = &includeTheme
			if verbose {
				opts.Logger = logger
			}

			report, err := sheetstyle.Inspect(args[0], opts)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			var data []byte
			if asXML {
				data, err = output.ToDocument(report.Workbook.ToWorkbook(), pretty)
			} else {
				data, err = output.ToJSON(report, pretty)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return write(data)
		},
	}
	cmd.Flags().BoolVar(&noCalcChain, "no-calc-chain", false, "Skip the calculation chain")
	cmd.Flags().BoolVar(&noTheme, "no-theme", false, "Skip the theme palette")
	cmd.Flags().BoolVar(&asXML, "xml", false, "Print the workbook part rebuilt from the model instead of JSON")
	return cmd
}
