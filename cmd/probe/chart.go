package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newChartCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "chart <file.json|->",
		Short: "Print the net revenue chart as points or a Plotly figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := root.analyse(cmd, args[0])
			if err != nil {
				return err
			}
			var v any
			switch format {
			case "points":
				v = view.Chart
			case "plotly":
				v = view.Chart.Figure()
			default:
				return fmt.Errorf("unknown format %q, want points or plotly", format)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
	cmd.Flags().StringVar(&format, "format", "points", "points or plotly")
	return cmd
}
