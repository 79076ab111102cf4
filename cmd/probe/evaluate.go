package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newEvaluateCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "evaluate <file.json|->",
		Short: "Print the flags and insights for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := root.analyse(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Company  string `json:"company"`
					Flags    any    `json:"flags"`
					Cards    any    `json:"cards"`
					Insights any    `json:"insights"`
				}{view.Company, view.Analysis.Flags, view.Cards, view.Insights})
			}

			fmt.Fprintf(out, "Company: %s\n\n", view.Company)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FLAG\tVALUE\tCOLOR")
			for _, c := range view.Cards {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Flag, c.Value, c.Color)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nDetailed Insights")
			for _, s := range view.Insights {
				fmt.Fprintf(out, "  • %s\n", s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
