package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sift/internal/app"
)

func (c *CLI) newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the test classes affected by the latest changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			estimate, _ := cmd.Flags().GetBool("estimate")
			unreached, _ := cmd.Flags().GetBool("unreached")

			selection, err := c.app.Select(cmd.Context(), app.SelectOptions{
				Estimate:  estimate,
				Unreached: unreached,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, test := range selection.Affected {
				fmt.Fprintln(out, test)
			}

			if selection.Estimate != nil {
				fmt.Fprintln(out)
				for _, test := range selection.Estimate.Tests {
					fmt.Fprintf(out, "%s mean=%.3fs last-estimate=%.3fs\n",
						test.Name, test.Mean, test.LastEstimate)
				}
				fmt.Fprintf(out, "total estimated time: %.3fs\n", selection.Estimate.Total)
			}

			if unreached {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "unreached classes: %d\n", len(selection.Unreached))
				for _, class := range selection.Unreached {
					fmt.Fprintln(out, class)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("estimate", "e", false, "Print the estimated run time of the selected tests")
	cmd.Flags().Bool("unreached", false, "Print classpath classes never targeted by any dependency edge")
	return cmd
}
