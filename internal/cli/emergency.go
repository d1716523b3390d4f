package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Skufu/symptomcheck/internal/analyzer"
)

func newEmergencyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "emergency <symptom>...",
		Short: "Check symptoms for emergency indicators",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := analyzer.DefaultDetector()
			warning, flagged := d.Check(args)
			indicators := d.Indicators(args)

			if opts.Format == "json" {
				out := struct {
					Warning    *string  `json:"warning"`
					Indicators []string `json:"indicators"`
				}{Indicators: indicators}
				if flagged {
					out.Warning = &warning
				}
				if out.Indicators == nil {
					out.Indicators = []string{}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			if !flagged {
				fmt.Fprintln(cmd.OutOrStdout(), "No emergency indicators found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), warning)
			fmt.Fprintf(cmd.OutOrStdout(), "Indicators: %s\n", strings.Join(indicators, ", "))
			return nil
		},
	}
}
