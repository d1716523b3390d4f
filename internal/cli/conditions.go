package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newConditionsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "conditions",
		Short: "List the conditions in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			records := cat.Records()
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), records)
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s %-18s %-9s %s\n",
					r.Name, r.Category, r.Severity, strings.Join(r.Symptoms, ", "))
			}
			return nil
		},
	}
}
