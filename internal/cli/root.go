package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Skufu/symptomcheck/internal/analyzer"
	"github.com/Skufu/symptomcheck/internal/catalog"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format      string // "json" | "text"
	CatalogPath string
	Floor       int
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "symptomcheck",
		Short: "Rank known conditions against reported symptoms",
		Long: `symptomcheck matches free-text symptoms against a static catalog of
conditions and reports the best-supported one, with an independent
emergency warning. It is not a diagnostic tool.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Floor < 0 || opts.Floor > analyzer.MaxProbability {
				return fmt.Errorf("invalid floor %d: must be between 0 and %d", opts.Floor, analyzer.MaxProbability)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "YAML catalog file (default: built-in catalog)")
	cmd.PersistentFlags().IntVar(&opts.Floor, "floor", analyzer.DefaultProbabilityFloor, "probability below which the generic result is returned")

	cmd.AddCommand(newMatchCommand(opts))
	cmd.AddCommand(newEmergencyCommand(opts))
	cmd.AddCommand(newConditionsCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) loadCatalog() (*catalog.Catalog, error) {
	if o.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(o.CatalogPath)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
