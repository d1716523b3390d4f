package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Skufu/symptomcheck/internal/analyzer"
)

type matchOutput struct {
	Result           *analyzer.MatchResult `json:"result"`
	EmergencyWarning *string               `json:"emergencyWarning"`
}

func newMatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <symptom>...",
		Short: "Report the best-supported condition for the given symptoms",
		Example: `  symptomcheck match fever cough "sore throat"
  symptomcheck match --format json "severe headache" nausea`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			engine := analyzer.New(cat, analyzer.WithProbabilityFloor(opts.Floor))

			var out matchOutput
			if result, ok := engine.Match(args); ok {
				out.Result = &result
			}
			if warning, ok := analyzer.DefaultDetector().Check(args); ok {
				out.EmergencyWarning = &warning
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printMatch(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func printMatch(w io.Writer, out matchOutput) {
	if out.EmergencyWarning != nil {
		fmt.Fprintf(w, "!! %s\n\n", *out.EmergencyWarning)
	}
	if out.Result == nil {
		fmt.Fprintln(w, "No symptoms given.")
		return
	}

	r := out.Result
	fmt.Fprintf(w, "%s (%d%%)\n", r.Name, r.Probability)
	if !r.Fallback {
		fmt.Fprintf(w, "Matched %d of %d symptoms\n", r.MatchingSymptomCount, len(r.Symptoms))
	}
	fmt.Fprintf(w, "Severity: %s  Category: %s\n", r.Severity, r.Category)
	fmt.Fprintf(w, "Consult: %s\n", r.DoctorType)
	fmt.Fprintf(w, "\n%s\n", r.Description)
	printList(w, "Causes", r.Causes)
	printList(w, "Prevention", r.Prevention)
	printList(w, "Foods to eat", r.FoodsToEat)
	printList(w, "Foods to avoid", r.FoodsToAvoid)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
