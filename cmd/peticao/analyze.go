package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/peticao/internal/jurisprudence"
)

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var (
		court  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <claim>...",
		Short: "Show the jurisprudence outlook of claims",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if court == "" {
				court = root.cfg.Court
			}
			analyses := jurisprudence.AnalyzeAll(args, court)
			if asJSON {
				return writeJSON(cmd, analyses)
			}

			out := cmd.OutOrStdout()
			for _, a := range analyses {
				fmt.Fprintf(out, "%s: %d%% de procedência (%s)\n", a.Claim, a.Probability, a.ComparisonBase)
				fmt.Fprintf(out, "  %s\n", a.Summary)
				for _, r := range a.Recommendations {
					fmt.Fprintf(out, "  - %s\n", r)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&court, "court", "", "court to compare against (default: configured court)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
