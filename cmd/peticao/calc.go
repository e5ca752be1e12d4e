package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/peticao/internal/calculator"
	"github.com/mmynk/peticao/internal/models"
	"github.com/mmynk/peticao/internal/petition"
)

// calcInput is the document read by the calc command.
type calcInput struct {
	Facts     models.Facts            `json:"facts"`
	Claims    []models.ClaimSelection `json:"claims"`
	Overrides calculator.Overrides    `json:"overrides,omitempty"`
}

func newCalcCmd() *cobra.Command {
	var (
		input string
		text  bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate the value of each claim",
		Long: `Reads {"facts": ..., "claims": [...], "overrides": {...}} as JSON and
prints the calculation summary. Overrides are keyed by item ID (calc_0, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in calcInput
			if err := readInput(cmd, input, &in); err != nil {
				return err
			}

			claims := make([]calculator.Claim, len(in.Claims))
			for i, c := range in.Claims {
				claims[i] = c.Calculation()
			}
			sum := calculator.Compute(in.Facts.Calculation(), claims, in.Overrides)
			slog.Debug("Calculated", "items", len(sum.Items), "total", sum.TotalOverall)

			if text {
				_, err := fmt.Fprint(cmd.OutOrStdout(), petition.CalculationSummary(sum))
				return err
			}
			return writeJSON(cmd, sum)
		},
	}

	cmd.Flags().StringVarP(&input, "file", "f", "", "input file (default: stdin)")
	cmd.Flags().BoolVar(&text, "text", false, "print a plain-text summary instead of JSON")
	return cmd
}
