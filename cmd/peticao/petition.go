package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/peticao/internal/casefile"
	"github.com/mmynk/peticao/internal/models"
	"github.com/mmynk/peticao/internal/petition"
)

func newPetitionCmd() *cobra.Command {
	var (
		input     string
		bundleDir string
		check     bool
	)

	cmd := &cobra.Command{
		Use:   "petition",
		Short: "Render the petition of a case",
		Long: `Reads a case as JSON and prints the petition text. With --bundle the
filing package is written to the given directory instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var c models.Case
			if err := readInput(cmd, input, &c); err != nil {
				return err
			}
			a := casefile.New(&c)
			now := time.Now()

			if check {
				reqs := petition.CheckRequirements(a.Case())
				for _, r := range reqs {
					fmt.Fprintln(cmd.OutOrStdout(), "- "+r)
				}
				if len(reqs) > 0 {
					return fmt.Errorf("%d pending requirements", len(reqs))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Petição pronta para protocolo.")
				return nil
			}

			if bundleDir != "" {
				content, err := petition.Bundle(a.Case(), now)
				if err != nil {
					return err
				}
				path := filepath.Join(bundleDir, petition.BundleName(a.Case(), now))
				if err := os.WriteFile(path, content, 0o644); err != nil {
					return fmt.Errorf("failed to write bundle: %w", err)
				}
				slog.Info("Bundle written", "path", path, "size", len(content))
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), petition.Render(a.Case(), now))
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "file", "f", "", "case file (default: stdin)")
	cmd.Flags().StringVar(&bundleDir, "bundle", "", "write the filing bundle to this directory")
	cmd.Flags().BoolVar(&check, "check", false, "only list what blocks filing")
	return cmd
}
