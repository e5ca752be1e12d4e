package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/peticao/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	var (
		category string
		events   []string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the recognized claim types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			claims := catalog.All()
			switch {
			case len(events) > 0:
				claims = claims[:0]
				for _, id := range catalog.SuggestClaims(events) {
					if c, ok := catalog.Resolve(id); ok {
						claims = append(claims, c)
					}
				}
			case category != "":
				claims = catalog.ByCategory(category)
			}

			if asJSON {
				return writeJSON(cmd, claims)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORIA\tTÍTULO\tFUNDAMENTO")
			for _, c := range claims {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Category, c.Title, c.Article)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only claims of this category")
	cmd.Flags().StringSliceVar(&events, "events", nil, "suggest claims for these fact events")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
