package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List the puzzles gridpaths can solve",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caser := cases.Title(language.English, cases.NoLower)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, p := range puzzles {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.name, caser.String(p.title), p.about)
			}
			return w.Flush()
		},
	}
}
