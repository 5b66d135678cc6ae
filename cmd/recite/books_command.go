package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"urecite/corpus"
	"urecite/recite"
)

func newBooksCommand(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the corpus books in canonical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.loadCorpus()
			if err != nil {
				return err
			}
			books := c.Books()
			old, nt := corpus.Testaments(books)

			if ctx.jsonOutput {
				return writeJSON(cmd, map[string]any{
					"books":         books,
					"old_testament": old,
					"new_testament": nt,
					"checksum":      c.Checksum(),
				})
			}

			rows := make([][]string, 0, len(books))
			for i, b := range books {
				testament := "New"
				if i < len(old) {
					testament = "Old"
				}
				rows = append(rows, []string{fmt.Sprint(i + 1), b, testament})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "Book", "Testament"}, rows, []columnAlignment{alignRight}))
			fmt.Fprintf(cmd.OutOrStdout(), "%d books, %d verses\n", len(books), c.Len())
			return nil
		},
	}
}

func newSuggestCommand(ctx *cliContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <book name>",
		Short: "Rank book titles for a misheard or partial name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.loadCorpus()
			if err != nil {
				return err
			}
			query := joinArgs(args)
			suggestions := recite.SuggestBooks(query, c.Books(), limit)

			if ctx.jsonOutput {
				return writeJSON(cmd, suggestions)
			}
			rows := make([][]string, 0, len(suggestions))
			for _, s := range suggestions {
				phonetic := ""
				if s.Phonetic {
					phonetic = "yes"
				}
				rows = append(rows, []string{s.Book, fmt.Sprintf("%.3f", s.Score), phonetic})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Book", "Score", "Sounds alike"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum suggestions")
	return cmd
}
