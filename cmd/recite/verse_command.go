package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"urecite/recite"
	"urecite/verseparser"
)

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func newVerseCommand(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verse <book chapter:verse>",
		Short: "Print the canonical text of a verse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.loadCorpus()
			if err != nil {
				return err
			}

			ref := joinArgs(args)
			bookRaw, chapter, verse, ok := verseparser.SplitKey(ref)
			if !ok {
				return fmt.Errorf("expected a reference like \"John 3:16\", got %q", ref)
			}
			book, ok := recite.ResolveBook(bookRaw, c.Books())
			if !ok {
				return fmt.Errorf("unknown book %q", bookRaw)
			}

			key := recite.VerseKey{Book: book, Chapter: chapter, Verse: verse}
			text, ok := c.Verse(key)
			if !ok {
				return fmt.Errorf("verse %q not found", key.String())
			}

			if ctx.jsonOutput {
				return writeJSON(cmd, map[string]any{"reference": key.String(), "verse": key, "text": text})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", key, text)
			return nil
		},
	}
}
