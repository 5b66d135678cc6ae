package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"urecite/config"
	"urecite/corpus"
	"urecite/database"
	"urecite/services"
)

func newImportCommand(ctx *cliContext) *cobra.Command {
	var translation string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Load a corpus file into the verses table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.corpusPath
			if len(args) == 1 {
				path = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if translation == "" {
				translation = cfg.Translation
			}

			c, err := corpus.Open(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Found %d books, %d verses\n", len(c.Books()), c.Len())

			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			res, err := services.ImportCorpus(cmd.Context(), db, c, translation, path)
			if err != nil {
				return err
			}

			if ctx.jsonOutput {
				return writeJSON(cmd, res)
			}
			if res.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s already imported (%s)\n", path, res.Checksum)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d %s verses (%s)\n", res.Inserted, translation, res.Checksum)
			return nil
		},
	}

	cmd.Flags().StringVar(&translation, "translation", "", "Translation tag (default $TRANSLATION or KJV)")
	return cmd
}
