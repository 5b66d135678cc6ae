package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"urecite/corpus"
	"urecite/recite"
)

type cliContext struct {
	corpusPath string
	threshold  float64
	jsonOutput bool
}

func (c *cliContext) loadCorpus() (*corpus.Corpus, error) {
	return corpus.Open(c.corpusPath)
}

func (c *cliContext) loadMatcher() (*recite.Matcher, *corpus.Corpus, error) {
	corp, err := c.loadCorpus()
	if err != nil {
		return nil, nil, err
	}
	return recite.NewMatcher(corp.Books(), corp, recite.WithThreshold(c.threshold)), corp, nil
}

func newRootCommand() *cobra.Command {
	ctx := &cliContext{}

	rootCmd := &cobra.Command{
		Use:           "recite",
		Short:         "Check spoken scripture recitations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if ctx.threshold < 0 || ctx.threshold > 100 {
				return fmt.Errorf("--threshold must be between 0 and 100, got %g", ctx.threshold)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	defaultCorpus := os.Getenv("CORPUS_PATH")
	if defaultCorpus == "" {
		defaultCorpus = "./verses/kjv.json"
	}
	rootCmd.PersistentFlags().StringVar(&ctx.corpusPath, "corpus", defaultCorpus, "Corpus file (.json, .txt, optionally .zst or .xz)")
	rootCmd.PersistentFlags().Float64Var(&ctx.threshold, "threshold", recite.DefaultThreshold, "Accuracy needed to count as matched (0-100)")
	rootCmd.PersistentFlags().BoolVar(&ctx.jsonOutput, "json", false, "Print JSON instead of tables")

	rootCmd.AddCommand(newMatchCommand(ctx))
	rootCmd.AddCommand(newBooksCommand(ctx))
	rootCmd.AddCommand(newVerseCommand(ctx))
	rootCmd.AddCommand(newSuggestCommand(ctx))
	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newLintCommand())

	return rootCmd
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
