package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"urecite/corpus"
)

func newLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [file.txt ...]",
		Short: "Report verse lines that do not match 'N. <Reference> — <Text>'",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				var err error
				files, err = filepath.Glob("./verses/*.txt")
				if err != nil {
					return fmt.Errorf("cannot read ./verses: %w", err)
				}
				if len(files) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no .txt verse files found in ./verses")
					return nil
				}
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, f := range files {
				bad, err := lintFile(f)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", f, err)
					failed++
					continue
				}
				for _, n := range bad {
					fmt.Fprintf(out, "%s:%d: does not match 'N. <Reference> — <Text>'\n", f, n)
				}
				if len(bad) == 0 {
					fmt.Fprintf(out, "%s: OK\n", f)
				} else {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed lint", failed, len(files))
			}
			return nil
		},
	}
}

func lintFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open error: %w", err)
	}
	defer f.Close()

	_, _, bad, err := corpus.ScanTXT(f)
	return bad, err
}
