package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMatchCommand(ctx *cliContext) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "match <transcript>",
		Short: "Grade a transcript such as \"John 3 16 for God so loved the world\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, _, err := ctx.loadMatcher()
			if err != nil {
				return err
			}

			transcript := strings.Join(args, " ")
			res := matcher.Match(transcript)

			if ctx.jsonOutput {
				if err := writeJSON(cmd, map[string]any{
					"result":  res,
					"message": res.Message(),
					"passed":  res.Passed(),
				}); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, res.Message())
				if len(res.Segments) > 0 {
					rows := make([][]string, 0, len(res.Segments))
					for i, seg := range res.Segments {
						mark := "✗"
						if seg.Correct {
							mark = "✓"
						}
						rows = append(rows, []string{fmt.Sprint(i + 1), seg.Word, mark})
					}
					fmt.Fprintln(out, renderTable([]string{"#", "Expected", "OK"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
				}
			}

			if strict && !res.Passed() {
				return fmt.Errorf("recitation did not match (%s)", res.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero unless the recitation matched")
	return cmd
}
