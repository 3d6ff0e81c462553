package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"matcompat/internal/api"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var concurrency int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Score several files and rank them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			scores, err := api.AnalyzeFiles(cmd.Context(), api.AnalyzeFilesRequest{
				Config:      cfg,
				Paths:       args,
				Concurrency: concurrency,
				Logger:      logger,
			})
			if err != nil {
				return err
			}

			if useJSON(cmd, ctx, jsonOutput) {
				return writeJSON(cmd, scores)
			}

			rows := make([][]string, 0, len(scores))
			for _, score := range scores {
				rows = append(rows, []string{
					score.Path,
					fmt.Sprintf("%.2f", score.Result.Score),
					strconv.Itoa(score.Result.MatchedTokens),
					strconv.Itoa(score.Result.SignificantTokens),
					fmt.Sprintf("%.4f", score.Result.MathDensity),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"FILE", "SCORE", "MATCHED", "SIGNIFICANT", "DENSITY"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum files scored at once (0 uses the default)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the results as JSON")
	return cmd
}
