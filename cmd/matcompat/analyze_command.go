package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"matcompat/internal/api"
	"matcompat/internal/scoring"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Score a single text against the vocabulary",
		Long: `Score a Spanish text for mathematical content on a 0-100 scale.

The text comes from the positional argument, from --file, or from stdin
when neither is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			text, err := readAnalyzeInput(cmd, args, filePath)
			if err != nil {
				return err
			}

			result, err := api.AnalyzeText(cmd.Context(), api.AnalyzeTextRequest{
				Config: cfg,
				Text:   text,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			if useJSON(cmd, ctx, jsonOutput) {
				return writeJSON(cmd, result)
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read the text from a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	return cmd
}

func readAnalyzeInput(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(filePath) != "" {
		return "", fmt.Errorf("pass the text as an argument or via --file, not both")
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if strings.TrimSpace(filePath) != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filePath, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printResult(out io.Writer, result *scoring.Result) {
	fmt.Fprintf(out, "Score:              %.2f / 100\n", result.Score)
	fmt.Fprintf(out, "Average weight:     %.4f\n", result.AvgWeight)
	fmt.Fprintf(out, "Math density:       %.4f\n", result.MathDensity)
	fmt.Fprintf(out, "Tokens:             %d total, %d significant, %d matched\n",
		result.TotalTokens, result.SignificantTokens, result.MatchedTokens)

	if len(result.Matches) == 0 {
		fmt.Fprintln(out, "No vocabulary matches")
		return
	}

	rows := make([][]string, 0, len(result.Matches))
	for _, match := range result.Matches {
		rows = append(rows, []string{
			match.Term,
			strconv.Itoa(match.Count),
			formatFloat(match.Weight),
			fmt.Sprintf("%.2f", match.Contribution),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"TERM", "COUNT", "WEIGHT", "CONTRIBUTION"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	))
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
