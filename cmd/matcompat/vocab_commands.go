package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"matcompat/internal/api"
	"matcompat/internal/vocab"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage the vocabulary database",
	}

	vocabCmd.AddCommand(newVocabListCommand(ctx))
	vocabCmd.AddCommand(newVocabAddCommand(ctx))
	vocabCmd.AddCommand(newVocabRemoveCommand(ctx))
	vocabCmd.AddCommand(newVocabImportCommand(ctx))

	return vocabCmd
}

func newVocabListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vocabulary terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			records, err := api.ListVocabulary(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if useJSON(cmd, ctx, jsonOutput) {
				if records == nil {
					records = []vocab.Record{}
				}
				return writeJSON(cmd, records)
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Vocabulary is empty")
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, []string{
					record.Term,
					formatFloat(record.Weight),
					strings.Join(record.Synonyms, ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"TERM", "WEIGHT", "SYNONYMS"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the list as JSON")
	return cmd
}

func newVocabAddCommand(ctx *commandContext) *cobra.Command {
	var synonyms []string

	cmd := &cobra.Command{
		Use:   "add <term> <weight>",
		Short: "Add or replace a vocabulary term",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse weight %q: %w", args[1], err)
			}

			record := vocab.Record{Term: args[0], Weight: weight, Synonyms: synonyms}
			if err := api.PutVocabularyTerm(cmd.Context(), cfg, record); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s (weight %s)\n", record.NormalizedTerm(), formatFloat(weight))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&synonyms, "synonyms", "s", nil, "Synonyms that resolve to this term")
	return cmd
}

func newVocabRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <term>",
		Short: "Remove a vocabulary term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			removed, err := api.RemoveVocabularyTerm(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("term %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newVocabImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the vocabulary from a TSV or CSV file",
		Long: `Replace the entire vocabulary from a delimited file.

Columns are term, weight, and an optional comma-separated synonym list.
Tab-separated by default; a .csv extension switches to commas. The file is
validated in full before anything is written, so a bad file leaves the
current vocabulary untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			summary, err := api.ImportVocabulary(cmd.Context(), api.ImportVocabularyRequest{
				Config: cfg,
				Path:   args[0],
				Logger: logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d terms from %s (replaced %d)\n",
				summary.Imported, summary.Path, summary.Previous)
			return nil
		},
	}
}
