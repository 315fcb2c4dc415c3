package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-reviser/internal/draft"
	"resume-reviser/internal/ui"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Extract text from a PDF or DOCX resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var parseSaveDraft bool

func init() {
	parseCmd.Flags().BoolVar(&parseSaveDraft, "save-draft", false, "store the extracted text as the cached resume draft")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := readDocument(cmd.Context(), newClient(cfg), args[0])
	if err != nil {
		ui.Show(cmd.ErrOrStderr(), ui.Error, "Error parsing file: %v", err)
		return err
	}

	if parseSaveDraft {
		store, err := draft.Open(cmd.Context(), cfg.DraftDB)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(cmd.Context(), text); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	ui.Show(cmd.ErrOrStderr(), ui.Success, "Resume text extracted (%d characters).", len([]rune(text)))
	return nil
}
