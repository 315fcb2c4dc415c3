package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-reviser/internal/draft"
	"resume-reviser/internal/ui"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage the cached resume draft",
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cached resume draft",
	RunE:  runDraftShow,
}

var draftSaveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Replace the cached draft with a file or stdin",
	Long:  "Replace the cached draft. Input is streamed line by line and written at most once per quiet second, plus once at the end.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDraftSave,
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the cached resume draft",
	RunE:  runDraftClear,
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.AddCommand(draftShowCmd, draftSaveCmd, draftClearCmd)
}

func openDraft(cmd *cobra.Command) (*draft.SQLiteStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return draft.Open(cmd.Context(), cfg.DraftDB)
}

func runDraftShow(cmd *cobra.Command, _ []string) error {
	store, err := openDraft(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	text, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}
	if text == "" {
		ui.Show(cmd.ErrOrStderr(), ui.Info, "No cached draft.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func runDraftSave(cmd *cobra.Command, args []string) error {
	store, err := openDraft(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	debouncer := draft.NewDebouncer(store, draft.DefaultInterval)
	var text strings.Builder
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		if text.Len() > 0 {
			text.WriteString("\n")
		}
		text.WriteString(scanner.Text())
		debouncer.Update(text.String())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := debouncer.Close(cmd.Context()); err != nil {
		return err
	}

	ui.Show(cmd.ErrOrStderr(), ui.Success, "Draft saved (%d characters).", len([]rune(text.String())))
	return nil
}

func runDraftClear(cmd *cobra.Command, _ []string) error {
	store, err := openDraft(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return err
	}
	ui.Show(cmd.ErrOrStderr(), ui.Success, "Draft cleared.")
	return nil
}
