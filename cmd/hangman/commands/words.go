package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hangman/internal/services/setup"
)

func wordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the stored word list",
	}

	add := &cobra.Command{
		Use:   "add [word]...",
		Short: "Validate and append words to the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				word, err := setup.Validate(raw)
				if err != nil {
					return fmt.Errorf("%q: %w", raw, err)
				}
				appCtx.Words.SaveCustom(word)
				fmt.Fprintln(cmd.OutOrStdout(), "added", word)
			}
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the usable word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, w := range appCtx.Words.Candidates() {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
