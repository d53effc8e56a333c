package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hangman/internal/domain"
)

func duelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duel",
		Short: "Two players: one sets the word, the other guesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "Player 1, enter the secret word (letters only): ")

			sc := bufio.NewScanner(cmd.InOrStdin())
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return err
				}
				return domain.ErrInvalidWord
			}
			raw := strings.TrimSpace(sc.Text())
			if raw == "" {
				return domain.ErrInvalidWord
			}

			// Validates, persists for future games, then starts the round.
			word, err := appCtx.Setup.Choose(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Word saved. Hand over to player 2.")
			return runGame(word)
		},
	}
}
