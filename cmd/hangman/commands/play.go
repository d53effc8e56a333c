package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hangman/internal/game"
	"hangman/internal/tui"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start a single-player round with a random word",
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := appCtx.Setup.Choose("")
			if err != nil {
				return err
			}
			return runGame(word)
		},
	}
}

// runGame owns one interactive session from construction to quit.
func runGame(word string) error {
	sess := game.New(word, appCtx.Cfg.MaxWrong)
	p := tea.NewProgram(
		tui.NewModel(sess, appCtx.Setup, appCtx.Cfg.MaxWrong),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
