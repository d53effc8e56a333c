package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"hangman/internal/app"
)

var (
	wordsFile string
	maxWrong  int

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "hangman",
		Short: "Word-guessing game for one or two local players",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if wordsFile != "" {
				cfg.WordsFile = wordsFile
			}
			if maxWrong > 0 {
				cfg.MaxWrong = maxWrong
			}

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			appCtx = app.NewWire(cfg, log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&wordsFile, "words", "", "word list file (default words.txt)")
	root.PersistentFlags().IntVar(&maxWrong, "max-wrong", 0, "wrong guesses allowed before losing (default 6)")

	root.AddCommand(playCmd(), duelCmd(), wordsCmd())
	return root.Execute()
}
