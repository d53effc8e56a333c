package app_test

import (
	"os"
	"testing"

	"hangman/internal/app"
)

func TestFromEnv_Defaults(t *testing.T) {
	// t.Setenv registers cleanup; unset afterwards to exercise defaults.
	t.Setenv("HANGMAN_WORDS_FILE", "")
	t.Setenv("HANGMAN_MAX_WRONG", "")
	os.Unsetenv("HANGMAN_WORDS_FILE")
	os.Unsetenv("HANGMAN_MAX_WRONG")

	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.WordsFile != "words.txt" {
		t.Fatalf("words file = %q, want words.txt", cfg.WordsFile)
	}
	if cfg.MaxWrong != 6 {
		t.Fatalf("max wrong = %d, want 6", cfg.MaxWrong)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HANGMAN_WORDS_FILE", "/tmp/custom.txt")
	t.Setenv("HANGMAN_MAX_WRONG", "3")

	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.WordsFile != "/tmp/custom.txt" {
		t.Fatalf("words file = %q", cfg.WordsFile)
	}
	if cfg.MaxWrong != 3 {
		t.Fatalf("max wrong = %d", cfg.MaxWrong)
	}
}
