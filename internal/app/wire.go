package app

import (
	"log/slog"

	"hangman/internal/domain"
	setupsvc "hangman/internal/services/setup"
	wordsvc "hangman/internal/services/words"
	"hangman/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Cfg   Config
	Store domain.WordStore
	Words domain.WordService
	Setup domain.SetupService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *slog.Logger) *Wire {
	ws := store.NewWordFileStore(cfg.WordsFile)
	w := wordsvc.New(ws, nil, log)

	return &Wire{
		Cfg:   cfg,
		Store: ws,
		Words: w,
		Setup: setupsvc.New(w),
	}
}
