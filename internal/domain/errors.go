package domain

import "errors"

var (
	// ErrInvalidWord is returned when a proposed secret word is empty or
	// contains anything outside A-Z/a-z after trimming.
	ErrInvalidWord = errors.New("word must use letters A-Z only")

	// ErrInvalidGuess is returned when a guess is not exactly one letter.
	ErrInvalidGuess = errors.New("guess must be a single letter")

	// ErrDuplicateGuess is returned when the letter was already tried,
	// correctly or not.
	ErrDuplicateGuess = errors.New("letter already guessed")

	// ErrSessionOver is returned when a guess arrives after the session
	// reached a terminal status.
	ErrSessionOver = errors.New("session is over")
)
