package game

import (
	"slices"
	"strings"
	"unicode"

	"hangman/internal/domain"
)

// DefaultMaxWrong is the attempt budget: wrong guesses tolerated before
// the session is lost.
const DefaultMaxWrong = 6

// Session is one round of hangman. It is created with a resolved secret
// word and mutated only through Guess; a new round means a new Session.
// A Session is owned by a single interaction and is not safe for
// concurrent use.
type Session struct {
	secret   string
	correct  map[rune]bool
	wrong    []rune // guess order, shown to the player in this order
	maxWrong int

	// revealed is display-only: set on loss so Masked shows the full
	// word. The correct set is never back-filled, keeping the win
	// predicate unambiguous.
	revealed bool
}

// New returns a fresh session for secret with the given attempt budget
// (DefaultMaxWrong if budget is not positive). Non-letter characters in
// secret are displayed literally, cannot be guessed and do not count
// toward the win.
func New(secret string, maxWrong int) *Session {
	if maxWrong <= 0 {
		maxWrong = DefaultMaxWrong
	}
	return &Session{
		secret:   strings.ToUpper(secret),
		correct:  make(map[rune]bool),
		maxWrong: maxWrong,
	}
}

// Guess submits a single letter, case-insensitive. Rejected guesses (bad
// input, duplicates, guesses after the session ended) leave the session
// untouched.
func (s *Session) Guess(input string) (domain.Outcome, error) {
	runes := []rune(strings.TrimSpace(input))
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return 0, domain.ErrInvalidGuess
	}
	letter := unicode.ToUpper(runes[0])

	if s.correct[letter] || slices.Contains(s.wrong, letter) {
		return 0, domain.ErrDuplicateGuess
	}
	if s.Status().Terminal() {
		return 0, domain.ErrSessionOver
	}

	if strings.ContainsRune(s.secret, letter) {
		s.correct[letter] = true
		return domain.Hit, nil
	}

	s.wrong = append(s.wrong, letter)
	if len(s.wrong) >= s.maxWrong {
		s.revealed = true
	}
	return domain.Miss, nil
}

// Status derives the session state from the guess sets and the secret.
// A hit can only produce Won, a miss can only produce Lost; one guess
// never triggers both.
func (s *Session) Status() domain.Status {
	if s.won() {
		return domain.Won
	}
	if len(s.wrong) >= s.maxWrong {
		return domain.Lost
	}
	return domain.InProgress
}

func (s *Session) won() bool {
	for _, r := range s.secret {
		if unicode.IsLetter(r) && !s.correct[r] {
			return false
		}
	}
	return true
}

// Masked returns the secret with unguessed letters replaced by '_'.
// Non-letter characters always pass through unchanged; after a loss the
// full word is shown.
func (s *Session) Masked() string {
	var b strings.Builder
	for _, r := range s.secret {
		switch {
		case !unicode.IsLetter(r), s.revealed, s.correct[r]:
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Remaining returns how many wrong guesses are still tolerated, never
// negative.
func (s *Session) Remaining() int {
	if n := s.maxWrong - len(s.wrong); n > 0 {
		return n
	}
	return 0
}

// Wrong returns the missed letters in the order they were guessed.
func (s *Session) Wrong() []string {
	out := make([]string, len(s.wrong))
	for i, r := range s.wrong {
		out[i] = string(r)
	}
	return out
}

// Word returns the secret word.
func (s *Session) Word() string { return s.secret }
