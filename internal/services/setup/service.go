package setup

import (
	"regexp"
	"strings"

	"hangman/internal/domain"
)

var wordPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// Validate trims raw and returns it uppercased, or ErrInvalidWord if the
// trimmed string is empty or contains anything outside A-Z/a-z. Digits,
// punctuation, spaces and hyphens are all rejected here even though a
// session will display such characters literally when handed a secret
// word through other paths.
func Validate(raw string) (string, error) {
	w := strings.TrimSpace(raw)
	if !wordPattern.MatchString(w) {
		return "", domain.ErrInvalidWord
	}
	return strings.ToUpper(w), nil
}

// Service resolves the word a new session starts with.
type Service struct {
	words domain.WordService
}

// New returns a setup service drawing words from w.
func New(w domain.WordService) *Service { return &Service{words: w} }

// Choose picks a random candidate when raw is empty. Otherwise raw must
// validate; validated words are persisted for future games before being
// returned. Only validated words ever reach the store.
func (s *Service) Choose(raw string) (string, error) {
	if raw == "" {
		return s.words.PickRandom(), nil
	}
	word, err := Validate(raw)
	if err != nil {
		return "", err
	}
	s.words.SaveCustom(word)
	return word, nil
}

// Compile-time assertion that Service implements domain.SetupService.
var _ domain.SetupService = (*Service)(nil)
