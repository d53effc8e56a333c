package words

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	"hangman/internal/domain"
)

// Service selects candidate words and records custom ones using a backing
// store.
type Service struct {
	store domain.WordStore
	rand  domain.IndexSource
	log   *slog.Logger
}

// New returns a word service backed by the given store. A nil src falls
// back to the process-global RNG; a nil log falls back to slog.Default.
func New(store domain.WordStore, src domain.IndexSource, log *slog.Logger) *Service {
	if src == nil {
		src = globalSource{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, rand: src, log: log}
}

// Candidates returns the usable word list: stored lines that are letters
// only after trimming, uppercased, in store order. An unreadable store is
// treated as absent; an empty result falls back to the defaults.
func (s *Service) Candidates() []string {
	lines, err := s.store.Read()
	if err != nil {
		s.log.Warn("reading word store", "err", err)
	}

	var out []string
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" || !lettersOnly(w) {
			continue
		}
		out = append(out, strings.ToUpper(w))
	}
	if len(out) == 0 {
		return append([]string(nil), defaultWords...)
	}
	return out
}

// PickRandom returns one candidate chosen uniformly at random.
func (s *Service) PickRandom() string {
	c := s.Candidates()
	return c[s.rand.IntN(len(c))]
}

// SaveCustom appends an already-validated word to the store, uppercased.
// A write failure is logged and swallowed so the word stays usable for
// the current session.
func (s *Service) SaveCustom(word string) {
	if err := s.store.Append(strings.ToUpper(word)); err != nil {
		s.log.Warn("saving custom word", "err", err)
	}
}

func lettersOnly(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// globalSource draws from the process-global math/rand/v2 generator,
// which is seeded unpredictably per process.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Compile-time assertion that Service implements domain.WordService.
var _ domain.WordService = (*Service)(nil)
