package store

import (
	"bufio"
	"errors"
	"os"
	"sync"

	"hangman/internal/domain"
)

// WordFileStore keeps the word list in a plain text file, one word per
// line. The file is append-only from this program's perspective.
type WordFileStore struct {
	path string
	mu   sync.Mutex
}

// NewWordFileStore returns a WordFileStore backed by the file at path.
func NewWordFileStore(path string) *WordFileStore {
	return &WordFileStore{path: path}
}

// Read returns the stored lines in file order. The file is re-read on
// every call so words appended mid-session are visible; a missing file is
// not an error.
func (s *WordFileStore) Read() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Append writes word as a new line, creating the file if absent.
func (s *WordFileStore) Append(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(word + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Compile-time assertion that WordFileStore implements domain.WordStore.
var _ domain.WordStore = (*WordFileStore)(nil)
