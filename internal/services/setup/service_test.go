package setup_test

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"hangman/internal/domain"
	"hangman/internal/services/setup"
	"hangman/internal/services/words"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		err  error
	}{
		{raw: "", err: domain.ErrInvalidWord},
		{raw: " ", err: domain.ErrInvalidWord},
		{raw: "abc-123", err: domain.ErrInvalidWord},
		{raw: "two words", err: domain.ErrInvalidWord},
		{raw: "hangman", want: "HANGMAN"},
		{raw: "  go  ", want: "GO"},
		{raw: "MiXeD", want: "MIXED"},
	}
	for _, tc := range cases {
		got, err := setup.Validate(tc.raw)
		if !errors.Is(err, tc.err) {
			t.Errorf("Validate(%q): err = %v, want %v", tc.raw, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("Validate(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

// fakeStore is an in-memory domain.WordStore.
type fakeStore struct {
	lines    []string
	appended []string
}

func (f *fakeStore) Read() ([]string, error) { return f.lines, nil }

func (f *fakeStore) Append(word string) error {
	f.appended = append(f.appended, word)
	f.lines = append(f.lines, word)
	return nil
}

type indexZero struct{}

func (indexZero) IntN(int) int { return 0 }

func newService(fs *fakeStore) *setup.Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return setup.New(words.New(fs, indexZero{}, log))
}

func TestChoose_EmptyPicksRandomWithoutPersisting(t *testing.T) {
	fs := &fakeStore{lines: []string{"cat", "dog"}}
	svc := newService(fs)

	got, err := svc.Choose("")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if got != "CAT" {
		t.Fatalf("choose = %q, want CAT under stubbed source", got)
	}
	if len(fs.appended) != 0 {
		t.Fatalf("random pick must not persist, appended %v", fs.appended)
	}
}

func TestChoose_CustomWordValidatedAndPersisted(t *testing.T) {
	fs := &fakeStore{}
	svc := newService(fs)

	got, err := svc.Choose("gopher")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if got != "GOPHER" {
		t.Fatalf("choose = %q, want GOPHER", got)
	}
	if want := []string{"GOPHER"}; !slices.Equal(fs.appended, want) {
		t.Fatalf("appended = %v, want %v", fs.appended, want)
	}
}

func TestChoose_InvalidWordNeverReachesStore(t *testing.T) {
	fs := &fakeStore{}
	svc := newService(fs)

	if _, err := svc.Choose("abc-123"); !errors.Is(err, domain.ErrInvalidWord) {
		t.Fatalf("want ErrInvalidWord, got %v", err)
	}
	if len(fs.appended) != 0 {
		t.Fatalf("invalid word persisted: %v", fs.appended)
	}
}
