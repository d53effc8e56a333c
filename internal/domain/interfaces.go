package domain

// WordStore persists the custom word list.
type WordStore interface {
	// Read returns the stored lines in file order. A missing store is not
	// an error and yields (nil, nil).
	Read() ([]string, error)

	// Append adds one word as a new line, creating the store if absent.
	// Existing lines are never rewritten or truncated.
	Append(word string) error
}

// IndexSource yields a uniform index in [0, n). It exists so tests can
// substitute a deterministic source for the process-global RNG.
type IndexSource interface {
	IntN(n int) int
}

// WordService selects candidate words and records custom ones.
type WordService interface {
	// Candidates returns the usable word list, uppercased, in store order,
	// falling back to the built-in defaults when the store is empty,
	// missing or fully invalid.
	Candidates() []string

	// PickRandom returns one candidate chosen uniformly at random.
	PickRandom() string

	// SaveCustom appends an already-validated word to the store. Write
	// failures are logged and swallowed; the word stays usable in memory.
	SaveCustom(word string)
}

// SetupService resolves and gates the word a new session starts with.
type SetupService interface {
	// Choose returns a random candidate when raw is empty; otherwise raw
	// must validate as letters-only and is persisted before being
	// returned uppercased.
	Choose(raw string) (string, error)
}
