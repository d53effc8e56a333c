package domain

// Status is the derived state of a game session. It is never stored; a
// session computes it from its guess sets and secret word.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// Terminal reports whether the session accepts no further guesses.
func (s Status) Terminal() bool { return s != InProgress }

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Outcome classifies an accepted guess.
type Outcome int

const (
	Hit Outcome = iota + 1
	Miss
)

func (o Outcome) String() string {
	if o == Hit {
		return "hit"
	}
	return "miss"
}
