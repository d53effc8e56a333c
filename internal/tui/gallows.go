package tui

// stages maps wrong-guess counts 0-6 to a gallows drawing. The figure
// grows one part per miss: head, body, left arm, right arm, left leg,
// right leg.
var stages = [7]string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// Stage returns the drawing for n wrong guesses, clamped to the final
// stage.
func Stage(n int) string {
	if n < 0 {
		n = 0
	}
	if n >= len(stages) {
		n = len(stages) - 1
	}
	return stages[n]
}
