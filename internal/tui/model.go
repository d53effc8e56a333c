package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hangman/internal/domain"
	"hangman/internal/game"
)

// Model drives the interactive game view. It only reads session state
// (masked word, remaining tries, ordered wrong guesses, status) and
// submits guesses; the rules live in internal/game.
type Model struct {
	session  *game.Session
	setup    domain.SetupService
	maxWrong int

	input   textinput.Model
	message string
}

// NewModel returns a model for sess. The setup service is used to draw a
// fresh random word when the player restarts.
func NewModel(sess *game.Session, setup domain.SetupService, maxWrong int) Model {
	ti := textinput.New()
	ti.Placeholder = "letter"
	ti.Prompt = "> "
	ti.Width = 6
	ti.Focus()

	return Model{
		session:  sess,
		setup:    setup,
		maxWrong: maxWrong,
		input:    ti,
		message:  fmt.Sprintf("Make a guess. You have %d tries.", sess.Remaining()),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if !m.session.Status().Terminal() {
				m.submit()
			}
			return m, nil
		case "r":
			if m.session.Status().Terminal() {
				m.restart()
				return m, nil
			}
		case "q":
			if m.session.Status().Terminal() {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit feeds the typed input to the session and turns the outcome into
// a status-line message. Rejected guesses are no-ops on the session.
func (m *Model) submit() {
	raw := m.input.Value()
	m.input.SetValue("")

	out, err := m.session.Guess(raw)
	switch {
	case errors.Is(err, domain.ErrInvalidGuess):
		m.message = "Enter a single letter (A-Z)."
	case errors.Is(err, domain.ErrDuplicateGuess):
		m.message = fmt.Sprintf("You already tried %q. Pick another letter.",
			strings.ToUpper(strings.TrimSpace(raw)))
	case errors.Is(err, domain.ErrSessionOver):
		m.message = "The round is over."
	case out == domain.Hit:
		m.message = "Good guess!"
	default:
		m.message = fmt.Sprintf("Nope. %d tries left.", m.session.Remaining())
	}

	switch m.session.Status() {
	case domain.Won:
		m.message = fmt.Sprintf("You win! The word was %q.", m.session.Word())
	case domain.Lost:
		m.message = fmt.Sprintf("Game over! The word was %q.", m.session.Word())
	}
}

// restart replaces the session wholesale with a fresh random word.
func (m *Model) restart() {
	word, err := m.setup.Choose("")
	if err != nil {
		m.message = err.Error()
		return
	}
	m.session = game.New(word, m.maxWrong)
	m.input.SetValue("")
	m.message = fmt.Sprintf("New game. You have %d tries.", m.session.Remaining())
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hangman"))
	b.WriteString("\n")
	b.WriteString(gallowsStyle.Render(Stage(len(m.session.Wrong()))))
	b.WriteString("\n")
	b.WriteString(wordStyle.Render(spaced(m.session.Masked())))
	b.WriteString("\n")

	wrong := "-"
	if ws := m.session.Wrong(); len(ws) > 0 {
		wrong = strings.Join(ws, ", ")
	}
	b.WriteString(wrongStyle.Render("Guessed (wrong): " + wrong))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Tries left: %d\n\n", m.session.Remaining()))

	if !m.session.Status().Terminal() {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.message))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(helpText(m.session.Status())))
	b.WriteString("\n")

	return b.String()
}

func helpText(s domain.Status) string {
	if s.Terminal() {
		return "r: play again • q/esc: quit"
	}
	return "enter: guess • esc: quit"
}

// spaced separates characters so the masked word reads clearly.
func spaced(word string) string {
	runes := []rune(word)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return strings.Join(out, " ")
}
