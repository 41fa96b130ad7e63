package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dosewise/internal/questions"
	"github.com/abhisek/dosewise/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector for one clinical question.
// After submission it reveals the correct option and the explanation.
type MultiChoice struct {
	Question    questions.Question
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewMultiChoice creates a selector for the given question.
func NewMultiChoice(q questions.Question) MultiChoice {
	return MultiChoice{
		Question:    q,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Question.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the question, its options, and (after submission) the
// outcome and explanation.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Question.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Submitted {
			if i == m.Question.CorrectIndex {
				s += theme.Correct.Render(line) + "\n"
			} else if i == m.ChosenIndex {
				s += theme.Incorrect.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	if m.Submitted {
		s += "\n"
		if m.IsCorrect() {
			s += theme.Correct.Render("✓ Correct") + "\n"
		} else {
			s += theme.Incorrect.Render("✗ Incorrect") + "\n"
		}
		if m.Question.Explanation != "" {
			s += theme.Hint.Render(m.Question.Explanation) + "\n"
		}
	}

	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.Question.CorrectIndex
}
