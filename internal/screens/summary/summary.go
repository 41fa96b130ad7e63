package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dosewise/internal/router"
	"github.com/abhisek/dosewise/internal/screen"
	"github.com/abhisek/dosewise/internal/ui/layout"
	"github.com/abhisek/dosewise/internal/ui/theme"
)

// Result is the outcome of one completed case.
type Result struct {
	Condition   string
	PatientName string
	Correct     int
	Answered    int
	Pairs       int
	Misses      int
}

// SummaryScreen shows the case debrief. Enter swaps in the next case
// via the injected factory; Esc pops back home.
type SummaryScreen struct {
	result Result
	next   func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. next builds the follow-up session.
func New(result Result, next func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{result: result, next: next}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Case Debrief"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next case"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if kmsg.String() == "enter" && s.next != nil {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.next()}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("CASE COMPLETE") + "\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s — %s", r.PatientName, r.Condition)) + "\n\n")

	rows := []string{
		statRow("Questions", fmt.Sprintf("%d/%d correct", r.Correct, r.Answered)),
		statRow("Matching", fmt.Sprintf("%d pairs", r.Pairs)),
		statRow("Mismatches", fmt.Sprintf("%d", r.Misses)),
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(card))
	b.WriteString("\n\n")

	verdict := verdictFor(r)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(verdict))

	return lipgloss.NewStyle().Padding(1, 0).Render(b.String())
}

func statRow(label, value string) string {
	return theme.Label.Render(fmt.Sprintf("%-12s", label)) + theme.Value.Render(value)
}

func verdictFor(r Result) string {
	perfect := r.Correct == r.Answered && r.Misses == 0
	switch {
	case perfect && r.Answered > 0:
		return "Flawless handover."
	case r.Answered > 0 && r.Correct*2 >= r.Answered:
		return "Solid work. Review the misses before the next shift."
	default:
		return "Rough one. The formulary is a good place to regroup."
	}
}
