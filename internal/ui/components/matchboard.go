package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dosewise/internal/matching"
	"github.com/abhisek/dosewise/internal/ui/theme"
)

// MatchBoard is the two-column drug matching puzzle. The left column
// lists drug cards, the right column their descriptions in shuffled
// order. The player arms a drug with enter, moves to the right column,
// and picks the description it belongs to.
//
// The board only tracks presentation state. The owning screen resolves
// each pick against the assessment and reports back via Resolve.
type MatchBoard struct {
	Drugs   []matching.DrugCard
	Targets []matching.TargetCard

	Cursor        int
	PickingTarget bool
	ArmedDrug     string
	PickedTarget  string
	LastWrong     bool

	Consumed map[string]bool
	Matched  map[string]bool
}

// NewMatchBoard creates a board for the given matching set.
func NewMatchBoard(set matching.Set) MatchBoard {
	return MatchBoard{
		Drugs:    set.Drugs,
		Targets:  set.Targets,
		Consumed: make(map[string]bool),
		Matched:  make(map[string]bool),
	}
}

// Init returns nil.
func (b MatchBoard) Init() tea.Cmd {
	return nil
}

// Update handles navigation and picking. A resolved pick is surfaced
// through PickedTarget; no further input is accepted until the owner
// calls Resolve.
func (b MatchBoard) Update(msg tea.Msg) (MatchBoard, tea.Cmd) {
	if b.PickedTarget != "" || b.Done() {
		return b, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		b.move(-1)
	case "down", "j":
		b.move(1)
	case "enter":
		if !b.PickingTarget {
			if b.Cursor < len(b.Drugs) && !b.Consumed[b.Drugs[b.Cursor].ID] {
				b.ArmedDrug = b.Drugs[b.Cursor].ID
				b.PickingTarget = true
				b.Cursor = b.firstOpenTarget()
				b.LastWrong = false
			}
		} else {
			if b.Cursor < len(b.Targets) && !b.Matched[b.Targets[b.Cursor].ID] {
				b.PickedTarget = b.Targets[b.Cursor].ID
			}
		}
	case "backspace":
		if b.PickingTarget {
			b.PickingTarget = false
			b.ArmedDrug = ""
			b.Cursor = b.firstOpenDrug()
		}
	}

	return b, nil
}

// Resolve records the outcome of the pending pick and rearms the board.
func (b *MatchBoard) Resolve(correct bool) {
	if correct {
		b.Consumed[b.ArmedDrug] = true
		b.Matched[b.PickedTarget] = true
	}
	b.LastWrong = !correct
	b.ArmedDrug = ""
	b.PickedTarget = ""
	b.PickingTarget = false
	b.Cursor = b.firstOpenDrug()
}

// Done returns true once every drug has been matched.
func (b MatchBoard) Done() bool {
	return len(b.Drugs) > 0 && len(b.Consumed) == len(b.Drugs)
}

// Remaining returns the number of unmatched drugs.
func (b MatchBoard) Remaining() int {
	return len(b.Drugs) - len(b.Consumed)
}

func (b *MatchBoard) move(delta int) {
	if !b.PickingTarget {
		b.Cursor = b.nextOpen(b.Cursor, delta, len(b.Drugs), func(i int) bool {
			return b.Consumed[b.Drugs[i].ID]
		})
	} else {
		b.Cursor = b.nextOpen(b.Cursor, delta, len(b.Targets), func(i int) bool {
			return b.Matched[b.Targets[i].ID]
		})
	}
}

func (b MatchBoard) nextOpen(from, delta, n int, closed func(int) bool) int {
	for i := from + delta; i >= 0 && i < n; i += delta {
		if !closed(i) {
			return i
		}
	}
	return from
}

func (b MatchBoard) firstOpenDrug() int {
	for i := range b.Drugs {
		if !b.Consumed[b.Drugs[i].ID] {
			return i
		}
	}
	return 0
}

func (b MatchBoard) firstOpenTarget() int {
	for i := range b.Targets {
		if !b.Matched[b.Targets[i].ID] {
			return i
		}
	}
	return 0
}

// View renders both columns side by side.
func (b MatchBoard) View(width int) string {
	colWidth := width/2 - 4
	if colWidth < 20 {
		colWidth = 20
	}

	heading := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)

	left := heading.Render("MEDICATIONS") + "\n\n"
	for i, d := range b.Drugs {
		left += b.renderDrug(i, d, colWidth) + "\n"
	}

	right := heading.Render("DESCRIPTIONS") + "\n\n"
	for i, t := range b.Targets {
		right += b.renderTarget(i, t, colWidth) + "\n"
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colWidth+4).Render(left),
		lipgloss.NewStyle().Width(colWidth+4).Render(right),
	)

	if b.LastWrong {
		board += "\n" + theme.Incorrect.Render("✗ Not a match — try again")
	}
	return board
}

func (b MatchBoard) renderDrug(i int, d matching.DrugCard, colWidth int) string {
	line := "  " + d.DrugName
	switch {
	case b.Consumed[d.ID]:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Width(colWidth).Render("✓ " + d.DrugName)
	case d.ID == b.ArmedDrug:
		return theme.Critical.Width(colWidth).Render("▸ " + d.DrugName)
	case !b.PickingTarget && i == b.Cursor:
		return theme.Selected.Width(colWidth).Render("▸ " + d.DrugName)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Width(colWidth).Render(line)
	}
}

func (b MatchBoard) renderTarget(i int, t matching.TargetCard, colWidth int) string {
	label := t.Content
	if t.Kind == matching.KindIndication {
		label = "Used for: " + t.Content
	}

	switch {
	case b.Matched[t.ID]:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Width(colWidth).Render("✓ " + label)
	case b.PickingTarget && i == b.Cursor:
		return theme.Selected.Width(colWidth).Render("▸ " + label)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Width(colWidth).Render("  " + label)
	}
}
