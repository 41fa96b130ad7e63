package formulary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/screen"
	"github.com/abhisek/dosewise/internal/ui/components"
	"github.com/abhisek/dosewise/internal/ui/layout"
	"github.com/abhisek/dosewise/internal/ui/theme"
)

// FormularyScreen is a browsable view of the medication catalog with
// incremental text filtering. Time-critical drugs carry a ⏱ marker.
type FormularyScreen struct {
	cat    *catalog.Catalog
	filter components.TextInput
	cursor int
	offset int
}

var _ screen.Screen = (*FormularyScreen)(nil)
var _ screen.KeyHintProvider = (*FormularyScreen)(nil)

// New creates a formulary screen over the given catalog.
func New(cat *catalog.Catalog) *FormularyScreen {
	return &FormularyScreen{
		cat:    cat,
		filter: components.NewTextInput("Filter by name, class or indication...", 40),
	}
}

func (f *FormularyScreen) Init() tea.Cmd {
	return f.filter.Init()
}

func (f *FormularyScreen) Title() string {
	return "Formulary"
}

func (f *FormularyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "type", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FormularyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			if f.cursor > 0 {
				f.cursor--
			}
			return f, nil
		case "down":
			if f.cursor < len(f.visible())-1 {
				f.cursor++
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.filter, cmd = f.filter.Update(msg)

	// Filter changes can shrink the list under the cursor.
	if n := len(f.visible()); f.cursor >= n {
		f.cursor = 0
		f.offset = 0
	}
	return f, cmd
}

// visible returns catalog records matching the current filter, in
// catalog order.
func (f *FormularyScreen) visible() []catalog.MedicationRecord {
	query := strings.ToLower(strings.TrimSpace(f.filter.Value()))
	all := f.cat.All()
	if query == "" {
		return all
	}

	var out []catalog.MedicationRecord
	for _, rec := range all {
		if strings.Contains(strings.ToLower(rec.Name), query) ||
			strings.Contains(strings.ToLower(rec.Class), query) ||
			strings.Contains(strings.ToLower(rec.Indication), query) {
			out = append(out, rec)
		}
	}
	return out
}

func (f *FormularyScreen) View(width, height int) string {
	records := f.visible()

	var b strings.Builder
	b.WriteString(theme.Label.Render("Filter: ") + f.filter.View() + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d medications", len(records), f.cat.Len())) + "\n\n")

	// Reserve rows for the filter header and the detail card.
	listHeight := height - 12
	if listHeight < 5 {
		listHeight = 5
	}

	if f.cursor < f.offset {
		f.offset = f.cursor
	}
	if f.cursor >= f.offset+listHeight {
		f.offset = f.cursor - listHeight + 1
	}

	end := f.offset + listHeight
	if end > len(records) {
		end = len(records)
	}

	for i := f.offset; i < end; i++ {
		rec := records[i]
		marker := "  "
		if rec.TimeCritical {
			marker = " ⏱"
		}
		line := fmt.Sprintf("%-22s %s%s", rec.Name, rec.Class, marker)
		if i == f.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Body.Render("  "+line) + "\n")
		}
	}

	if len(records) == 0 {
		b.WriteString(theme.Hint.Render("  No medications match.") + "\n")
	}

	if f.cursor < len(records) {
		b.WriteString("\n" + f.renderDetail(records[f.cursor], width))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (f *FormularyScreen) renderDetail(rec catalog.MedicationRecord, width int) string {
	rows := []string{
		theme.Value.Render(rec.Name) + theme.Hint.Render("  ("+string(rec.Category)+")"),
		theme.Label.Render("Dose        ") + theme.Body.Render(rec.Dose+", "+rec.Frequency),
		theme.Label.Render("Indication  ") + theme.Body.Render(rec.Indication),
		theme.Label.Render("Side effects") + theme.Body.Render(" "+strings.Join(rec.SideEffects, ", ")),
	}
	if rec.TimeCritical {
		rows = append(rows, theme.Critical.Render("Time critical — never omit or delay"))
	}
	return theme.Card.Render(strings.Join(rows, "\n"))
}
