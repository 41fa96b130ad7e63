package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/condition"
	"github.com/abhisek/dosewise/internal/router"
	"github.com/abhisek/dosewise/internal/screen"
	"github.com/abhisek/dosewise/internal/screens/formulary"
	sessionscreen "github.com/abhisek/dosewise/internal/screens/session"
	"github.com/abhisek/dosewise/internal/ui/components"
	"github.com/abhisek/dosewise/internal/ui/theme"
)

const banner = `
 ██████╗  ██████╗ ███████╗███████╗██╗    ██╗██╗███████╗███████╗
 ██╔══██╗██╔═══██╗██╔════╝██╔════╝██║    ██║██║██╔════╝██╔════╝
 ██║  ██║██║   ██║███████╗█████╗  ██║ █╗ ██║██║███████╗█████╗
 ██║  ██║██║   ██║╚════██║██╔══╝  ██║███╗██║██║╚════██║██╔══╝
 ██████╔╝╚██████╔╝███████║███████╗╚███╔███╔╝██║███████║███████╗
 ╚═════╝  ╚═════╝ ╚══════╝╚══════╝ ╚══╝╚══╝ ╚═╝╚══════╝╚══════╝`

// HomeScreen is the entry screen: start a case, browse the formulary,
// or quit.
type HomeScreen struct {
	menu components.Menu
	cat  *catalog.Catalog
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. deps is handed to each session the
// player starts.
func New(cat *catalog.Catalog, deps sessionscreen.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW CASE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(deps)}
			}
		}},
		{Label: "FORMULARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: formulary.New(cat)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		cat:  cat,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(banner))

	sections = append(sections, theme.Subtitle.Render(
		"Medication assessment training for emergency responders"))

	sections = append(sections, theme.Hint.Render(fmt.Sprintf(
		"%d conditions · %d medications on formulary",
		condition.Count(), h.cat.Len())))

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
