package cli

import (
	"github.com/alexanderramin/scholarform/internal/cli/formatter"
	"github.com/alexanderramin/scholarform/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// resultView shows the stored application. Any of its keys exits.
type resultView struct {
	state *SharedState
	app   *domain.Application
	quit  key.Binding
}

func newResultView(state *SharedState, app *domain.Application) *resultView {
	return &resultView{
		state: state,
		app:   app,
		quit:  key.NewBinding(key.WithKeys("enter", "esc", "q"), key.WithHelp("enter", "exit")),
	}
}

func (v *resultView) Init() tea.Cmd { return nil }

func (v *resultView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, v.quit) {
		return v, tea.Quit
	}
	return v, nil
}

func (v *resultView) View() string {
	return formatter.FormatSubmitted(v.app) + "\n\n" + formatter.FormatApplication(v.app)
}

func (v *resultView) ID() ViewID                { return ViewResult }
func (v *resultView) Title() string             { return "Submitted" }
func (v *resultView) ShortHelp() []key.Binding { return []key.Binding{v.quit} }
