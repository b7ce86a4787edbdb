package dialogs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---------------------------------------------------------------

type (
	AddSignalConfirmedMsg struct{ Spec string }
	AddSignalCancelledMsg struct{}
)

// --- Add-signal dialog (modal) ----------------------------------------------

// AddSignal prompts for a signal to append to the view. The entry is either
// a hierarchical path from the open trace, or a generator spec of the form
// clock:<period>[,<low>[,<offset>]] or counter:<start>,<inc>,<count>,<period>.
type AddSignal struct {
	input   textinput.Model
	visible bool
}

func (d AddSignal) Init() tea.Cmd { return d.input.Focus() }

func NewAddSignalDialog() *AddSignal {
	ti := textinput.New()
	ti.Placeholder = "tb.dut.clk | clock:10 | counter:0,1,16,10"
	ti.Prompt = "Add signal: "
	ti.CharLimit = 256
	ti.Width = 50
	return &AddSignal{input: ti, visible: true}
}

func (d *AddSignal) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter":
			spec := d.input.Value()
			if spec == "" {
				return d, nil
			}
			return d, func() tea.Msg { return AddSignalConfirmedMsg{Spec: spec} }
		case "esc":
			return d, func() tea.Msg { return AddSignalCancelledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d AddSignal) View() string {
	if !d.visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(64)

	help := lipgloss.NewStyle().
		Faint(true).
		Render("path or clock:<p>[,<low>[,<off>]] or counter:<s>,<inc>,<cnt>,<per> • esc to cancel")

	content := fmt.Sprintf("%s\n\n%s", d.input.View(), help)
	return box.Render(content)
}

func (d *AddSignal) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *AddSignal) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *AddSignal) Focus() tea.Cmd { return d.input.Focus() }
func (d *AddSignal) Blur()          { d.input.Blur() }
func (d AddSignal) IsVisible() bool { return d.visible }
