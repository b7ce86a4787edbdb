package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) runCommand() tea.Cmd {
	switch m.ci.cmd {
	case CmdGoto:
		return m.gotoRange(m.ci.buf)

	case CmdSearch:
		m.searchOnce(m.ci.buf)
		return nil

	case CmdAddSignal:
		return m.addSignalSpec(m.ci.buf)
	}
	return nil
}

// gotoRange accepts "<start> <end>" to set the window exactly, or a single
// "<centre>" to recentre the current span.
func (m *model) gotoRange(buf string) tea.Cmd {
	fields := strings.Fields(buf)
	switch len(fields) {
	case 1:
		nums, err := parseFloats(fields)
		if err != nil {
			return m.startNotice("Invalid time: "+err.Error(), noticeWarn)
		}
		return m.centerOn(nums[0])
	case 2:
		nums, err := parseFloats(fields)
		if err != nil {
			return m.startNotice("Invalid range: "+err.Error(), noticeWarn)
		}
		if err := m.coord.SetVisible("keys", nums[0], nums[1]); err != nil {
			return m.startNotice("Start must be before end", noticeWarn)
		}
		return m.collectFetches()
	default:
		return m.startNotice("goto wants <start> <end> or <centre>", noticeWarn)
	}
}

func (m *model) exitCommandMode() {
	m.ci = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.ci.buf) > 0 {
			m.ci.buf = m.ci.buf[:len(m.ci.buf)-1]
		}
		return m, nil
	}

	// append printable rune
	if len(msg.Runes) == 1 {
		m.ci.buf += string(msg.Runes[0])
	}
	return m, nil
}
