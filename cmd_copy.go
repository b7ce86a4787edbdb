package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/clipboard"
	"github.com/andareed/siftly-wave/wave"
)

func (m *model) copyVisibleRange() (tea.Model, tea.Cmd) {
	rng := m.coord.VisibleRange()
	text := fmt.Sprintf("%s .. %s", wave.FormatTimeLabel(rng.Start), wave.FormatTimeLabel(rng.End))
	if err := clipboard.Copy(text); err != nil {
		return m, m.startNotice("Copy failed: "+err.Error(), noticeError)
	}
	return m, m.startNotice("Copied "+text, noticeSuccess)
}

// copyValueAtCentre puts the selected signal's value at the window midpoint
// on the clipboard.
func (m *model) copyValueAtCentre() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.data.rows) {
		return m, m.startNotice("No signal selected", noticeInfo)
	}
	row := m.data.rows[m.cursor]
	t := m.coord.VisibleRange().Mid()
	v, ok := row.ValueAt(t)
	if !ok {
		return m, m.startNotice("Value not loaded yet", noticeInfo)
	}
	text := fmt.Sprintf("%s @ %s = %s", row.Name, wave.FormatTimeLabel(t), v.Label())
	if err := clipboard.Copy(text); err != nil {
		return m, m.startNotice("Copy failed: "+err.Error(), noticeError)
	}
	return m, m.startNotice("Copied "+text, noticeSuccess)
}
