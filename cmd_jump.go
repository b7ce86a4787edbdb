package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/logging"
)

// jumpTo shifts the window so its edge lands on t, keeping the span.
func (m *model) jumpTo(t float64) tea.Cmd {
	logging.Debugf("jumpTo %g", t)
	vp := m.coord.Viewport()
	span := vp.Visible.Span()
	start := t
	if t >= vp.Total.End {
		start = t - span
	}
	if err := m.coord.SetVisible("keys", start, start+span); err != nil {
		return nil
	}
	return m.collectFetches()
}

// centerOn moves the window so t sits at its midpoint, keeping the span.
func (m *model) centerOn(t float64) tea.Cmd {
	span := m.coord.VisibleRange().Span()
	if err := m.coord.SetVisible("keys", t-span/2, t+span/2); err != nil {
		return nil
	}
	return m.collectFetches()
}
