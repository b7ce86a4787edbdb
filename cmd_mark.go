package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/logging"
	"github.com/andareed/siftly-wave/wave"
)

// toggleMarker drops a time marker at the window midpoint, or lifts the one
// already sitting there.
func (m *model) toggleMarker() (tea.Model, tea.Cmd) {
	t := m.coord.VisibleRange().Mid()

	for _, existing := range m.data.markers {
		if existing == t {
			m.data.removeMarker(t)
			m.ruler.SetMarkers(m.data.markers)
			logging.Debugf("marker at %g removed", t)
			return m, m.startNotice("Marker removed", noticePlain)
		}
	}

	m.data.addMarker(t)
	m.ruler.SetMarkers(m.data.markers)
	logging.Debugf("marker at %g added", t)
	return m, m.startNotice(
		fmt.Sprintf("Marker at %s", wave.FormatTimeLabel(t)),
		noticeSuccess,
	)
}

func (m *model) jumpToNextMark() tea.Cmd {
	t, ok := m.data.nextMarker(m.coord.VisibleRange().Mid())
	if !ok {
		logging.Debug("no next marker")
		return m.startNotice("No later marker", noticeInfo)
	}
	return m.centerOn(t)
}

func (m *model) jumpToPreviousMark() tea.Cmd {
	t, ok := m.data.prevMarker(m.coord.VisibleRange().Mid())
	if !ok {
		logging.Debug("no previous marker")
		return m.startNotice("No earlier marker", noticeInfo)
	}
	return m.centerOn(t)
}
