package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/logging"
)

// mouseTarget tracks which surface owns an in-flight drag, so motion and
// release events route to the surface the press landed on even when the
// pointer leaves it.
type mouseTarget int

const (
	targetNone mouseTarget = iota
	targetRuler
	targetOverview
	targetRow
)

// waveLayout mirrors the vertical arrangement View produces, in absolute
// terminal coordinates.
type waveLayout struct {
	waveX     int
	rulerY    int
	rowsY     int
	rowH      int
	overviewY int
}

func (m *model) layout() waveLayout {
	// appstyle has a one line top margin and two columns of left margin;
	// the wave area adds a border cell on each side.
	l := waveLayout{
		waveX:  3 + m.gutterWidth,
		rulerY: 3,
		rowH:   m.cfg.RowHeight,
	}
	l.rowsY = l.rulerY + 2
	l.overviewY = l.rowsY + len(m.data.rows)*l.rowH
	if len(m.data.rows) == 0 {
		// the empty-state hint occupies one line above the overview
		l.overviewY++
	}
	return l
}

// hitTest maps a terminal coordinate to the surface underneath it and the
// x offset within that surface.
func (m *model) hitTest(x, y int) (mouseTarget, int, int) {
	l := m.layout()
	localX := x - l.waveX
	if localX < 0 || localX >= m.waveWidth {
		return targetNone, 0, 0
	}
	switch {
	case y >= l.rulerY && y < l.rulerY+2:
		return targetRuler, 0, localX
	case len(m.data.rows) > 0 && y >= l.rowsY && y < l.rowsY+len(m.data.rows)*l.rowH:
		return targetRow, (y - l.rowsY) / l.rowH, localX
	case y == l.overviewY:
		return targetOverview, 0, localX
	}
	return targetNone, 0, 0
}

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.handleWheel(msg, 1)
	case tea.MouseButtonWheelDown:
		return m.handleWheel(msg, -1)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		target, row, localX := m.hitTest(msg.X, msg.Y)
		m.ui.mouseTarget = target
		m.ui.mouseRow = row
		switch target {
		case targetRuler:
			m.ruler.MouseDown(localX)
		case targetOverview:
			m.overview.MouseDown(localX)
			return m, m.collectFetches()
		case targetRow:
			if row >= 0 && row < len(m.data.rows) {
				m.cursor = row
			}
		}
		return m, nil

	case tea.MouseActionMotion:
		localX := clamp(msg.X-m.layout().waveX, 0, m.waveWidth-1)
		switch m.ui.mouseTarget {
		case targetRuler:
			m.ruler.MouseMove(localX)
		case targetOverview:
			m.overview.MouseMove(localX)
			return m, m.collectFetches()
		}
		return m, nil

	case tea.MouseActionRelease:
		target := m.ui.mouseTarget
		m.ui.mouseTarget = targetNone
		switch target {
		case targetRuler:
			m.ruler.MouseUp(clamp(msg.X-m.layout().waveX, 0, m.waveWidth-1))
			return m, m.collectFetches()
		case targetOverview:
			m.overview.MouseUp(msg.X - m.layout().waveX)
			return m, m.collectFetches()
		}
		return m, nil
	}

	return m, nil
}

// handleWheel zooms with ctrl held and pans otherwise. The gesture applies
// to the shared window regardless of which surface the pointer is over.
func (m *model) handleWheel(msg tea.MouseMsg, dir int) (tea.Model, tea.Cmd) {
	target, _, _ := m.hitTest(msg.X, msg.Y)
	if target == targetNone {
		return m, nil
	}
	logging.Debugf("wheel dir=%d ctrl=%v over target=%d", dir, msg.Ctrl, target)
	m.ruler.Wheel(dir, msg.Ctrl)
	return m, m.collectFetches()
}
