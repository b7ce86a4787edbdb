package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/dialogs"
	"github.com/andareed/siftly-wave/logging"
	"github.com/andareed/siftly-wave/trace"
	"github.com/andareed/siftly-wave/wave"
)

type mode int

const (
	modeView mode = iota
	modeCommand
)

// changesLoadedMsg lands an asynchronous fetch for one row. The range it
// was issued for rides along so stale responses can be recognised.
type changesLoadedMsg struct {
	rowID   string
	rng     wave.TimeRange
	changes []wave.Change
	err     error
}

type model struct {
	cfg  Config
	keys Keymap

	provider  *trace.Provider
	fileID    string
	tracePath string

	coord    *wave.Coordinator
	painter  *wave.Painter
	palette  wave.Palette
	ruler    *wave.Ruler
	overview *wave.Overview

	data   dataState
	ui     uiState
	ci     CommandInput
	cursor int // index into data.rows

	activeDialog dialogs.Dialog

	ready          bool
	terminalWidth  int
	terminalHeight int
	waveWidth      int
	gutterWidth    int
	nextRowSeq     int
}

func newModel(cfg Config, provider *trace.Provider, fileID string) *model {
	coord := wave.NewCoordinator()
	m := &model{
		cfg:         cfg,
		keys:        Keys,
		provider:    provider,
		fileID:      fileID,
		coord:       coord,
		painter:     wave.NewPainter(cfg.BandPattern),
		palette:     buildPalette(cfg.Colors),
		ruler:       wave.NewRuler("ruler", coord, 80),
		overview:    wave.NewOverview("overview", coord, 80),
		gutterWidth: 16,
		waveWidth:   80,
	}

	if fileID != "" {
		if last, err := provider.LastTime(fileID); err == nil && last > 0 {
			coord.SetTotal(wave.TimeRange{Start: 0, End: last})
		}
	}
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-wave: initialised (file=%q)", m.fileID)
	return m.collectFetches()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return m.updateDialog(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.collectFetches()
	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeKind = noticePlain
		}
		return m, nil
	case changesLoadedMsg:
		return m.handleChangesLoaded(msg)
	}

	return m, nil
}

func (m *model) resize(w, h int) {
	m.terminalWidth = w
	m.terminalHeight = h
	m.ready = true

	// appstyle margins plus the gutter and wave-area border.
	waveW := w - 4 - m.gutterWidth - 2
	if waveW < 10 {
		waveW = 10
	}
	m.waveWidth = waveW

	m.ruler.Resize(waveW)
	m.overview.Resize(waveW)
	for _, r := range m.data.rows {
		r.Resize(waveW, m.cfg.RowHeight)
	}
	logging.Debugf("resize term=%dx%d wave=%d", w, h, waveW)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	}
	return m, nil
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dialogs.AddSignalConfirmedMsg:
		m.activeDialog.Hide()
		return m, m.addSignalSpec(msg.Spec)
	case dialogs.AddSignalCancelledMsg:
		m.activeDialog.Hide()
		return m, nil
	case dialogs.SaveConfirmedMsg:
		m.activeDialog.Hide()
		if err := SaveSession(m, msg.Path); err != nil {
			return m, m.startNotice("Save failed: "+err.Error(), noticeError)
		}
		return m, m.startNotice("Session saved to "+msg.Path, noticeSuccess)
	case dialogs.SaveCanceledMsg:
		m.activeDialog.Hide()
		return m, nil
	}
	d, cmd := m.activeDialog.Update(msg)
	m.activeDialog = d
	return m, cmd
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.ZoomIn):
		m.coord.ZoomIn("keys", m.cfg.ZoomStep)
		return m, m.collectFetches()
	case key.Matches(msg, k.ZoomOut):
		m.coord.ZoomOut("keys", m.cfg.ZoomStep)
		return m, m.collectFetches()
	case key.Matches(msg, k.ZoomFit):
		m.coord.ZoomToFit("keys")
		return m, m.collectFetches()

	case key.Matches(msg, k.PanLeft):
		m.coord.Pan("keys", -1, m.cfg.PanFraction)
		return m, m.collectFetches()
	case key.Matches(msg, k.PanRight):
		m.coord.Pan("keys", 1, m.cfg.PanFraction)
		return m, m.collectFetches()

	case key.Matches(msg, k.JumpStart):
		return m, m.jumpTo(m.coord.Viewport().Total.Start)
	case key.Matches(msg, k.JumpEnd):
		return m, m.jumpTo(m.coord.Viewport().Total.End)

	case key.Matches(msg, k.RowDown):
		if m.cursor < len(m.data.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, k.RowUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.MoveRowDown):
		m.moveRow(1)
	case key.Matches(msg, k.MoveRowUp):
		m.moveRow(-1)

	case key.Matches(msg, k.AddSignal):
		d := dialogs.NewAddSignalDialog()
		d.Show()
		m.activeDialog = d
		return m, d.Focus()
	case key.Matches(msg, k.RemoveSignal):
		return m.removeCurrentRow()

	case key.Matches(msg, k.Mark):
		return m.toggleMarker()
	case key.Matches(msg, k.NextMark):
		return m, m.jumpToNextMark()
	case key.Matches(msg, k.PrevMark):
		return m, m.jumpToPreviousMark()

	case key.Matches(msg, k.SaveSession):
		defaultName := "session.sfwave.json"
		if m.tracePath != "" {
			defaultName = sessionPath(m.tracePath)
		}
		d := dialogs.NewSaveDialog(defaultName, "")
		d.Show()
		m.activeDialog = d
		return m, d.Focus()

	case key.Matches(msg, k.CopyRange):
		return m.copyVisibleRange()
	case key.Matches(msg, k.CopyValue):
		return m.copyValueAtCentre()

	case key.Matches(msg, k.Search):
		m.ui.mode = modeCommand
		m.ci = CommandInput{cmd: CmdSearch}
	case key.Matches(msg, k.Command):
		m.ui.mode = modeCommand
		m.ci = CommandInput{cmd: CmdGoto}

	case key.Matches(msg, k.OpenHelp):
		d := dialogs.NewHelpDialog(m.keys.Legend())
		d.Show()
		m.activeDialog = d
	}
	return m, nil
}

func (m *model) moveRow(delta int) {
	i := m.cursor
	j := i + delta
	if i < 0 || i >= len(m.data.rows) || j < 0 || j >= len(m.data.rows) {
		return
	}
	m.data.rows[i], m.data.rows[j] = m.data.rows[j], m.data.rows[i]
	m.data.rowSpecs[i], m.data.rowSpecs[j] = m.data.rowSpecs[j], m.data.rowSpecs[i]
	m.data.rows[i].SetRowIndex(i)
	m.data.rows[j].SetRowIndex(j)
	m.cursor = j
}

func (m *model) removeCurrentRow() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.data.rows) {
		return m, nil
	}
	row := m.data.rows[m.cursor]
	m.coord.Detach(row.ID())
	m.data.rows = append(m.data.rows[:m.cursor], m.data.rows[m.cursor+1:]...)
	m.data.rowSpecs = append(m.data.rowSpecs[:m.cursor], m.data.rowSpecs[m.cursor+1:]...)
	for i, r := range m.data.rows {
		r.SetRowIndex(i)
	}
	if m.cursor >= len(m.data.rows) {
		m.cursor = len(m.data.rows) - 1
	}
	return m, m.startNotice(fmt.Sprintf("Removed %s", row.Name), noticePlain)
}

// addRow attaches a built row to the shared viewport and puts it last. The
// spec is remembered so sessions can replay the add.
func (m *model) addRow(row *wave.Row, spec string) tea.Cmd {
	m.data.rows = append(m.data.rows, row)
	m.data.rowSpecs = append(m.data.rowSpecs, spec)
	m.coord.Attach(row)
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m.collectFetches()
}

// resetPendingFetches forgets every in-flight fetch mark. Startup paths
// that add rows without running the returned commands call this so Init's
// collectFetches issues the first batch.
func (m *model) resetPendingFetches() {
	for _, row := range m.data.rows {
		row.ResetFetch()
	}
}

func (m *model) rowID(prefix string) string {
	m.nextRowSeq++
	return fmt.Sprintf("%s-%d", prefix, m.nextRowSeq)
}

// collectFetches polls every fetched row for a needed range and batches the
// asynchronous loads. Responses arrive as changesLoadedMsg; anything issued
// for a range that is no longer current gets dropped on delivery.
func (m *model) collectFetches() tea.Cmd {
	var cmds []tea.Cmd
	for _, row := range m.data.rows {
		rng, ok := row.WantsFetch()
		if !ok {
			continue
		}
		cmds = append(cmds, m.fetchCmd(row.ID(), row.Ref, rng))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *model) fetchCmd(rowID string, ref uint32, rng wave.TimeRange) tea.Cmd {
	provider, fileID := m.provider, m.fileID
	return func() tea.Msg {
		raw, err := provider.FetchChanges(fileID, ref, rng.Start, rng.End)
		if err != nil {
			return changesLoadedMsg{rowID: rowID, rng: rng, err: err}
		}
		changes := make([]wave.Change, len(raw))
		for i, c := range raw {
			changes[i] = wave.Change{Time: c.Time, Value: wave.ParseValue(c.Value)}
		}
		return changesLoadedMsg{rowID: rowID, rng: rng, changes: changes}
	}
}

func (m *model) handleChangesLoaded(msg changesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.Warnf("fetch for row %s failed: %v", msg.rowID, msg.err)
		return m, m.startNotice("Signal data load failed", noticeError)
	}
	for _, row := range m.data.rows {
		if row.ID() == msg.rowID {
			row.DeliverChanges(msg.rng, msg.changes)
			break
		}
	}
	// The window may have moved again while this fetch was in flight.
	return m, m.collectFetches()
}
