package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-wave/wave"
)

func (m *model) headerView(width int) string {
	vp := m.coord.Viewport()
	left := m.fileID
	if left == "" {
		left = "(no trace)"
	}
	right := fmt.Sprintf("total %s .. %s",
		wave.FormatTimeLabel(vp.Total.Start), wave.FormatTimeLabel(vp.Total.End))

	gap := width - runeWidth(left) - runeWidth(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// gutterLines renders a row's name column: the name on the middle line,
// blanks elsewhere, all padded to the gutter width.
func (m *model) gutterLines(name string, height int, selected, synthetic bool) []string {
	st := nameStyle
	if synthetic {
		st = nameDimStyle
	}
	if selected {
		st = nameSelectedStyle
	}

	blank := strings.Repeat(" ", m.gutterWidth)
	lines := make([]string, height)
	for i := range lines {
		if i == height/2 {
			lines[i] = st.Render(padRightPlain(truncatePlain(name, m.gutterWidth-1), m.gutterWidth))
		} else {
			lines[i] = st.Render(blank)
		}
	}
	return lines
}

func (m *model) waveAreaView() string {
	pad := strings.Repeat(" ", m.gutterWidth)
	var lines []string

	for _, l := range strings.Split(m.ruler.Surface().Render(m.palette), "\n") {
		lines = append(lines, pad+l)
	}

	if len(m.data.rows) == 0 {
		hint := nameDimStyle.Render("press 'a' to add a signal")
		lines = append(lines, pad+hint)
	}
	for i, row := range m.data.rows {
		surfLines := strings.Split(row.Surface().Render(m.palette), "\n")
		gutter := m.gutterLines(row.Name, len(surfLines), i == m.cursor, !row.IsFetched())
		for j, l := range surfLines {
			lines = append(lines, gutter[j]+l)
		}
	}

	for _, l := range strings.Split(m.overview.Surface().Render(m.palette), "\n") {
		lines = append(lines, pad+l)
	}

	return waveAreaStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) footerView(width int) string {
	vp := m.coord.Viewport()
	rangeLabel := fmt.Sprintf("%s..%s",
		wave.FormatTimeLabel(vp.Visible.Start), wave.FormatTimeLabel(vp.Visible.End))

	footerMode := CmdNone
	modeInput := ""
	if m.ui.mode == modeCommand {
		footerMode = m.ci.cmd
		modeInput = m.activeCommandLine()
	}

	st := FooterState{
		Mode:       footerMode,
		ModeInput:  modeInput,
		FileName:   m.fileID,
		RangeLabel: rangeLabel,
		Markers:    len(m.data.markers),
		Row:        m.cursor + 1,
		TotalRows:  len(m.data.rows),
		Legend:     "(? help · a add · d remove · m mark · +/- zoom · drag ruler to zoom)",
	}
	if len(m.data.rows) == 0 {
		st.Row = 0
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeKind)
	}
	if st.StatusMessage == "" && m.ui.mode == modeView {
		st.StatusMessage = m.idleCommandHintsLine()
	}
	if m.ui.mode == modeCommand {
		st.StatusMessage = m.commandHintsLine(m.ci.cmd)
	}

	return RenderFooter(width, st, DefaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	contentW := m.gutterWidth + m.waveWidth + 2
	parts := []string{
		m.headerView(contentW),
		m.waveAreaView(),
		m.footerView(contentW),
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
