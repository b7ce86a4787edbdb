package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

// noticeKind classifies a transient footer notice and decides how it is
// decorated and how long it stays up.
type noticeKind int

const (
	noticePlain noticeKind = iota
	noticeInfo
	noticeSuccess
	noticeWarn
	noticeError
)

func (k noticeKind) icon() string {
	switch k {
	case noticeInfo:
		return "ℹ"
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	}
	return ""
}

// linger keeps problems on screen longer than confirmations.
func (k noticeKind) linger() time.Duration {
	switch k {
	case noticeWarn, noticeError:
		return 4 * time.Second
	}
	return 2 * time.Second
}

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	if icon := kind.icon(); icon != "" {
		return icon + " " + msg
	}
	return msg
}

// startNotice replaces the current notice and schedules its clear. The
// sequence number invalidates timers of notices that were superseded.
func (m *model) startNotice(msg string, kind noticeKind) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeKind = kind

	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(kind.linger(), func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
