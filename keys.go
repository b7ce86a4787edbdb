package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	ZoomFit      key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	JumpStart    key.Binding
	JumpEnd      key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	MoveRowDown  key.Binding
	MoveRowUp    key.Binding
	AddSignal    key.Binding
	RemoveSignal key.Binding
	Mark         key.Binding
	NextMark     key.Binding
	PrevMark     key.Binding
	CopyRange    key.Binding
	CopyValue    key.Binding
	SaveSession  key.Binding
	Search       key.Binding
	Command      key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	ZoomFit: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "zoom to fit"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h or <- ", "pan earlier"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l or >- ", "pan later"),
	),
	JumpStart: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "jump to start"),
	),
	JumpEnd: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "jump to end"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "select next signal"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "select previous signal"),
	),
	MoveRowDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "move signal down"),
	),
	MoveRowUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "move signal up"),
	),
	AddSignal: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add signal"),
	),
	RemoveSignal: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove selected signal"),
	),
	Mark: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "drop time marker"),
	),
	NextMark: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next marker"),
	),
	PrevMark: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "previous marker"),
	),
	CopyRange: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy visible range"),
	),
	CopyValue: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "copy value at window centre"),
	),
	SaveSession: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save session"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search signal names"),
	),
	Command: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "command"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.ZoomIn,
		k.ZoomOut,
		k.ZoomFit,
		k.PanLeft,
		k.PanRight,
		k.AddSignal,
		k.RemoveSignal,
		k.Mark,
		k.NextMark,
		k.PrevMark,
		k.SaveSession,
		k.CopyRange,
		k.Search,
	}
}
