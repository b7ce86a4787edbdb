package main

import "fmt"

type Command int

const (
	CmdNone Command = iota
	CmdGoto
	CmdSearch
	CmdAddSignal
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdGoto
	case '/':
		return CmdSearch
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[SEARCH]"
	case CmdGoto:
		return "[GOTO]"
	case CmdAddSignal:
		return "[ADD]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "signal: "
	case CmdGoto:
		return "range: "
	case CmdAddSignal:
		return "add: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdAddSignal:
		return "path | clock:<period>[,<low>[,<offset>]] | counter:<start>,<inc>,<count>,<period>   esc: cancel"
	case CmdGoto:
		return "<start> <end> | <centre>   enter: apply   esc: cancel"
	default:
		return "enter: apply   esc: cancel"
	}
}

func (m *model) idleCommandHintsLine() string {
	return "/ search   : goto   a add   m mark   ? help"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ci.cmd)
	prompt := m.commandPrompt(m.ci.cmd)
	return badge + " " + prompt + m.ci.buf
}

func (m *model) commandRightContext() string {
	return fmt.Sprintf("%d/%d",
		m.cursor+1,
		len(m.data.rows),
	)
}
