package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripANSI(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case inSeq:
			if r == 'm' {
				inSeq = false
			}
		case r == '\x1b':
			inSeq = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func footerLines(t *testing.T, width int, st FooterState) []string {
	t.Helper()
	out := RenderFooter(width, st, DefaultFooterStyles())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	return lines
}

func TestRenderFooterShowsState(t *testing.T) {
	st := FooterState{
		Mode:          CmdNone,
		FileName:      "trace.wcp",
		RangeLabel:    "0ns .. 15ns",
		Markers:       2,
		Row:           1,
		TotalRows:     3,
		StatusMessage: "Added clk",
	}
	lines := footerLines(t, 120, st)

	top := stripANSI(lines[0])
	assert.Contains(t, top, "NORMAL")
	assert.Contains(t, top, "trace.wcp")
	assert.Contains(t, top, "0ns .. 15ns")
	assert.Contains(t, top, "Sig 1/3")
	assert.Contains(t, stripANSI(lines[1]), "Added clk")
}

func TestRenderFooterCommandMode(t *testing.T) {
	st := FooterState{Mode: CmdSearch, ModeInput: "clk"}
	lines := footerLines(t, 120, st)
	assert.Contains(t, stripANSI(lines[0]), "SEARCH")
}

func TestRenderFooterLinesMatchWidth(t *testing.T) {
	st := FooterState{
		Mode:       CmdGoto,
		FileName:   "a-rather-long-trace-file-name.wcp",
		RangeLabel: "123456ns .. 99999999ns",
		TotalRows:  12,
	}
	for _, width := range []int{40, 80, 160} {
		lines := footerLines(t, width, st)
		assert.Equal(t, width, runeWidth(stripANSI(lines[0])), "width %d", width)
		assert.Equal(t, width, runeWidth(stripANSI(lines[1])), "width %d", width)
	}
}

func TestRenderFooterZeroWidth(t *testing.T) {
	assert.Empty(t, RenderFooter(0, FooterState{}, DefaultFooterStyles()))
}

func TestCommandLabel(t *testing.T) {
	assert.Equal(t, "NORMAL", commandLabel(CmdNone))
	assert.Equal(t, "GOTO", commandLabel(CmdGoto))
	assert.Equal(t, "SEARCH", commandLabel(CmdSearch))
	assert.Equal(t, "ADD", commandLabel(CmdAddSignal))
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "abc", truncatePlain("abcdef", 3))
	assert.Equal(t, "abcdef", truncatePlain("abcdef", 10))
	assert.Equal(t, "ab  ", padRightPlain("ab", 4))
	assert.Equal(t, 5, clamp(5, 0, 10))
	assert.Equal(t, 0, clamp(-3, 0, 10))
	assert.Equal(t, 10, clamp(30, 0, 10))
}
