package wave

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleID selects one entry of a Palette. Painters tag cells with style ids
// and the palette resolves them to lipgloss styles at render time, so the
// paint pass itself never touches escape sequences.
type StyleID uint8

const (
	StyleDefault StyleID = iota
	StyleWaveHigh
	StyleWaveLow
	StyleWaveAbsent
	StyleBandAlt
	StyleLabel
	StyleTickMajor
	StyleTickMinor
	StyleSelection
	StyleIndicator
	StyleFrame
	styleCount
)

// Palette maps style ids to terminal styles.
type Palette [styleCount]lipgloss.Style

// DefaultPalette mirrors the scope colors: bright trace on a dark band.
func DefaultPalette() Palette {
	var p Palette
	p[StyleDefault] = lipgloss.NewStyle()
	p[StyleWaveHigh] = lipgloss.NewStyle().Foreground(lipgloss.Color("#4adf6a"))
	p[StyleWaveLow] = lipgloss.NewStyle().Foreground(lipgloss.Color("#2f8f46"))
	p[StyleWaveAbsent] = lipgloss.NewStyle().Foreground(lipgloss.Color("#884444"))
	p[StyleBandAlt] = lipgloss.NewStyle().Background(lipgloss.Color("#1c1c1c"))
	p[StyleLabel] = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0e0"))
	p[StyleTickMajor] = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c0c0"))
	p[StyleTickMinor] = lipgloss.NewStyle().Foreground(lipgloss.Color("#606060"))
	p[StyleSelection] = lipgloss.NewStyle().Background(lipgloss.Color("#3a5a8a"))
	p[StyleIndicator] = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffdd66"))
	p[StyleFrame] = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return p
}

type cell struct {
	r  rune
	st StyleID
}

// Surface is a fixed-size grid of styled cells: the raster a painter draws
// onto. The origin is top-left; x grows rightward, y downward.
type Surface struct {
	w, h  int
	cells []cell
}

func NewSurface(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &Surface{w: w, h: h, cells: make([]cell, w*h)}
	s.Clear()
	return s
}

func (s *Surface) Width() int  { return s.w }
func (s *Surface) Height() int { return s.h }

// Resize reallocates the grid only when dimensions actually changed and
// reports whether it did, so no-op resize notifications cost nothing.
func (s *Surface) Resize(w, h int) bool {
	if w == s.w && h == s.h {
		return false
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.w, s.h = w, h
	s.cells = make([]cell, w*h)
	s.Clear()
	return true
}

func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{r: ' ', st: StyleDefault}
	}
}

// Fill floods the whole surface with a rune and style.
func (s *Surface) Fill(r rune, st StyleID) {
	for i := range s.cells {
		s.cells[i] = cell{r: r, st: st}
	}
}

// Set places one cell; out-of-bounds writes are dropped.
func (s *Surface) Set(x, y int, r rune, st StyleID) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[y*s.w+x] = cell{r: r, st: st}
}

// StyleAt re-tags a cell's style without touching its rune. Used for
// overlays (drag selection) painted over existing content.
func (s *Surface) StyleAt(x, y int, st StyleID) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[y*s.w+x].st = st
}

// HLine draws a horizontal run [x0, x1] clipped to the surface.
func (s *Surface) HLine(x0, x1, y int, r rune, st StyleID) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		s.Set(x, y, r, st)
	}
}

// VLine draws a vertical run [y0, y1] clipped to the surface.
func (s *Surface) VLine(x, y0, y1 int, r rune, st StyleID) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		s.Set(x, y, r, st)
	}
}

// Text writes a string starting at (x, y); it clips at the right edge.
func (s *Surface) Text(x, y int, text string, st StyleID) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r, st)
	}
}

// RuneAt is a test/debug accessor.
func (s *Surface) RuneAt(x, y int) rune {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0
	}
	return s.cells[y*s.w+x].r
}

// StyleIDAt is a test/debug accessor.
func (s *Surface) StyleIDAt(x, y int) StyleID {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return StyleDefault
	}
	return s.cells[y*s.w+x].st
}

// Render flattens the grid into styled terminal lines. Consecutive cells
// sharing a style render as one run to keep the escape-sequence volume down.
func (s *Surface) Render(p Palette) string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < s.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		cur := StyleID(255)
		run.Reset()
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(p[cur].Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < s.w; x++ {
			c := s.cells[y*s.w+x]
			if c.st != cur {
				flush()
				cur = c.st
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}

// Line extracts one row as plain runes, mostly for tests.
func (s *Surface) Line(y int) string {
	if y < 0 || y >= s.h {
		return ""
	}
	rs := make([]rune, s.w)
	for x := 0; x < s.w; x++ {
		rs[x] = s.cells[y*s.w+x].r
	}
	return string(rs)
}
